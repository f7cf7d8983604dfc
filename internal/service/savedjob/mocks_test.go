package savedjob

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var _ savedJobRepo = &savedJobRepoMock{}

type savedJobRepoMock struct {
	SaveFunc         func(ctx context.Context, seekerID int64, jobID int64) error
	DeleteFunc       func(ctx context.Context, seekerID int64, jobID int64) error
	ExistsFunc       func(ctx context.Context, seekerID int64, jobID int64) (bool, error)
	ListBySeekerFunc func(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error)

	calls struct {
		Save []struct {
			Ctx      context.Context
			SeekerID int64
			JobID    int64
		}
		Delete []struct {
			Ctx      context.Context
			SeekerID int64
			JobID    int64
		}
		Exists []struct {
			Ctx      context.Context
			SeekerID int64
			JobID    int64
		}
		ListBySeeker []struct {
			Ctx      context.Context
			SeekerID int64
		}
	}
	lockSave         sync.RWMutex
	lockDelete       sync.RWMutex
	lockExists       sync.RWMutex
	lockListBySeeker sync.RWMutex
}

func (mock *savedJobRepoMock) Save(ctx context.Context, seekerID int64, jobID int64) error {
	if mock.SaveFunc == nil {
		panic("savedJobRepoMock.SaveFunc: method is nil but savedJobRepo.Save was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeekerID int64
		JobID    int64
	}{Ctx: ctx, SeekerID: seekerID, JobID: jobID}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, seekerID, jobID)
}

func (mock *savedJobRepoMock) SaveCalls() []struct {
	Ctx      context.Context
	SeekerID int64
	JobID    int64
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *savedJobRepoMock) Delete(ctx context.Context, seekerID int64, jobID int64) error {
	if mock.DeleteFunc == nil {
		panic("savedJobRepoMock.DeleteFunc: method is nil but savedJobRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeekerID int64
		JobID    int64
	}{Ctx: ctx, SeekerID: seekerID, JobID: jobID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, seekerID, jobID)
}

func (mock *savedJobRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	SeekerID int64
	JobID    int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *savedJobRepoMock) Exists(ctx context.Context, seekerID int64, jobID int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("savedJobRepoMock.ExistsFunc: method is nil but savedJobRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeekerID int64
		JobID    int64
	}{Ctx: ctx, SeekerID: seekerID, JobID: jobID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, seekerID, jobID)
}

func (mock *savedJobRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	SeekerID int64
	JobID    int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *savedJobRepoMock) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error) {
	if mock.ListBySeekerFunc == nil {
		panic("savedJobRepoMock.ListBySeekerFunc: method is nil but savedJobRepo.ListBySeeker was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeekerID int64
	}{Ctx: ctx, SeekerID: seekerID}
	mock.lockListBySeeker.Lock()
	mock.calls.ListBySeeker = append(mock.calls.ListBySeeker, callInfo)
	mock.lockListBySeeker.Unlock()
	return mock.ListBySeekerFunc(ctx, seekerID)
}

func (mock *savedJobRepoMock) ListBySeekerCalls() []struct {
	Ctx      context.Context
	SeekerID int64
} {
	mock.lockListBySeeker.RLock()
	calls := mock.calls.ListBySeeker
	mock.lockListBySeeker.RUnlock()
	return calls
}

var _ seekerRepo = &seekerRepoMock{}

type seekerRepoMock struct {
	GetSeekerFunc func(ctx context.Context, id int64) (*domain.JobSeeker, error)

	calls struct {
		GetSeeker []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetSeeker sync.RWMutex
}

func (mock *seekerRepoMock) GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	if mock.GetSeekerFunc == nil {
		panic("seekerRepoMock.GetSeekerFunc: method is nil but seekerRepo.GetSeeker was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetSeeker.Lock()
	mock.calls.GetSeeker = append(mock.calls.GetSeeker, callInfo)
	mock.lockGetSeeker.Unlock()
	return mock.GetSeekerFunc(ctx, id)
}

func (mock *seekerRepoMock) GetSeekerCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetSeeker.RLock()
	calls := mock.calls.GetSeeker
	mock.lockGetSeeker.RUnlock()
	return calls
}

var _ jobRepo = &jobRepoMock{}

type jobRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Job, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *jobRepoMock) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	if mock.GetByIDFunc == nil {
		panic("jobRepoMock.GetByIDFunc: method is nil but jobRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *jobRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
