package profile

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetSeekerFunc           func(ctx context.Context, id int64) (*domain.JobSeeker, error)
	GetSeekerByUserIDFunc   func(ctx context.Context, userID int64) (*domain.JobSeeker, error)
	UpdateSeekerFunc        func(ctx context.Context, s *domain.JobSeeker) (*domain.JobSeeker, error)
	GetEmployerByUserIDFunc func(ctx context.Context, userID int64) (*domain.Employer, error)
	GetCompanyFunc          func(ctx context.Context, id int64) (*domain.Company, error)

	calls struct {
		GetSeeker []struct {
			Ctx context.Context
			ID  int64
		}
		GetSeekerByUserID []struct {
			Ctx    context.Context
			UserID int64
		}
		UpdateSeeker []struct {
			Ctx context.Context
			S   *domain.JobSeeker
		}
		GetEmployerByUserID []struct {
			Ctx    context.Context
			UserID int64
		}
		GetCompany []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetSeeker           sync.RWMutex
	lockGetSeekerByUserID   sync.RWMutex
	lockUpdateSeeker        sync.RWMutex
	lockGetEmployerByUserID sync.RWMutex
	lockGetCompany          sync.RWMutex
}

func (mock *userRepoMock) GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	if mock.GetSeekerFunc == nil {
		panic("userRepoMock.GetSeekerFunc: method is nil but userRepo.GetSeeker was just called")
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

func (mock *userRepoMock) GetSeekerCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetSeeker.RLock()
	calls := mock.calls.GetSeeker
	mock.lockGetSeeker.RUnlock()
	return calls
}

func (mock *userRepoMock) GetSeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
	if mock.GetSeekerByUserIDFunc == nil {
		panic("userRepoMock.GetSeekerByUserIDFunc: method is nil but userRepo.GetSeekerByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetSeekerByUserID.Lock()
	mock.calls.GetSeekerByUserID = append(mock.calls.GetSeekerByUserID, callInfo)
	mock.lockGetSeekerByUserID.Unlock()
	return mock.GetSeekerByUserIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetSeekerByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetSeekerByUserID.RLock()
	calls := mock.calls.GetSeekerByUserID
	mock.lockGetSeekerByUserID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateSeeker(ctx context.Context, s *domain.JobSeeker) (*domain.JobSeeker, error) {
	if mock.UpdateSeekerFunc == nil {
		panic("userRepoMock.UpdateSeekerFunc: method is nil but userRepo.UpdateSeeker was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.JobSeeker
	}{Ctx: ctx, S: s}
	mock.lockUpdateSeeker.Lock()
	mock.calls.UpdateSeeker = append(mock.calls.UpdateSeeker, callInfo)
	mock.lockUpdateSeeker.Unlock()
	return mock.UpdateSeekerFunc(ctx, s)
}

func (mock *userRepoMock) UpdateSeekerCalls() []struct {
	Ctx context.Context
	S   *domain.JobSeeker
} {
	mock.lockUpdateSeeker.RLock()
	calls := mock.calls.UpdateSeeker
	mock.lockUpdateSeeker.RUnlock()
	return calls
}

func (mock *userRepoMock) GetEmployerByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	if mock.GetEmployerByUserIDFunc == nil {
		panic("userRepoMock.GetEmployerByUserIDFunc: method is nil but userRepo.GetEmployerByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetEmployerByUserID.Lock()
	mock.calls.GetEmployerByUserID = append(mock.calls.GetEmployerByUserID, callInfo)
	mock.lockGetEmployerByUserID.Unlock()
	return mock.GetEmployerByUserIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetEmployerByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetEmployerByUserID.RLock()
	calls := mock.calls.GetEmployerByUserID
	mock.lockGetEmployerByUserID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	if mock.GetCompanyFunc == nil {
		panic("userRepoMock.GetCompanyFunc: method is nil but userRepo.GetCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetCompany.Lock()
	mock.calls.GetCompany = append(mock.calls.GetCompany, callInfo)
	mock.lockGetCompany.Unlock()
	return mock.GetCompanyFunc(ctx, id)
}

func (mock *userRepoMock) GetCompanyCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetCompany.RLock()
	calls := mock.calls.GetCompany
	mock.lockGetCompany.RUnlock()
	return calls
}

var _ resumeRepo = &resumeRepoMock{}

type resumeRepoMock struct {
	GetBySeekerFunc func(ctx context.Context, seekerID int64) (*domain.Resume, error)
	UpsertFunc      func(ctx context.Context, r *domain.Resume) (*domain.Resume, error)

	calls struct {
		GetBySeeker []struct {
			Ctx      context.Context
			SeekerID int64
		}
		Upsert []struct {
			Ctx context.Context
			R   *domain.Resume
		}
	}
	lockGetBySeeker sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *resumeRepoMock) GetBySeeker(ctx context.Context, seekerID int64) (*domain.Resume, error) {
	if mock.GetBySeekerFunc == nil {
		panic("resumeRepoMock.GetBySeekerFunc: method is nil but resumeRepo.GetBySeeker was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeekerID int64
	}{Ctx: ctx, SeekerID: seekerID}
	mock.lockGetBySeeker.Lock()
	mock.calls.GetBySeeker = append(mock.calls.GetBySeeker, callInfo)
	mock.lockGetBySeeker.Unlock()
	return mock.GetBySeekerFunc(ctx, seekerID)
}

func (mock *resumeRepoMock) GetBySeekerCalls() []struct {
	Ctx      context.Context
	SeekerID int64
} {
	mock.lockGetBySeeker.RLock()
	calls := mock.calls.GetBySeeker
	mock.lockGetBySeeker.RUnlock()
	return calls
}

func (mock *resumeRepoMock) Upsert(ctx context.Context, r *domain.Resume) (*domain.Resume, error) {
	if mock.UpsertFunc == nil {
		panic("resumeRepoMock.UpsertFunc: method is nil but resumeRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.Resume
	}{Ctx: ctx, R: r}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, r)
}

func (mock *resumeRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	R   *domain.Resume
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
