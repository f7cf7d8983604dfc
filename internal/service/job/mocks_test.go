package job

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var _ jobRepo = &jobRepoMock{}

type jobRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Job, error)
	GetViewFunc              func(ctx context.Context, id int64) (*domain.JobView, error)
	ListActiveFunc           func(ctx context.Context) ([]domain.JobView, error)
	ListByEmployerFunc       func(ctx context.Context, employerID int64) ([]domain.JobView, error)
	SearchFunc               func(ctx context.Context, f domain.JobFilter) ([]domain.JobView, error)
	ListOpenWithDeadlineFunc func(ctx context.Context, day time.Time) ([]domain.JobView, error)
	CreateFunc               func(ctx context.Context, j *domain.Job) (*domain.Job, error)
	UpdateFunc               func(ctx context.Context, j *domain.Job) (*domain.Job, error)
	SetStatusFunc            func(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error)
	DeleteFunc               func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetView []struct {
			Ctx context.Context
			ID  int64
		}
		ListActive []struct{ Ctx context.Context }
		ListByEmployer []struct {
			Ctx        context.Context
			EmployerID int64
		}
		Search []struct {
			Ctx context.Context
			F   domain.JobFilter
		}
		ListOpenWithDeadline []struct {
			Ctx context.Context
			Day time.Time
		}
		Create []struct {
			Ctx context.Context
			J   *domain.Job
		}
		Update []struct {
			Ctx context.Context
			J   *domain.Job
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.JobStatus
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID              sync.RWMutex
	lockGetView              sync.RWMutex
	lockListActive           sync.RWMutex
	lockListByEmployer       sync.RWMutex
	lockSearch               sync.RWMutex
	lockListOpenWithDeadline sync.RWMutex
	lockCreate               sync.RWMutex
	lockUpdate               sync.RWMutex
	lockSetStatus            sync.RWMutex
	lockDelete               sync.RWMutex
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

func (mock *jobRepoMock) GetView(ctx context.Context, id int64) (*domain.JobView, error) {
	if mock.GetViewFunc == nil {
		panic("jobRepoMock.GetViewFunc: method is nil but jobRepo.GetView was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetView.Lock()
	mock.calls.GetView = append(mock.calls.GetView, callInfo)
	mock.lockGetView.Unlock()
	return mock.GetViewFunc(ctx, id)
}

func (mock *jobRepoMock) GetViewCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetView.RLock()
	calls := mock.calls.GetView
	mock.lockGetView.RUnlock()
	return calls
}

func (mock *jobRepoMock) ListActive(ctx context.Context) ([]domain.JobView, error) {
	if mock.ListActiveFunc == nil {
		panic("jobRepoMock.ListActiveFunc: method is nil but jobRepo.ListActive was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *jobRepoMock) ListActiveCalls() []struct{ Ctx context.Context } {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *jobRepoMock) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobView, error) {
	if mock.ListByEmployerFunc == nil {
		panic("jobRepoMock.ListByEmployerFunc: method is nil but jobRepo.ListByEmployer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EmployerID int64
	}{Ctx: ctx, EmployerID: employerID}
	mock.lockListByEmployer.Lock()
	mock.calls.ListByEmployer = append(mock.calls.ListByEmployer, callInfo)
	mock.lockListByEmployer.Unlock()
	return mock.ListByEmployerFunc(ctx, employerID)
}

func (mock *jobRepoMock) ListByEmployerCalls() []struct {
	Ctx        context.Context
	EmployerID int64
} {
	mock.lockListByEmployer.RLock()
	calls := mock.calls.ListByEmployer
	mock.lockListByEmployer.RUnlock()
	return calls
}

func (mock *jobRepoMock) Search(ctx context.Context, f domain.JobFilter) ([]domain.JobView, error) {
	if mock.SearchFunc == nil {
		panic("jobRepoMock.SearchFunc: method is nil but jobRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.JobFilter
	}{Ctx: ctx, F: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *jobRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.JobFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *jobRepoMock) ListOpenWithDeadline(ctx context.Context, day time.Time) ([]domain.JobView, error) {
	if mock.ListOpenWithDeadlineFunc == nil {
		panic("jobRepoMock.ListOpenWithDeadlineFunc: method is nil but jobRepo.ListOpenWithDeadline was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockListOpenWithDeadline.Lock()
	mock.calls.ListOpenWithDeadline = append(mock.calls.ListOpenWithDeadline, callInfo)
	mock.lockListOpenWithDeadline.Unlock()
	return mock.ListOpenWithDeadlineFunc(ctx, day)
}

func (mock *jobRepoMock) ListOpenWithDeadlineCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListOpenWithDeadline.RLock()
	calls := mock.calls.ListOpenWithDeadline
	mock.lockListOpenWithDeadline.RUnlock()
	return calls
}

func (mock *jobRepoMock) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	if mock.CreateFunc == nil {
		panic("jobRepoMock.CreateFunc: method is nil but jobRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		J   *domain.Job
	}{Ctx: ctx, J: j}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, j)
}

func (mock *jobRepoMock) CreateCalls() []struct {
	Ctx context.Context
	J   *domain.Job
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *jobRepoMock) Update(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	if mock.UpdateFunc == nil {
		panic("jobRepoMock.UpdateFunc: method is nil but jobRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		J   *domain.Job
	}{Ctx: ctx, J: j}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, j)
}

func (mock *jobRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	J   *domain.Job
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *jobRepoMock) SetStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	if mock.SetStatusFunc == nil {
		panic("jobRepoMock.SetStatusFunc: method is nil but jobRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.JobStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *jobRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.JobStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *jobRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("jobRepoMock.DeleteFunc: method is nil but jobRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *jobRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ employerRepo = &employerRepoMock{}

type employerRepoMock struct {
	GetEmployerFunc func(ctx context.Context, id int64) (*domain.Employer, error)
	GetCompanyFunc  func(ctx context.Context, id int64) (*domain.Company, error)

	calls struct {
		GetEmployer []struct {
			Ctx context.Context
			ID  int64
		}
		GetCompany []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetEmployer sync.RWMutex
	lockGetCompany  sync.RWMutex
}

func (mock *employerRepoMock) GetEmployer(ctx context.Context, id int64) (*domain.Employer, error) {
	if mock.GetEmployerFunc == nil {
		panic("employerRepoMock.GetEmployerFunc: method is nil but employerRepo.GetEmployer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetEmployer.Lock()
	mock.calls.GetEmployer = append(mock.calls.GetEmployer, callInfo)
	mock.lockGetEmployer.Unlock()
	return mock.GetEmployerFunc(ctx, id)
}

func (mock *employerRepoMock) GetEmployerCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetEmployer.RLock()
	calls := mock.calls.GetEmployer
	mock.lockGetEmployer.RUnlock()
	return calls
}

func (mock *employerRepoMock) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	if mock.GetCompanyFunc == nil {
		panic("employerRepoMock.GetCompanyFunc: method is nil but employerRepo.GetCompany was just called")
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

func (mock *employerRepoMock) GetCompanyCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetCompany.RLock()
	calls := mock.calls.GetCompany
	mock.lockGetCompany.RUnlock()
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

var _ resumeRepo = &resumeRepoMock{}

type resumeRepoMock struct {
	GetBySeekerFunc       func(ctx context.Context, seekerID int64) (*domain.Resume, error)
	ListSkillProfilesFunc func(ctx context.Context, afterSeekerID int64, limit int) ([]domain.SeekerSkills, error)

	calls struct {
		GetBySeeker []struct {
			Ctx      context.Context
			SeekerID int64
		}
		ListSkillProfiles []struct {
			Ctx           context.Context
			AfterSeekerID int64
			Limit         int
		}
	}
	lockGetBySeeker       sync.RWMutex
	lockListSkillProfiles sync.RWMutex
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

func (mock *resumeRepoMock) ListSkillProfiles(ctx context.Context, afterSeekerID int64, limit int) ([]domain.SeekerSkills, error) {
	if mock.ListSkillProfilesFunc == nil {
		panic("resumeRepoMock.ListSkillProfilesFunc: method is nil but resumeRepo.ListSkillProfiles was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		AfterSeekerID int64
		Limit         int
	}{Ctx: ctx, AfterSeekerID: afterSeekerID, Limit: limit}
	mock.lockListSkillProfiles.Lock()
	mock.calls.ListSkillProfiles = append(mock.calls.ListSkillProfiles, callInfo)
	mock.lockListSkillProfiles.Unlock()
	return mock.ListSkillProfilesFunc(ctx, afterSeekerID, limit)
}

func (mock *resumeRepoMock) ListSkillProfilesCalls() []struct {
	Ctx           context.Context
	AfterSeekerID int64
	Limit         int
} {
	mock.lockListSkillProfiles.RLock()
	calls := mock.calls.ListSkillProfiles
	mock.lockListSkillProfiles.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendFunc func(ctx context.Context, userID int64, message string) (*domain.Notification, error)

	calls struct {
		Send []struct {
			Ctx     context.Context
			UserID  int64
			Message string
		}
	}
	lockSend sync.RWMutex
}

func (mock *notifierMock) Send(ctx context.Context, userID int64, message string) (*domain.Notification, error) {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		Message string
	}{Ctx: ctx, UserID: userID, Message: message}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, userID, message)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx     context.Context
	UserID  int64
	Message string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
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
