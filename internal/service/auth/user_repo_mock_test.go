package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateSeekerFunc   func(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error)
	CreateCompanyFunc  func(ctx context.Context, company *domain.Company) (*domain.Company, error)
	CreateEmployerFunc func(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ExistsByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		CreateSeeker []struct {
			Ctx    context.Context
			Seeker *domain.JobSeeker
		}
		CreateCompany []struct {
			Ctx     context.Context
			Company *domain.Company
		}
		CreateEmployer []struct {
			Ctx      context.Context
			Employer *domain.Employer
		}
	}
	lockGetByEmail     sync.RWMutex
	lockExistsByEmail  sync.RWMutex
	lockCreate         sync.RWMutex
	lockCreateSeeker   sync.RWMutex
	lockCreateCompany  sync.RWMutex
	lockCreateEmployer sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if mock.ExistsByEmailFunc == nil {
		panic("userRepoMock.ExistsByEmailFunc: method is nil but userRepo.ExistsByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockExistsByEmail.Lock()
	mock.calls.ExistsByEmail = append(mock.calls.ExistsByEmail, callInfo)
	mock.lockExistsByEmail.Unlock()
	return mock.ExistsByEmailFunc(ctx, email)
}

func (mock *userRepoMock) ExistsByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockExistsByEmail.RLock()
	calls := mock.calls.ExistsByEmail
	mock.lockExistsByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateSeeker(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	if mock.CreateSeekerFunc == nil {
		panic("userRepoMock.CreateSeekerFunc: method is nil but userRepo.CreateSeeker was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Seeker *domain.JobSeeker
	}{Ctx: ctx, Seeker: seeker}
	mock.lockCreateSeeker.Lock()
	mock.calls.CreateSeeker = append(mock.calls.CreateSeeker, callInfo)
	mock.lockCreateSeeker.Unlock()
	return mock.CreateSeekerFunc(ctx, seeker)
}

func (mock *userRepoMock) CreateSeekerCalls() []struct {
	Ctx    context.Context
	Seeker *domain.JobSeeker
} {
	mock.lockCreateSeeker.RLock()
	calls := mock.calls.CreateSeeker
	mock.lockCreateSeeker.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if mock.CreateCompanyFunc == nil {
		panic("userRepoMock.CreateCompanyFunc: method is nil but userRepo.CreateCompany was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Company *domain.Company
	}{Ctx: ctx, Company: company}
	mock.lockCreateCompany.Lock()
	mock.calls.CreateCompany = append(mock.calls.CreateCompany, callInfo)
	mock.lockCreateCompany.Unlock()
	return mock.CreateCompanyFunc(ctx, company)
}

func (mock *userRepoMock) CreateCompanyCalls() []struct {
	Ctx     context.Context
	Company *domain.Company
} {
	mock.lockCreateCompany.RLock()
	calls := mock.calls.CreateCompany
	mock.lockCreateCompany.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error) {
	if mock.CreateEmployerFunc == nil {
		panic("userRepoMock.CreateEmployerFunc: method is nil but userRepo.CreateEmployer was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Employer *domain.Employer
	}{Ctx: ctx, Employer: employer}
	mock.lockCreateEmployer.Lock()
	mock.calls.CreateEmployer = append(mock.calls.CreateEmployer, callInfo)
	mock.lockCreateEmployer.Unlock()
	return mock.CreateEmployerFunc(ctx, employer)
}

func (mock *userRepoMock) CreateEmployerCalls() []struct {
	Ctx      context.Context
	Employer *domain.Employer
} {
	mock.lockCreateEmployer.RLock()
	calls := mock.calls.CreateEmployer
	mock.lockCreateEmployer.RUnlock()
	return calls
}
