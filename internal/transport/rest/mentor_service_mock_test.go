package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/mentor"
)

var _ mentorService = &mentorServiceMock{}

type mentorServiceMock struct {
	RegisterFunc         func(ctx context.Context, input mentor.RegisterInput) (domain.Mentor, error)
	GetOwnProfileFunc    func(ctx context.Context) (domain.Mentor, error)
	UpdateOwnProfileFunc func(ctx context.Context, input mentor.UpdateProfileInput) (domain.Mentor, error)
	ListApprovedFunc     func(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error)
	GetPublicFunc        func(ctx context.Context, id uuid.UUID) (domain.Mentor, error)
	OptionsFunc          func(ctx context.Context) (domain.TagCatalog, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input mentor.RegisterInput
		}
		GetOwnProfile []struct {
			Ctx context.Context
		}
		UpdateOwnProfile []struct {
			Ctx   context.Context
			Input mentor.UpdateProfileInput
		}
		ListApproved []struct {
			Ctx    context.Context
			Filter domain.MentorFilter
		}
		GetPublic []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Options []struct {
			Ctx context.Context
		}
	}
	lockRegister         sync.RWMutex
	lockGetOwnProfile    sync.RWMutex
	lockUpdateOwnProfile sync.RWMutex
	lockListApproved     sync.RWMutex
	lockGetPublic        sync.RWMutex
	lockOptions          sync.RWMutex
}

func (mock *mentorServiceMock) Register(ctx context.Context, input mentor.RegisterInput) (domain.Mentor, error) {
	if mock.RegisterFunc == nil {
		panic("mentorServiceMock.RegisterFunc: method is nil but mentorService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mentor.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *mentorServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input mentor.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *mentorServiceMock) GetOwnProfile(ctx context.Context) (domain.Mentor, error) {
	if mock.GetOwnProfileFunc == nil {
		panic("mentorServiceMock.GetOwnProfileFunc: method is nil but mentorService.GetOwnProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetOwnProfile.Lock()
	mock.calls.GetOwnProfile = append(mock.calls.GetOwnProfile, callInfo)
	mock.lockGetOwnProfile.Unlock()
	return mock.GetOwnProfileFunc(ctx)
}

func (mock *mentorServiceMock) GetOwnProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetOwnProfile.RLock()
	calls := mock.calls.GetOwnProfile
	mock.lockGetOwnProfile.RUnlock()
	return calls
}

func (mock *mentorServiceMock) UpdateOwnProfile(ctx context.Context, input mentor.UpdateProfileInput) (domain.Mentor, error) {
	if mock.UpdateOwnProfileFunc == nil {
		panic("mentorServiceMock.UpdateOwnProfileFunc: method is nil but mentorService.UpdateOwnProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mentor.UpdateProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateOwnProfile.Lock()
	mock.calls.UpdateOwnProfile = append(mock.calls.UpdateOwnProfile, callInfo)
	mock.lockUpdateOwnProfile.Unlock()
	return mock.UpdateOwnProfileFunc(ctx, input)
}

func (mock *mentorServiceMock) UpdateOwnProfileCalls() []struct {
	Ctx   context.Context
	Input mentor.UpdateProfileInput
} {
	mock.lockUpdateOwnProfile.RLock()
	calls := mock.calls.UpdateOwnProfile
	mock.lockUpdateOwnProfile.RUnlock()
	return calls
}

func (mock *mentorServiceMock) ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error) {
	if mock.ListApprovedFunc == nil {
		panic("mentorServiceMock.ListApprovedFunc: method is nil but mentorService.ListApproved was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.MentorFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListApproved.Lock()
	mock.calls.ListApproved = append(mock.calls.ListApproved, callInfo)
	mock.lockListApproved.Unlock()
	return mock.ListApprovedFunc(ctx, filter)
}

func (mock *mentorServiceMock) ListApprovedCalls() []struct {
	Ctx    context.Context
	Filter domain.MentorFilter
} {
	mock.lockListApproved.RLock()
	calls := mock.calls.ListApproved
	mock.lockListApproved.RUnlock()
	return calls
}

func (mock *mentorServiceMock) GetPublic(ctx context.Context, id uuid.UUID) (domain.Mentor, error) {
	if mock.GetPublicFunc == nil {
		panic("mentorServiceMock.GetPublicFunc: method is nil but mentorService.GetPublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetPublic.Lock()
	mock.calls.GetPublic = append(mock.calls.GetPublic, callInfo)
	mock.lockGetPublic.Unlock()
	return mock.GetPublicFunc(ctx, id)
}

func (mock *mentorServiceMock) GetPublicCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetPublic.RLock()
	calls := mock.calls.GetPublic
	mock.lockGetPublic.RUnlock()
	return calls
}

func (mock *mentorServiceMock) Options(ctx context.Context) (domain.TagCatalog, error) {
	if mock.OptionsFunc == nil {
		panic("mentorServiceMock.OptionsFunc: method is nil but mentorService.Options was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockOptions.Lock()
	mock.calls.Options = append(mock.calls.Options, callInfo)
	mock.lockOptions.Unlock()
	return mock.OptionsFunc(ctx)
}

func (mock *mentorServiceMock) OptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockOptions.RLock()
	calls := mock.calls.Options
	mock.lockOptions.RUnlock()
	return calls
}
