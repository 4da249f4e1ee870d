package mentor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

var _ mentorRepo = &mentorRepoMock{}

type mentorRepoMock struct {
	CreateFunc            func(ctx context.Context, m domain.Mentor, industryIDs []string, expertiseIDs []string) (domain.Mentor, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (domain.Mentor, error)
	GetByOwnerFunc        func(ctx context.Context, ownerID uuid.UUID) (domain.Mentor, error)
	ListApprovedFunc      func(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error)
	ReplaceExpertiseFunc  func(ctx context.Context, mentorID uuid.UUID, ids []string) error
	ReplaceIndustriesFunc func(ctx context.Context, mentorID uuid.UUID, ids []string) error
	UpdateFunc            func(ctx context.Context, id uuid.UUID, params domain.MentorUpdateParams) (domain.Mentor, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			M            domain.Mentor
			IndustryIDs  []string
			ExpertiseIDs []string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListApproved []struct {
			Ctx    context.Context
			Filter domain.MentorFilter
		}
		ReplaceExpertise []struct {
			Ctx      context.Context
			MentorID uuid.UUID
			Ids      []string
		}
		ReplaceIndustries []struct {
			Ctx      context.Context
			MentorID uuid.UUID
			Ids      []string
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.MentorUpdateParams
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetByOwner        sync.RWMutex
	lockListApproved      sync.RWMutex
	lockReplaceExpertise  sync.RWMutex
	lockReplaceIndustries sync.RWMutex
	lockUpdate            sync.RWMutex
}

func (mock *mentorRepoMock) Create(ctx context.Context, m domain.Mentor, industryIDs []string, expertiseIDs []string) (domain.Mentor, error) {
	if mock.CreateFunc == nil {
		panic("mentorRepoMock.CreateFunc: method is nil but mentorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		M            domain.Mentor
		IndustryIDs  []string
		ExpertiseIDs []string
	}{
		Ctx:          ctx,
		M:            m,
		IndustryIDs:  industryIDs,
		ExpertiseIDs: expertiseIDs,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m, industryIDs, expertiseIDs)
}

func (mock *mentorRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	M            domain.Mentor
	IndustryIDs  []string
	ExpertiseIDs []string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mentorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Mentor, error) {
	if mock.GetByIDFunc == nil {
		panic("mentorRepoMock.GetByIDFunc: method is nil but mentorRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *mentorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mentorRepoMock) GetByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Mentor, error) {
	if mock.GetByOwnerFunc == nil {
		panic("mentorRepoMock.GetByOwnerFunc: method is nil but mentorRepo.GetByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockGetByOwner.Lock()
	mock.calls.GetByOwner = append(mock.calls.GetByOwner, callInfo)
	mock.lockGetByOwner.Unlock()
	return mock.GetByOwnerFunc(ctx, ownerID)
}

func (mock *mentorRepoMock) GetByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockGetByOwner.RLock()
	calls := mock.calls.GetByOwner
	mock.lockGetByOwner.RUnlock()
	return calls
}

func (mock *mentorRepoMock) ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error) {
	if mock.ListApprovedFunc == nil {
		panic("mentorRepoMock.ListApprovedFunc: method is nil but mentorRepo.ListApproved was just called")
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

func (mock *mentorRepoMock) ListApprovedCalls() []struct {
	Ctx    context.Context
	Filter domain.MentorFilter
} {
	mock.lockListApproved.RLock()
	calls := mock.calls.ListApproved
	mock.lockListApproved.RUnlock()
	return calls
}

func (mock *mentorRepoMock) ReplaceExpertise(ctx context.Context, mentorID uuid.UUID, ids []string) error {
	if mock.ReplaceExpertiseFunc == nil {
		panic("mentorRepoMock.ReplaceExpertiseFunc: method is nil but mentorRepo.ReplaceExpertise was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MentorID uuid.UUID
		Ids      []string
	}{
		Ctx:      ctx,
		MentorID: mentorID,
		Ids:      ids,
	}
	mock.lockReplaceExpertise.Lock()
	mock.calls.ReplaceExpertise = append(mock.calls.ReplaceExpertise, callInfo)
	mock.lockReplaceExpertise.Unlock()
	return mock.ReplaceExpertiseFunc(ctx, mentorID, ids)
}

func (mock *mentorRepoMock) ReplaceExpertiseCalls() []struct {
	Ctx      context.Context
	MentorID uuid.UUID
	Ids      []string
} {
	mock.lockReplaceExpertise.RLock()
	calls := mock.calls.ReplaceExpertise
	mock.lockReplaceExpertise.RUnlock()
	return calls
}

func (mock *mentorRepoMock) ReplaceIndustries(ctx context.Context, mentorID uuid.UUID, ids []string) error {
	if mock.ReplaceIndustriesFunc == nil {
		panic("mentorRepoMock.ReplaceIndustriesFunc: method is nil but mentorRepo.ReplaceIndustries was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MentorID uuid.UUID
		Ids      []string
	}{
		Ctx:      ctx,
		MentorID: mentorID,
		Ids:      ids,
	}
	mock.lockReplaceIndustries.Lock()
	mock.calls.ReplaceIndustries = append(mock.calls.ReplaceIndustries, callInfo)
	mock.lockReplaceIndustries.Unlock()
	return mock.ReplaceIndustriesFunc(ctx, mentorID, ids)
}

func (mock *mentorRepoMock) ReplaceIndustriesCalls() []struct {
	Ctx      context.Context
	MentorID uuid.UUID
	Ids      []string
} {
	mock.lockReplaceIndustries.RLock()
	calls := mock.calls.ReplaceIndustries
	mock.lockReplaceIndustries.RUnlock()
	return calls
}

func (mock *mentorRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MentorUpdateParams) (domain.Mentor, error) {
	if mock.UpdateFunc == nil {
		panic("mentorRepoMock.UpdateFunc: method is nil but mentorRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.MentorUpdateParams
	}{
		Ctx:    ctx,
		Id:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *mentorRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.MentorUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
