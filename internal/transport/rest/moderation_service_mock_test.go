package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	ListMentorsFunc  func(ctx context.Context) ([]domain.Mentor, error)
	SetApprovalFunc  func(ctx context.Context, mentorID uuid.UUID, approved bool) (domain.Mentor, bool, error)
	DeleteMentorFunc func(ctx context.Context, mentorID uuid.UUID) error
	StatsFunc        func(ctx context.Context) (domain.DashboardStats, error)
	HistoryFunc      func(ctx context.Context, mentorID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListMentors []struct {
			Ctx context.Context
		}
		SetApproval []struct {
			Ctx      context.Context
			MentorID uuid.UUID
			Approved bool
		}
		DeleteMentor []struct {
			Ctx      context.Context
			MentorID uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
		}
		History []struct {
			Ctx      context.Context
			MentorID uuid.UUID
			Limit    int
		}
	}
	lockListMentors  sync.RWMutex
	lockSetApproval  sync.RWMutex
	lockDeleteMentor sync.RWMutex
	lockStats        sync.RWMutex
	lockHistory      sync.RWMutex
}

func (mock *moderationServiceMock) ListMentors(ctx context.Context) ([]domain.Mentor, error) {
	if mock.ListMentorsFunc == nil {
		panic("moderationServiceMock.ListMentorsFunc: method is nil but moderationService.ListMentors was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListMentors.Lock()
	mock.calls.ListMentors = append(mock.calls.ListMentors, callInfo)
	mock.lockListMentors.Unlock()
	return mock.ListMentorsFunc(ctx)
}

func (mock *moderationServiceMock) ListMentorsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMentors.RLock()
	calls := mock.calls.ListMentors
	mock.lockListMentors.RUnlock()
	return calls
}

func (mock *moderationServiceMock) SetApproval(ctx context.Context, mentorID uuid.UUID, approved bool) (domain.Mentor, bool, error) {
	if mock.SetApprovalFunc == nil {
		panic("moderationServiceMock.SetApprovalFunc: method is nil but moderationService.SetApproval was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MentorID uuid.UUID
		Approved bool
	}{
		Ctx:      ctx,
		MentorID: mentorID,
		Approved: approved,
	}
	mock.lockSetApproval.Lock()
	mock.calls.SetApproval = append(mock.calls.SetApproval, callInfo)
	mock.lockSetApproval.Unlock()
	return mock.SetApprovalFunc(ctx, mentorID, approved)
}

func (mock *moderationServiceMock) SetApprovalCalls() []struct {
	Ctx      context.Context
	MentorID uuid.UUID
	Approved bool
} {
	mock.lockSetApproval.RLock()
	calls := mock.calls.SetApproval
	mock.lockSetApproval.RUnlock()
	return calls
}

func (mock *moderationServiceMock) DeleteMentor(ctx context.Context, mentorID uuid.UUID) error {
	if mock.DeleteMentorFunc == nil {
		panic("moderationServiceMock.DeleteMentorFunc: method is nil but moderationService.DeleteMentor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MentorID uuid.UUID
	}{
		Ctx:      ctx,
		MentorID: mentorID,
	}
	mock.lockDeleteMentor.Lock()
	mock.calls.DeleteMentor = append(mock.calls.DeleteMentor, callInfo)
	mock.lockDeleteMentor.Unlock()
	return mock.DeleteMentorFunc(ctx, mentorID)
}

func (mock *moderationServiceMock) DeleteMentorCalls() []struct {
	Ctx      context.Context
	MentorID uuid.UUID
} {
	mock.lockDeleteMentor.RLock()
	calls := mock.calls.DeleteMentor
	mock.lockDeleteMentor.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if mock.StatsFunc == nil {
		panic("moderationServiceMock.StatsFunc: method is nil but moderationService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *moderationServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *moderationServiceMock) History(ctx context.Context, mentorID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("moderationServiceMock.HistoryFunc: method is nil but moderationService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MentorID uuid.UUID
		Limit    int
	}{
		Ctx:      ctx,
		MentorID: mentorID,
		Limit:    limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, mentorID, limit)
}

func (mock *moderationServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	MentorID uuid.UUID
	Limit    int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
