package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

var _ publicEventService = &publicEventServiceMock{}

type publicEventServiceMock struct {
	ListUpcomingFunc func(ctx context.Context) ([]domain.Event, error)
	ListPastFunc     func(ctx context.Context) ([]domain.Event, error)
	GetEventFunc     func(ctx context.Context, id uuid.UUID) (domain.Event, error)

	calls struct {
		ListUpcoming []struct {
			Ctx context.Context
		}
		ListPast []struct {
			Ctx context.Context
		}
		GetEvent []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListUpcoming sync.RWMutex
	lockListPast     sync.RWMutex
	lockGetEvent     sync.RWMutex
}

func (mock *publicEventServiceMock) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	if mock.ListUpcomingFunc == nil {
		panic("publicEventServiceMock.ListUpcomingFunc: method is nil but publicEventService.ListUpcoming was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUpcoming.Lock()
	mock.calls.ListUpcoming = append(mock.calls.ListUpcoming, callInfo)
	mock.lockListUpcoming.Unlock()
	return mock.ListUpcomingFunc(ctx)
}

func (mock *publicEventServiceMock) ListUpcomingCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUpcoming.RLock()
	calls := mock.calls.ListUpcoming
	mock.lockListUpcoming.RUnlock()
	return calls
}

func (mock *publicEventServiceMock) ListPast(ctx context.Context) ([]domain.Event, error) {
	if mock.ListPastFunc == nil {
		panic("publicEventServiceMock.ListPastFunc: method is nil but publicEventService.ListPast was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPast.Lock()
	mock.calls.ListPast = append(mock.calls.ListPast, callInfo)
	mock.lockListPast.Unlock()
	return mock.ListPastFunc(ctx)
}

func (mock *publicEventServiceMock) ListPastCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPast.RLock()
	calls := mock.calls.ListPast
	mock.lockListPast.RUnlock()
	return calls
}

func (mock *publicEventServiceMock) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if mock.GetEventFunc == nil {
		panic("publicEventServiceMock.GetEventFunc: method is nil but publicEventService.GetEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetEvent.Lock()
	mock.calls.GetEvent = append(mock.calls.GetEvent, callInfo)
	mock.lockGetEvent.Unlock()
	return mock.GetEventFunc(ctx, id)
}

func (mock *publicEventServiceMock) GetEventCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetEvent.RLock()
	calls := mock.calls.GetEvent
	mock.lockGetEvent.RUnlock()
	return calls
}
