package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/event"
)

var _ eventAdminService = &eventAdminServiceMock{}

type eventAdminServiceMock struct {
	ListAllFunc     func(ctx context.Context) ([]domain.Event, error)
	GetEventFunc    func(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEventFunc func(ctx context.Context, input event.EventInput) (domain.Event, error)
	UpdateEventFunc func(ctx context.Context, id uuid.UUID, input event.EventInput) (domain.Event, error)
	DeleteEventFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		GetEvent []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateEvent []struct {
			Ctx   context.Context
			Input event.EventInput
		}
		UpdateEvent []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input event.EventInput
		}
		DeleteEvent []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListAll     sync.RWMutex
	lockGetEvent    sync.RWMutex
	lockCreateEvent sync.RWMutex
	lockUpdateEvent sync.RWMutex
	lockDeleteEvent sync.RWMutex
}

func (mock *eventAdminServiceMock) ListAll(ctx context.Context) ([]domain.Event, error) {
	if mock.ListAllFunc == nil {
		panic("eventAdminServiceMock.ListAllFunc: method is nil but eventAdminService.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *eventAdminServiceMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *eventAdminServiceMock) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if mock.GetEventFunc == nil {
		panic("eventAdminServiceMock.GetEventFunc: method is nil but eventAdminService.GetEvent was just called")
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

func (mock *eventAdminServiceMock) GetEventCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetEvent.RLock()
	calls := mock.calls.GetEvent
	mock.lockGetEvent.RUnlock()
	return calls
}

func (mock *eventAdminServiceMock) CreateEvent(ctx context.Context, input event.EventInput) (domain.Event, error) {
	if mock.CreateEventFunc == nil {
		panic("eventAdminServiceMock.CreateEventFunc: method is nil but eventAdminService.CreateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.EventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEvent.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, callInfo)
	mock.lockCreateEvent.Unlock()
	return mock.CreateEventFunc(ctx, input)
}

func (mock *eventAdminServiceMock) CreateEventCalls() []struct {
	Ctx   context.Context
	Input event.EventInput
} {
	mock.lockCreateEvent.RLock()
	calls := mock.calls.CreateEvent
	mock.lockCreateEvent.RUnlock()
	return calls
}

func (mock *eventAdminServiceMock) UpdateEvent(ctx context.Context, id uuid.UUID, input event.EventInput) (domain.Event, error) {
	if mock.UpdateEventFunc == nil {
		panic("eventAdminServiceMock.UpdateEventFunc: method is nil but eventAdminService.UpdateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input event.EventInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateEvent.Lock()
	mock.calls.UpdateEvent = append(mock.calls.UpdateEvent, callInfo)
	mock.lockUpdateEvent.Unlock()
	return mock.UpdateEventFunc(ctx, id, input)
}

func (mock *eventAdminServiceMock) UpdateEventCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input event.EventInput
} {
	mock.lockUpdateEvent.RLock()
	calls := mock.calls.UpdateEvent
	mock.lockUpdateEvent.RUnlock()
	return calls
}

func (mock *eventAdminServiceMock) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEventFunc == nil {
		panic("eventAdminServiceMock.DeleteEventFunc: method is nil but eventAdminService.DeleteEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteEvent.Lock()
	mock.calls.DeleteEvent = append(mock.calls.DeleteEvent, callInfo)
	mock.lockDeleteEvent.Unlock()
	return mock.DeleteEventFunc(ctx, id)
}

func (mock *eventAdminServiceMock) DeleteEventCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteEvent.RLock()
	calls := mock.calls.DeleteEvent
	mock.lockDeleteEvent.RUnlock()
	return calls
}
