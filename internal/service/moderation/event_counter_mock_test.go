package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/workchatseattle/community-backend/internal/domain"
)

var _ eventCounter = &eventCounterMock{}

type eventCounterMock struct {
	CountFunc func(ctx context.Context, now time.Time) (domain.EventCounts, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockCount sync.RWMutex
}

func (mock *eventCounterMock) Count(ctx context.Context, now time.Time) (domain.EventCounts, error) {
	if mock.CountFunc == nil {
		panic("eventCounterMock.CountFunc: method is nil but eventCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, now)
}

func (mock *eventCounterMock) CountCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
