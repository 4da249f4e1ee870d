package mentor

import (
	"context"
	"sync"

	"github.com/workchatseattle/community-backend/internal/domain"
)

var _ tagCatalog = &tagCatalogMock{}

type tagCatalogMock struct {
	CatalogFunc    func(ctx context.Context) (domain.TagCatalog, error)
	MissingIDsFunc func(ctx context.Context, kind domain.TagKind, ids []string) ([]string, error)

	calls struct {
		Catalog []struct {
			Ctx context.Context
		}
		MissingIDs []struct {
			Ctx  context.Context
			Kind domain.TagKind
			Ids  []string
		}
	}
	lockCatalog    sync.RWMutex
	lockMissingIDs sync.RWMutex
}

func (mock *tagCatalogMock) Catalog(ctx context.Context) (domain.TagCatalog, error) {
	if mock.CatalogFunc == nil {
		panic("tagCatalogMock.CatalogFunc: method is nil but tagCatalog.Catalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, callInfo)
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc(ctx)
}

func (mock *tagCatalogMock) CatalogCalls() []struct {
	Ctx context.Context
} {
	mock.lockCatalog.RLock()
	calls := mock.calls.Catalog
	mock.lockCatalog.RUnlock()
	return calls
}

func (mock *tagCatalogMock) MissingIDs(ctx context.Context, kind domain.TagKind, ids []string) ([]string, error) {
	if mock.MissingIDsFunc == nil {
		panic("tagCatalogMock.MissingIDsFunc: method is nil but tagCatalog.MissingIDs was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.TagKind
		Ids  []string
	}{
		Ctx:  ctx,
		Kind: kind,
		Ids:  ids,
	}
	mock.lockMissingIDs.Lock()
	mock.calls.MissingIDs = append(mock.calls.MissingIDs, callInfo)
	mock.lockMissingIDs.Unlock()
	return mock.MissingIDsFunc(ctx, kind, ids)
}

func (mock *tagCatalogMock) MissingIDsCalls() []struct {
	Ctx  context.Context
	Kind domain.TagKind
	Ids  []string
} {
	mock.lockMissingIDs.RLock()
	calls := mock.calls.MissingIDs
	mock.lockMissingIDs.RUnlock()
	return calls
}
