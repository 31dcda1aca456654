// Package dataloader provides per-request loaders that batch lookups made
// while rendering one response into single SQL calls.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type areaRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Area, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	AreaByID *dataloader.Loader[uuid.UUID, *domain.Area]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the set, so it must not outlive a request.
func NewLoaders(areas areaRepo) *Loaders {
	return &Loaders{
		AreaByID: dataloader.NewBatchedLoader(
			newAreaBatchFn(areas),
			dataloader.WithWait[uuid.UUID, *domain.Area](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Area](maxBatch),
		),
	}
}

// newAreaBatchFn resolves area ids in one query. Unknown ids load as nil.
func newAreaBatchFn(repo areaRepo) dataloader.BatchFunc[uuid.UUID, *domain.Area] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Area] {
		results := make([]*dataloader.Result[*domain.Area], len(keys))

		areas, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Area]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Area, len(areas))
		for i := range areas {
			byID[areas[i].ID] = &areas[i]
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.Area]{Data: byID[k]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or nil outside the middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// AreaName resolves an area name through the request loader. A nil id, a
// missing loader or an unknown area all give "".
func AreaName(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil {
		return "", nil
	}
	l := FromContext(ctx)
	if l == nil {
		return "", nil
	}
	area, err := l.AreaByID.Load(ctx, *id)()
	if err != nil || area == nil {
		return "", err
	}
	return area.Name, nil
}

// AreaNames resolves the names of many areas with one batched lookup.
// names[i] belongs to ids[i]; nil or unknown ids give "".
func AreaNames(ctx context.Context, ids []*uuid.UUID) ([]string, error) {
	names := make([]string, len(ids))
	l := FromContext(ctx)
	if l == nil {
		return names, nil
	}

	keys := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			keys = append(keys, *id)
		}
	}
	if len(keys) == 0 {
		return names, nil
	}

	areas, errs := l.AreaByID.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	k := 0
	for i, id := range ids {
		if id == nil {
			continue
		}
		if areas[k] != nil {
			names[i] = areas[k].Name
		}
		k++
	}
	return names, nil
}

// Middleware installs a fresh set of loaders on every request.
func Middleware(areas areaRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(areas))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
