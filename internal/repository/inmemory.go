package repository

import (
	"context"
	"slices"
	"sync"

	"category_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// Entity is what the in-memory repository can store: something with a stable
// identifier that can be deep copied.
type Entity[E any] interface {
	ID() string
	Clone() E
}

// InMemoryRepository keeps entities in insertion order. Entities are cloned
// on the way in and on the way out.
type InMemoryRepository[E Entity[E]] struct {
	mu     sync.RWMutex
	items  []E
	search SearchConfig[E]
	log    *logrus.Logger
}

func NewInMemoryRepository[E Entity[E]](cfg SearchConfig[E], logger *logrus.Logger) *InMemoryRepository[E] {
	return &InMemoryRepository[E]{
		items:  []E{},
		search: cfg,
		log:    logger,
	}
}

func (r *InMemoryRepository[E]) Insert(_ context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, entity.Clone())
	r.log.Debugf("In-memory: inserted entity %s (%d stored)", entity.ID(), len(r.items))
	return nil
}

func (r *InMemoryRepository[E]) FindByID(_ context.Context, id string) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, err := r.indexOf(id)
	if err != nil {
		var zero E
		return zero, err
	}
	return r.items[idx].Clone(), nil
}

func (r *InMemoryRepository[E]) FindAll(_ context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cloneAll(r.items), nil
}

func (r *InMemoryRepository[E]) Update(_ context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, err := r.indexOf(entity.ID())
	if err != nil {
		return err
	}
	r.items[idx] = entity.Clone()
	r.log.Debugf("In-memory: updated entity %s", entity.ID())
	return nil
}

func (r *InMemoryRepository[E]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, err := r.indexOf(id)
	if err != nil {
		return err
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	r.log.Debugf("In-memory: deleted entity %s", id)
	return nil
}

func (r *InMemoryRepository[E]) SortableFields() []string {
	return r.search.SortableFields()
}

// Search never mutates the store.
func (r *InMemoryRepository[E]) Search(_ context.Context, params domain.SearchParams) (domain.SearchResult[E], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := RunSearch(r.items, params, r.search)
	result.Items = r.cloneAll(result.Items)
	r.log.Debugf("In-memory: search page=%d per_page=%d filter=%q matched %d", params.Page(), params.PerPage(), params.Filter(), result.Total)
	return result, nil
}

func (r *InMemoryRepository[E]) indexOf(id string) (int, error) {
	idx := slices.IndexFunc(r.items, func(e E) bool { return e.ID() == id })
	if idx < 0 {
		r.log.Warnf("In-memory: entity %s not found", id)
		return -1, domain.NewNotFoundError(id)
	}
	return idx, nil
}

func (r *InMemoryRepository[E]) cloneAll(items []E) []E {
	out := make([]E, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

