package memory

import (
	"context"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/pkg/cmap"
)

// ActivityStore holds the activity catalogue keyed by exact activity name.
type ActivityStore struct {
	activities *cmap.Map[*domain.Activity]
}

// NewActivityStore creates a store holding the given activities.
func NewActivityStore(activities ...domain.Activity) *ActivityStore {
	s := &ActivityStore{
		activities: cmap.New[*domain.Activity](),
	}
	for i := range activities {
		s.Put(&activities[i])
	}
	return s
}

// Put inserts or replaces an activity.
func (s *ActivityStore) Put(activity *domain.Activity) {
	s.activities.Set(activity.Name, activity.Clone())
}

// Get returns a copy of the named activity.
func (s *ActivityStore) Get(_ context.Context, name string) (*domain.Activity, error) {
	var (
		out *domain.Activity
		err error
	)
	s.activities.View(name, func(a *domain.Activity, ok bool) {
		if !ok {
			err = domain.ErrActivityNotFound
			return
		}
		out = a.Clone()
	})
	return out, err
}

// List returns a copy of every activity keyed by name.
func (s *ActivityStore) List(_ context.Context) (map[string]*domain.Activity, error) {
	out := make(map[string]*domain.Activity, s.activities.Count())
	s.activities.Range(func(name string, a *domain.Activity) bool {
		out[name] = a.Clone()
		return true
	})
	return out, nil
}

// Update applies fn to the named activity as one atomic step.
//
// fn works on a private copy; the copy replaces the stored activity only when
// fn returns nil, so a rejected operation leaves the roster untouched. The
// returned activity is the state after the update.
func (s *ActivityStore) Update(_ context.Context, name string, fn func(*domain.Activity) error) (*domain.Activity, error) {
	var out *domain.Activity
	err := s.activities.Compute(name, func(current *domain.Activity, ok bool) (*domain.Activity, error) {
		if !ok {
			return nil, domain.ErrActivityNotFound
		}
		next := current.Clone()
		if err := fn(next); err != nil {
			return nil, err
		}
		out = next.Clone()
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of activities.
func (s *ActivityStore) Count() int {
	return s.activities.Count()
}
