package listview

import (
	"sort"

	"github.com/google/uuid"
)

// Selection tracks the row ids currently checked for bulk actions.
// It is page-scoped: SelectAll replaces the whole set with the ids of the
// page being displayed, and navigating away does not carry checks over.
type Selection struct {
	ids map[uuid.UUID]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[uuid.UUID]struct{})}
}

// SelectAll replaces the tracked set with exactly the given ids.
func (s *Selection) SelectAll(ids []uuid.UUID) {
	s.ids = make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[uuid.UUID]struct{})
}

func (s *Selection) Toggle(id uuid.UUID, checked bool) {
	if checked {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

func (s *Selection) Has(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

func (s *Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// Selected keeps the items whose id is currently checked, preserving the
// input order.
func Selected[T any](items []T, id func(T) uuid.UUID, sel *Selection) []T {
	if sel == nil || sel.Count() == 0 {
		return nil
	}
	kept := make([]T, 0, sel.Count())
	for _, item := range items {
		if sel.Has(id(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
