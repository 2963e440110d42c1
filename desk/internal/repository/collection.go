package repository

import (
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

// DocumentStore gives access to the live document. Mutate persists when fn returns true.
type DocumentStore interface {
	Read(fn func(doc *model.Document))
	Mutate(fn func(doc *model.Document) bool)
}

type Entity interface {
	EntityID() model.ID
}

// Collection is a typed view over one top-level array of the document.
// Nothing is cached: every call goes through the store.
type Collection[T Entity] struct {
	store DocumentStore
	items func(doc *model.Document) *[]T
}

func newCollection[T Entity](store DocumentStore, items func(doc *model.Document) *[]T) *Collection[T] {
	return &Collection[T]{store: store, items: items}
}

// FindAll returns a copy of the collection in insertion order.
func (c *Collection[T]) FindAll() []T {
	var out []T
	c.store.Read(func(doc *model.Document) {
		src := *c.items(doc)
		out = make([]T, len(src))
		copy(out, src)
	})
	return out
}

func (c *Collection[T]) FindByID(id model.ID) (T, bool) {
	return c.Find(func(item T) bool {
		return item.EntityID() == id
	})
}

func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	c.store.Read(func(doc *model.Document) {
		for _, item := range *c.items(doc) {
			if pred(item) {
				found, ok = item, true
				return
			}
		}
	})
	return found, ok
}

func (c *Collection[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	c.store.Read(func(doc *model.Document) {
		for _, item := range *c.items(doc) {
			if pred(item) {
				out = append(out, item)
			}
		}
	})
	return out
}

func (c *Collection[T]) Len() int {
	var n int
	c.store.Read(func(doc *model.Document) {
		n = len(*c.items(doc))
	})
	return n
}

// Insert appends items with a single persist.
func (c *Collection[T]) Insert(items ...T) {
	if len(items) == 0 {
		return
	}
	c.store.Mutate(func(doc *model.Document) bool {
		*c.items(doc) = append(*c.items(doc), items...)
		return true
	})
}

// Patch applies fn to the entity with the given id. It reports whether one was found.
func (c *Collection[T]) Patch(id model.ID, fn func(item *T)) bool {
	var found bool
	c.store.Mutate(func(doc *model.Document) bool {
		items := *c.items(doc)
		for i := range items {
			if items[i].EntityID() == id {
				fn(&items[i])
				found = true
				return true
			}
		}
		return false
	})
	return found
}

// Remove drops every entity with the given id.
func (c *Collection[T]) Remove(id model.ID) {
	c.store.Mutate(func(doc *model.Document) bool {
		items := *c.items(doc)
		kept := items[:0:0]
		for _, item := range items {
			if item.EntityID() != id {
				kept = append(kept, item)
			}
		}
		*c.items(doc) = kept
		return true
	})
}
