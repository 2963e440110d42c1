package repository

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

const firstBookID = 101

type Repository struct {
	store DocumentStore
	log   *zap.Logger

	Books       *Collection[model.Book]
	Members     *Collection[model.Member]
	Circulation *Collection[model.CirculationRecord]
	Reviews     *Collection[model.Review]
}

func NewRepository(store DocumentStore, log *zap.Logger) *Repository {
	return &Repository{
		store: store,
		log:   log.Named("repo"),
		Books: newCollection(store, func(doc *model.Document) *[]model.Book {
			return &doc.Books
		}),
		Members: newCollection(store, func(doc *model.Document) *[]model.Member {
			return &doc.Members
		}),
		Circulation: newCollection(store, func(doc *model.Document) *[]model.CirculationRecord {
			return &doc.Circulation
		}),
		Reviews: newCollection(store, func(doc *model.Document) *[]model.Review {
			return &doc.Reviews
		}),
	}
}

// AdminConfig returns the stored credentials, or the defaults when none exist.
func (r *Repository) AdminConfig() model.AdminConfig {
	cfg := model.DefaultAdminConfig()
	r.store.Read(func(doc *model.Document) {
		if doc.AdminConfig != nil {
			cfg = *doc.AdminConfig
		}
	})
	return cfg
}

func (r *Repository) SaveAdminConfig(cfg model.AdminConfig) {
	r.store.Mutate(func(doc *model.Document) bool {
		doc.AdminConfig = &cfg
		return true
	})
	r.log.Info("admin config updated", zap.String("username", cfg.Username))
}

// Update applies fn to the whole document under one lock. Changes spanning
// several collections reach readers and the persister as one snapshot.
func (r *Repository) Update(fn func(doc *model.Document) bool) {
	r.store.Mutate(fn)
}

func (r *Repository) NextCirculationID() model.ID {
	return nextSequence(r.Circulation.FindAll(), 1)
}

func (r *Repository) NextReviewID() model.ID {
	return nextSequence(r.Reviews.FindAll(), 1)
}

// NextBookID continues the numeric book ids, starting at 101.
func (r *Repository) NextBookID() model.ID {
	return nextSequence(r.Books.FindAll(), firstBookID)
}

// NextMemberID allocates the next free id of the form M001.
func (r *Repository) NextMemberID() model.ID {
	var max int64
	for _, m := range r.Members.FindAll() {
		digits, ok := strings.CutPrefix(string(m.ID), "M")
		if !ok {
			continue
		}
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return model.ID(fmt.Sprintf("M%03d", max+1))
}

func nextSequence[T Entity](items []T, first int64) model.ID {
	next := first
	for _, item := range items {
		if n, ok := item.EntityID().Int(); ok && n >= next {
			next = n + 1
		}
	}
	return model.IntID(next)
}
