package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/repository"
	"github.com/Astemirdum/library-desk/desk/internal/session"
)

const defaultLoanDays = 14

type Clock func() time.Time

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) {
		s.now = c
	}
}

func WithLoanDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.loanDays = days
		}
	}
}

type Service struct {
	log      *zap.Logger
	repo     *repository.Repository
	sessions *session.Manager
	now      Clock
	loanDays int

	// writers hold it across read-check-write sequences, multi-read views share it
	mu sync.RWMutex
}

func NewService(repo *repository.Repository, sessions *session.Manager, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		sessions: sessions,
		now:      time.Now,
		loanDays: defaultLoanDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.Today(s.now())
}

// lookup resolves titles and names for list views.
type lookup struct {
	books   map[model.ID]model.Book
	members map[model.ID]model.Member
}

func (s *Service) newLookup() lookup {
	l := lookup{
		books:   make(map[model.ID]model.Book),
		members: make(map[model.ID]model.Member),
	}
	for _, b := range s.repo.Books.FindAll() {
		if _, ok := l.books[b.ID]; !ok {
			l.books[b.ID] = b
		}
	}
	for _, m := range s.repo.Members.FindAll() {
		if _, ok := l.members[m.ID]; !ok {
			l.members[m.ID] = m
		}
	}
	return l
}

func (l lookup) bookTitle(id model.ID) string {
	if b, ok := l.books[id]; ok {
		return b.Title
	}
	return "Unknown Book"
}

func (l lookup) memberName(id model.ID) string {
	if m, ok := l.members[id]; ok {
		return m.Name
	}
	return "Unknown Member"
}

func (l lookup) circulationView(rec model.CirculationRecord, today model.Date) model.CirculationView {
	return model.CirculationView{
		CirculationRecord: rec,
		BookTitle:         l.bookTitle(rec.BookID),
		MemberName:        l.memberName(rec.MemberID),
		Overdue:           IsOverdue(rec, today),
	}
}

// bookIn returns the live book with the given id inside a document callback.
func bookIn(doc *model.Document, id model.ID) *model.Book {
	for i := range doc.Books {
		if doc.Books[i].ID == id {
			return &doc.Books[i]
		}
	}
	return nil
}

func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
