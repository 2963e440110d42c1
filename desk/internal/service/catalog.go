package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func (s *Service) ListBooks(ctx context.Context, search string) []model.Book {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return s.repo.Books.FindAll()
	}
	return s.repo.Books.Filter(func(b model.Book) bool {
		return containsFold(b.ID.String(), search) ||
			containsFold(b.Title, search) ||
			containsFold(b.Author, search) ||
			containsFold(b.Category, search)
	})
}

func (s *Service) GetBook(ctx context.Context, id model.ID) (model.Book, error) {
	book, ok := s.repo.Books.FindByID(id)
	if !ok {
		return model.Book{}, errors.Wrapf(errs.ErrBookNotFound, "id %s", id)
	}
	return book, nil
}

func (s *Service) AddBook(ctx context.Context, req model.BookCreate) (model.Book, error) {
	if req.Quantity < 0 {
		return model.Book{}, errs.NewValidationError("quantity", "must not be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	book := model.Book{
		ID:        s.repo.NextBookID(),
		Title:     req.Title,
		Author:    req.Author,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Available: req.Quantity,
		Image:     req.Image,
	}
	s.repo.Books.Insert(book)
	s.log.Info("book added", zap.String("id", book.ID.String()), zap.String("title", book.Title))
	return book, nil
}

// EditBook updates a book. Copies on loan are preserved when the quantity
// changes; if the new quantity is below them, available is clamped to zero.
func (s *Service) EditBook(ctx context.Context, id model.ID, req model.BookUpdate) (model.EditBookResult, error) {
	if req.Quantity < 0 {
		return model.EditBookResult{}, errs.NewValidationError("quantity", "must not be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.repo.Books.FindByID(id)
	if !ok {
		return model.EditBookResult{}, errors.Wrapf(errs.ErrBookNotFound, "id %s", id)
	}

	var res model.EditBookResult
	onLoan := book.Quantity - book.Available
	available := req.Quantity - onLoan
	if available < 0 {
		res.Warning = fmt.Sprintf("quantity %d is below the %d copies on loan, available set to 0", req.Quantity, onLoan)
		s.log.Warn("book stock clamped", zap.String("id", book.ID.String()), zap.Int("quantity", req.Quantity), zap.Int("onLoan", onLoan))
		available = 0
	}

	s.repo.Books.Patch(book.ID, func(b *model.Book) {
		b.Title = req.Title
		b.Author = req.Author
		b.Category = req.Category
		b.Quantity = req.Quantity
		b.Available = available
		if req.Image != "" {
			b.Image = req.Image
		}
	})
	res.Book, _ = s.repo.Books.FindByID(book.ID)
	return res, nil
}

func (s *Service) DeleteBook(ctx context.Context, id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.repo.Books.FindByID(id); !ok {
		return errors.Wrapf(errs.ErrBookNotFound, "id %s", id)
	}
	s.repo.Books.Remove(id)
	s.log.Info("book deleted", zap.String("id", id.String()))
	return nil
}

// ImportBooks adds parsed rows. Rows without a title are skipped.
func (s *Service) ImportBooks(ctx context.Context, rows []model.BookImportRow) model.ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, _ := s.repo.NextBookID().Int()
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		qty := row.Quantity
		if qty <= 0 {
			qty = 1
		}
		books = append(books, model.Book{
			ID:        model.IntID(next),
			Title:     title,
			Author:    orDefault(row.Author, "Unknown"),
			Category:  orDefault(row.Category, "General"),
			Quantity:  qty,
			Available: qty,
		})
		next++
	}
	s.repo.Books.Insert(books...)
	s.log.Info("books imported", zap.Int("rows", len(rows)), zap.Int("imported", len(books)))
	return model.ImportResult{Imported: len(books)}
}

func (s *Service) ListMembers(ctx context.Context, search string) []model.Member {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return s.repo.Members.FindAll()
	}
	return s.repo.Members.Filter(func(m model.Member) bool {
		return containsFold(m.ID.String(), search) ||
			containsFold(m.Name, search) ||
			containsFold(m.Email, search)
	})
}

func (s *Service) GetMember(ctx context.Context, id model.ID) (model.Member, error) {
	member, ok := s.repo.Members.FindByID(id)
	if !ok {
		return model.Member{}, errors.Wrapf(errs.ErrMemberNotFound, "id %s", id)
	}
	return member, nil
}

func (s *Service) AddMember(ctx context.Context, req model.MemberCreate) (model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := model.Member{
		ID:     s.repo.NextMemberID(),
		Name:   req.Name,
		Email:  req.Email,
		Type:   req.Type,
		Joined: s.today(),
		Photo:  req.Photo,
	}
	s.repo.Members.Insert(member)
	s.log.Info("member registered", zap.String("id", member.ID.String()))
	return member, nil
}

func (s *Service) EditMember(ctx context.Context, id model.ID, req model.MemberUpdate) (model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.repo.Members.FindByID(id); !ok {
		return model.Member{}, errors.Wrapf(errs.ErrMemberNotFound, "id %s", id)
	}
	s.repo.Members.Patch(id, func(m *model.Member) {
		m.Name = req.Name
		m.Email = req.Email
		m.Type = req.Type
		if req.Photo != "" {
			m.Photo = req.Photo
		}
	})
	member, _ := s.repo.Members.FindByID(id)
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.repo.Members.FindByID(id); !ok {
		return errors.Wrapf(errs.ErrMemberNotFound, "id %s", id)
	}
	s.repo.Members.Remove(id)
	s.log.Info("member deleted", zap.String("id", id.String()))
	return nil
}

// ImportMembers registers parsed rows. Rows without a name are skipped.
func (s *Service) ImportMembers(ctx context.Context, rows []model.MemberImportRow) model.ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seq int64
	if n, err := fmt.Sscanf(s.repo.NextMemberID().String(), "M%d", &seq); n != 1 || err != nil {
		seq = 1
	}
	today := s.today()
	members := make([]model.Member, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		typ := row.Type
		switch typ {
		case model.Student, model.Faculty, model.Staff:
		default:
			typ = model.Student
		}
		members = append(members, model.Member{
			ID:     model.ID(fmt.Sprintf("M%03d", seq)),
			Name:   name,
			Email:  strings.TrimSpace(row.Email),
			Type:   typ,
			Joined: today,
		})
		seq++
	}
	s.repo.Members.Insert(members...)
	s.log.Info("members imported", zap.Int("rows", len(rows)), zap.Int("imported", len(members)))
	return model.ImportResult{Imported: len(members)}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
