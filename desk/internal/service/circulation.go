package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

// IsOverdue holds for an Issued record whose due day is before today.
func IsOverdue(rec model.CirculationRecord, today model.Date) bool {
	return rec.Overdue(today)
}

// IssueBook lends one copy of a book to a member. Missing dates default to
// today and today plus the loan period.
func (s *Service) IssueBook(ctx context.Context, req model.IssueRequest) (model.CirculationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.repo.Books.FindByID(req.BookID)
	if !ok {
		return model.CirculationRecord{}, errors.Wrapf(errs.ErrBookNotFound, "id %s", req.BookID)
	}
	if book.Available < 1 {
		return model.CirculationRecord{}, errors.Wrapf(errs.ErrOutOfStock, "%q", book.Title)
	}
	member, ok := s.repo.Members.FindByID(req.MemberID)
	if !ok {
		return model.CirculationRecord{}, errors.Wrapf(errs.ErrMemberNotFound, "id %s", req.MemberID)
	}
	if _, dup := s.repo.Circulation.Find(func(c model.CirculationRecord) bool {
		return c.BookID == book.ID && c.MemberID == member.ID && c.Status == model.Issued
	}); dup {
		return model.CirculationRecord{}, errs.ErrDuplicateIssue
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = s.today()
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDays(s.loanDays)
	}
	if dueDate.Before(issueDate) {
		return model.CirculationRecord{}, errs.NewValidationError("dueDate", "due date is before issue date")
	}

	rec := model.CirculationRecord{
		ID:        s.repo.NextCirculationID(),
		BookID:    book.ID,
		MemberID:  member.ID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    model.Issued,
	}
	s.repo.Update(func(doc *model.Document) bool {
		doc.Circulation = append(doc.Circulation, rec)
		if b := bookIn(doc, book.ID); b != nil {
			b.Available--
		}
		return true
	})

	s.log.Info("book issued",
		zap.String("record", rec.ID.String()),
		zap.String("book", book.ID.String()),
		zap.String("member", member.ID.String()),
		zap.Stringer("due", dueDate))
	return rec, nil
}

// ReturnBook closes an Issued record. Records in any other state are rejected.
func (s *Service) ReturnBook(ctx context.Context, circulationID model.ID) (model.ReturnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.repo.Circulation.FindByID(circulationID)
	if !ok {
		return model.ReturnResult{}, errors.Wrapf(errs.ErrRecordNotFound, "id %s", circulationID)
	}
	if rec.Status != model.Issued {
		return model.ReturnResult{}, errors.Wrapf(errs.ErrInvalidState, "record %s is %s", rec.ID, rec.Status)
	}
	return s.returnRecord(rec), nil
}

// returnRecord closes an Issued record and restores one copy in a single
// document update. Callers hold mu.
func (s *Service) returnRecord(rec model.CirculationRecord) model.ReturnResult {
	today := s.today()
	rec.Status = model.Returned
	rec.ReturnDate = &today
	res := model.ReturnResult{Record: rec}

	s.repo.Update(func(doc *model.Document) bool {
		for i := range doc.Circulation {
			if doc.Circulation[i].ID == rec.ID {
				doc.Circulation[i].Status = model.Returned
				doc.Circulation[i].ReturnDate = &today
				break
			}
		}
		book := bookIn(doc, rec.BookID)
		switch {
		case book == nil:
			res.Warning = "book is no longer in the catalog, stock not updated"
		case book.Available >= book.Quantity:
			res.Available = book.Available
			res.Warning = "all copies are already on the shelf, stock not updated"
		default:
			book.Available++
			res.Available = book.Available
		}
		return true
	})
	if res.Warning != "" {
		s.log.Warn("book returned", zap.String("record", rec.ID.String()), zap.String("warning", res.Warning))
	} else {
		s.log.Info("book returned", zap.String("record", rec.ID.String()), zap.Int("available", res.Available))
	}
	return res
}

// ScanReturn returns the single open loan of a scanned book, or lists the
// candidates when several loans match.
func (s *Service) ScanReturn(ctx context.Context, bookID model.ID) (model.ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues := s.repo.Circulation.Filter(func(c model.CirculationRecord) bool {
		return c.BookID == bookID && c.Status == model.Issued
	})
	switch len(issues) {
	case 0:
		return model.ScanResult{}, errors.Wrapf(errs.ErrNoActiveIssue, "book %s", bookID)
	case 1:
		res := s.returnRecord(issues[0])
		return model.ScanResult{Returned: &res}, nil
	}

	today := s.today()
	l := s.newLookup()
	candidates := make([]model.ScanCandidate, 0, len(issues))
	for _, c := range issues {
		name := c.MemberID.String()
		if m, ok := l.members[c.MemberID]; ok {
			name = m.Name
		}
		candidates = append(candidates, model.ScanCandidate{
			CirculationID: c.ID,
			MemberID:      c.MemberID,
			MemberName:    name,
			DueDate:       c.DueDate,
			Overdue:       IsOverdue(c, today),
		})
	}
	return model.ScanResult{Candidates: candidates}, nil
}

// CheckStatus reports whether a book is out and with whom.
func (s *Service) CheckStatus(ctx context.Context, bookID model.ID) (model.BookStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.repo.Books.FindByID(bookID)
	if !ok {
		return model.BookStatus{}, errors.Wrapf(errs.ErrBookNotFound, "id %s", bookID)
	}
	status := model.BookStatus{Book: book}
	rec, ok := s.repo.Circulation.Find(func(c model.CirculationRecord) bool {
		return c.BookID == book.ID && c.Status == model.Issued
	})
	if !ok {
		return status, nil
	}

	status.IsIssued = true
	status.IssueDate = &rec.IssueDate
	status.DueDate = &rec.DueDate
	status.Overdue = IsOverdue(rec, s.today())
	if m, ok := s.repo.Members.FindByID(rec.MemberID); ok {
		status.Holder = &m
	}
	return status, nil
}

// ListCirculation lists records newest first, optionally narrowed to book ids containing filter.
func (s *Service) ListCirculation(ctx context.Context, filter string) []model.CirculationView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter = strings.TrimSpace(filter)
	records := s.repo.Circulation.Filter(func(c model.CirculationRecord) bool {
		return filter == "" || strings.Contains(c.BookID.String(), filter)
	})
	today := s.today()
	l := s.newLookup()
	out := make([]model.CirculationView, 0, len(records))
	for _, rec := range reversed(records) {
		out = append(out, l.circulationView(rec, today))
	}
	return out
}
