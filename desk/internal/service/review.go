package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/session"
)

const recentTransactions = 5

// SubmitReview stores a review by the member of the current session.
func (s *Service) SubmitReview(ctx context.Context, req model.ReviewCreate) (model.Review, error) {
	sess, ok := session.FromContext(ctx)
	if !ok || sess.Role != session.RoleMember {
		return model.Review{}, errors.Wrap(errs.ErrForbidden, "only members can write reviews")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return model.Review{}, errs.NewValidationError("rating", "must be between 1 and 5")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.repo.Books.FindByID(req.BookID)
	if !ok {
		return model.Review{}, errors.Wrapf(errs.ErrBookNotFound, "id %s", req.BookID)
	}
	review := model.Review{
		ID:       s.repo.NextReviewID(),
		BookID:   book.ID,
		MemberID: sess.MemberID,
		Rating:   req.Rating,
		Text:     req.Text,
		Date:     s.today(),
	}
	s.repo.Reviews.Insert(review)
	s.log.Info("review submitted", zap.String("book", book.ID.String()), zap.String("member", sess.MemberID.String()))
	return review, nil
}

// ListReviews returns all reviews, newest first.
func (s *Service) ListReviews(ctx context.Context) []model.ReviewView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReviews()
}

func (s *Service) listReviews() []model.ReviewView {
	l := s.newLookup()
	reviews := reversed(s.repo.Reviews.FindAll())
	out := make([]model.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		title := "Unknown"
		if b, ok := l.books[r.BookID]; ok {
			title = b.Title
		}
		out = append(out, model.ReviewView{
			Review:     r,
			BookTitle:  title,
			MemberName: l.memberName(r.MemberID),
		})
	}
	return out
}

func (s *Service) AdminDashboard(ctx context.Context) model.AdminDashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.today()
	circulation := s.repo.Circulation.FindAll()
	dash := model.AdminDashboard{
		TotalBooks:   s.repo.Books.Len(),
		TotalMembers: s.repo.Members.Len(),
	}
	for _, c := range circulation {
		if c.Status == model.Issued {
			dash.IssuedBooks++
		}
		if IsOverdue(c, today) {
			dash.Overdue++
		}
	}

	recent := circulation
	if len(recent) > recentTransactions {
		recent = recent[len(recent)-recentTransactions:]
	}
	l := s.newLookup()
	dash.RecentTransactions = make([]model.CirculationView, 0, len(recent))
	for _, c := range reversed(recent) {
		dash.RecentTransactions = append(dash.RecentTransactions, l.circulationView(c, today))
	}
	dash.Reviews = s.listReviews()
	dash.TotalReviews = len(dash.Reviews)
	return dash
}

// MemberDashboard shows a member's open loans and reading history, newest first.
func (s *Service) MemberDashboard(ctx context.Context, memberID model.ID) (model.MemberDashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.repo.Members.FindByID(memberID)
	if !ok {
		return model.MemberDashboard{}, errors.Wrapf(errs.ErrMemberNotFound, "id %s", memberID)
	}
	today := s.today()
	l := s.newLookup()
	mine := s.repo.Circulation.Filter(func(c model.CirculationRecord) bool {
		return c.MemberID == member.ID
	})
	reviews := s.repo.Reviews.Filter(func(r model.Review) bool {
		return r.MemberID == member.ID
	})

	dash := model.MemberDashboard{
		Member:  member,
		Active:  make([]model.ActiveLoan, 0),
		History: make([]model.HistoryEntry, 0),
	}
	for _, c := range mine {
		if c.Status == model.Issued {
			dash.Active = append(dash.Active, model.ActiveLoan{
				CirculationView: l.circulationView(c, today),
				DaysLeft:        today.DaysUntil(c.DueDate),
			})
		}
	}
	for _, c := range reversed(mine) {
		if c.Status != model.Returned {
			continue
		}
		entry := model.HistoryEntry{CirculationView: l.circulationView(c, today)}
		for i := range reviews {
			if reviews[i].BookID == c.BookID {
				r := reviews[i]
				entry.Review = &r
				break
			}
		}
		dash.History = append(dash.History, entry)
	}
	return dash, nil
}
