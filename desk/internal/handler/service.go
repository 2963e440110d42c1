package handler

import (
	"context"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/desk/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	LoginAdmin(ctx context.Context, req model.AdminLoginRequest) (model.TokenResponse, error)
	LoginMember(ctx context.Context, req model.MemberLoginRequest) (model.TokenResponse, error)
	Logout(ctx context.Context)
	Authorize(ctx context.Context, token string) (session.Session, error)
	SaveAdminConfig(ctx context.Context, req model.AdminConfigRequest) error
}

type CatalogService interface {
	ListBooks(ctx context.Context, search string) []model.Book
	GetBook(ctx context.Context, id model.ID) (model.Book, error)
	AddBook(ctx context.Context, req model.BookCreate) (model.Book, error)
	EditBook(ctx context.Context, id model.ID, req model.BookUpdate) (model.EditBookResult, error)
	DeleteBook(ctx context.Context, id model.ID) error
	ImportBooks(ctx context.Context, rows []model.BookImportRow) model.ImportResult
	ListMembers(ctx context.Context, search string) []model.Member
	GetMember(ctx context.Context, id model.ID) (model.Member, error)
	AddMember(ctx context.Context, req model.MemberCreate) (model.Member, error)
	EditMember(ctx context.Context, id model.ID, req model.MemberUpdate) (model.Member, error)
	DeleteMember(ctx context.Context, id model.ID) error
	ImportMembers(ctx context.Context, rows []model.MemberImportRow) model.ImportResult
}

type CirculationService interface {
	IssueBook(ctx context.Context, req model.IssueRequest) (model.CirculationRecord, error)
	ReturnBook(ctx context.Context, circulationID model.ID) (model.ReturnResult, error)
	ScanReturn(ctx context.Context, bookID model.ID) (model.ScanResult, error)
	CheckStatus(ctx context.Context, bookID model.ID) (model.BookStatus, error)
	ListCirculation(ctx context.Context, filter string) []model.CirculationView
	SubmitReview(ctx context.Context, req model.ReviewCreate) (model.Review, error)
	ListReviews(ctx context.Context) []model.ReviewView
	AdminDashboard(ctx context.Context) model.AdminDashboard
	MemberDashboard(ctx context.Context, memberID model.ID) (model.MemberDashboard, error)
}

var (
	_ AuthService        = (*service.Service)(nil)
	_ CatalogService     = (*service.Service)(nil)
	_ CirculationService = (*service.Service)(nil)
)
