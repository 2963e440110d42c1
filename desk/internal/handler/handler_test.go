package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/handler"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/session"

	service_mocks "github.com/Astemirdum/library-desk/desk/internal/handler/mocks"
)

type mocks struct {
	auth        *service_mocks.MockAuthService
	catalog     *service_mocks.MockCatalogService
	circulation *service_mocks.MockCirculationService
}

var (
	adminSession  = session.Session{ID: "s-admin", Role: session.RoleAdmin, Username: "admin"}
	memberSession = session.Session{ID: "s-member", Role: session.RoleMember, MemberID: "M001"}
)

func asSession(s session.Session) func(m mocks) {
	return func(m mocks) {
		m.auth.EXPECT().Authorize(gomock.Any(), "tok").Return(s, nil)
	}
}

func TestHandler_Routes(t *testing.T) {
	t.Parallel()
	type input struct {
		method string
		target string
		body   string
		token  bool
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "login admin. ok",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().LoginAdmin(gomock.Any(), model.AdminLoginRequest{Username: "admin", Password: "admin123"}).
					Return(model.TokenResponse{Token: "tok", Role: "admin"}, nil)
			},
			input: input{method: http.MethodPost, target: "/api/v1/auth/admin", body: `{"username":"admin","password":"admin123"}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"token":"tok","role":"admin"}`,
			},
		},
		{
			name: "login admin. bad credentials",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().LoginAdmin(gomock.Any(), gomock.Any()).Return(model.TokenResponse{}, errs.ErrInvalidCredentials)
			},
			input: input{method: http.MethodPost, target: "/api/v1/auth/admin", body: `{"username":"admin","password":"nope"}`},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid username or password","kind":"Unauthorized"}`,
			},
		},
		{
			name:         "login admin. missing password",
			mockBehavior: func(m mocks) {},
			input:        input{method: http.MethodPost, target: "/api/v1/auth/admin", body: `{"username":"admin"}`},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "login member. numeric id",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().LoginMember(gomock.Any(), model.MemberLoginRequest{MemberID: "7"}).
					Return(model.TokenResponse{Token: "tok", Role: "member", MemberID: "7"}, nil)
			},
			input: input{method: http.MethodPost, target: "/api/v1/auth/member", body: `{"memberId":7}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"token":"tok","role":"member","memberId":7}`,
			},
		},
		{
			name:         "books. no token",
			mockBehavior: func(m mocks) {},
			input:        input{method: http.MethodGet, target: "/api/v1/books"},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"no token in Authorization header","kind":"Unauthorized"}`,
			},
		},
		{
			name: "books. closed session",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "tok").Return(session.Session{}, errs.ErrUnauthorized)
			},
			input: input{method: http.MethodGet, target: "/api/v1/books", token: true},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"unauthorized","kind":"Unauthorized"}`,
			},
		},
		{
			name: "books. member may search",
			mockBehavior: func(m mocks) {
				asSession(memberSession)(m)
				m.catalog.EXPECT().ListBooks(gomock.Any(), "gatsby").Return([]model.Book{
					{ID: "101", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction", Quantity: 2, Available: 1},
				})
			},
			input: input{method: http.MethodGet, target: "/api/v1/books?search=gatsby", token: true},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":101,"title":"The Great Gatsby","author":"F. Scott Fitzgerald","category":"Fiction","quantity":2,"available":1}]`,
			},
		},
		{
			name:         "books. member cannot add",
			mockBehavior: asSession(memberSession),
			input:        input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":"t","author":"a","category":"c","quantity":1}`, token: true},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"this action requires the admin role","kind":"Forbidden"}`,
			},
		},
		{
			name: "books. get unknown",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.catalog.EXPECT().GetBook(gomock.Any(), model.ID("999")).Return(model.Book{}, errs.ErrBookNotFound)
			},
			input: input{method: http.MethodGet, target: "/api/v1/books/999", token: true},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book not found","kind":"NotFound"}`,
			},
		},
		{
			name: "books. delete",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.catalog.EXPECT().DeleteBook(gomock.Any(), model.ID("101")).Return(nil)
			},
			input:    input{method: http.MethodDelete, target: "/api/v1/books/101", token: true},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name: "books. import rows",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.catalog.EXPECT().ImportBooks(gomock.Any(), []model.BookImportRow{{Title: "Dune", Author: "Herbert", Category: "Sci-Fi", Quantity: 3}}).
					Return(model.ImportResult{Imported: 1})
			},
			input: input{
				method: http.MethodPost, target: "/api/v1/books/import", token: true,
				body: `{"rows":[{"title":"Dune","author":"Herbert","category":"Sci-Fi","quantity":3}]}`,
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"imported":1}`},
		},
		{
			name: "members. invalid email",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
			},
			input: input{
				method: http.MethodPost, target: "/api/v1/members", token: true,
				body: `{"name":"Ann","email":"nope","type":"Student"}`,
			},
			response: response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "issue. ok",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().IssueBook(gomock.Any(), model.IssueRequest{BookID: "101", MemberID: "M001"}).
					Return(model.CirculationRecord{
						ID: "3", BookID: "101", MemberID: "M001",
						IssueDate: model.NewDate(2024, 3, 1), DueDate: model.NewDate(2024, 3, 15),
						Status: model.Issued,
					}, nil)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/issue", body: `{"bookId":101,"memberId":"M001"}`, token: true},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":3,"bookId":101,"memberId":"M001","issueDate":"2024-03-01","dueDate":"2024-03-15","returnDate":null,"status":"Issued"}`,
			},
		},
		{
			name: "issue. out of stock",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().IssueBook(gomock.Any(), gomock.Any()).Return(model.CirculationRecord{}, errs.ErrOutOfStock)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/issue", body: `{"bookId":"101","memberId":"M001"}`, token: true},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is out of stock","kind":"OutOfStock"}`,
			},
		},
		{
			name: "issue. duplicate",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().IssueBook(gomock.Any(), gomock.Any()).Return(model.CirculationRecord{}, errs.ErrDuplicateIssue)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/issue", body: `{"bookId":"101","memberId":"M001"}`, token: true},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"member already has this book issued","kind":"DuplicateIssue"}`,
			},
		},
		{
			name: "return. already returned",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().ReturnBook(gomock.Any(), model.ID("2")).Return(model.ReturnResult{}, errs.ErrInvalidState)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/2/return", token: true},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"circulation record is not issued","kind":"InvalidState"}`,
			},
		},
		{
			name: "scan return. no active issue",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().ScanReturn(gomock.Any(), model.ID("103")).Return(model.ScanResult{}, errs.ErrNoActiveIssue)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/scan-return", body: `{"bookId":" 103 "}`, token: true},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"active issue not found","kind":"NotFound"}`,
			},
		},
		{
			name: "scan return. candidates",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().ScanReturn(gomock.Any(), model.ID("101")).Return(model.ScanResult{
					Candidates: []model.ScanCandidate{
						{CirculationID: "1", MemberID: "M001", MemberName: "Ann", DueDate: model.NewDate(2024, 3, 15)},
						{CirculationID: "4", MemberID: "M002", MemberName: "Bob", DueDate: model.NewDate(2024, 3, 20)},
					},
				}, nil)
			},
			input: input{method: http.MethodPost, target: "/api/v1/circulation/scan-return", body: `{"bookId":101}`, token: true},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"candidates":[` +
					`{"circulationId":1,"memberId":"M001","memberName":"Ann","dueDate":"2024-03-15","overdue":false},` +
					`{"circulationId":4,"memberId":"M002","memberName":"Bob","dueDate":"2024-03-20","overdue":false}]}`,
			},
		},
		{
			name: "review. admin cannot submit",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
			},
			input:    input{method: http.MethodPost, target: "/api/v1/reviews", body: `{"bookId":101,"rating":5,"text":"great"}`, token: true},
			response: response{expectedCode: http.StatusForbidden},
		},
		{
			name: "review. rating out of range",
			mockBehavior: func(m mocks) {
				asSession(memberSession)(m)
			},
			input:    input{method: http.MethodPost, target: "/api/v1/reviews", body: `{"bookId":101,"rating":6,"text":"great"}`, token: true},
			response: response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "dashboard. member sees own",
			mockBehavior: func(m mocks) {
				asSession(memberSession)(m)
				m.circulation.EXPECT().MemberDashboard(gomock.Any(), model.ID("M001")).Return(model.MemberDashboard{}, nil)
			},
			input:    input{method: http.MethodGet, target: "/api/v1/dashboard", token: true},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "dashboard. admin totals",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().AdminDashboard(gomock.Any()).Return(model.AdminDashboard{TotalBooks: 3})
			},
			input:    input{method: http.MethodGet, target: "/api/v1/dashboard", token: true},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "settings. mismatch",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.auth.EXPECT().SaveAdminConfig(gomock.Any(), gomock.Any()).
					Return(errs.NewValidationError("confirmPassword", "passwords do not match"))
			},
			input:    input{method: http.MethodPut, target: "/api/v1/settings/admin", body: `{"username":"admin","newPassword":"a","confirmPassword":"b"}`, token: true},
			response: response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "return. persistence down",
			mockBehavior: func(m mocks) {
				asSession(adminSession)(m)
				m.circulation.EXPECT().ReturnBook(gomock.Any(), model.ID("1")).
					Return(model.ReturnResult{}, errors.Wrap(errs.ErrPersistence, "save"))
			},
			input:    input{method: http.MethodPost, target: "/api/v1/circulation/1/return", token: true},
			response: response{expectedCode: http.StatusServiceUnavailable},
		},
		{
			name: "logout",
			mockBehavior: func(m mocks) {
				asSession(memberSession)(m)
				m.auth.EXPECT().Logout(gomock.Any())
			},
			input:    input{method: http.MethodPost, target: "/api/v1/auth/logout", token: true},
			response: response{expectedCode: http.StatusNoContent},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			m := mocks{
				auth:        service_mocks.NewMockAuthService(c),
				catalog:     service_mocks.NewMockCatalogService(c),
				circulation: service_mocks.NewMockCirculationService(c),
			}
			tt.mockBehavior(m)

			h := handler.New(m.auth, m.catalog, m.circulation, zap.NewNop())
			r := h.NewRouter()

			req := httptest.NewRequest(tt.input.method, tt.input.target, strings.NewReader(tt.input.body))
			if tt.input.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.input.token {
				req.Header.Set("Authorization", "Bearer tok")
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, tt.response.expectedCode, rec.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()

	h := handler.New(
		service_mocks.NewMockAuthService(c),
		service_mocks.NewMockCatalogService(c),
		service_mocks.NewMockCirculationService(c),
		zap.NewNop(),
	)
	rec := httptest.NewRecorder()
	h.NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/manage/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}
