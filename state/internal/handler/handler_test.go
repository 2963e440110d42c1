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

	"github.com/Astemirdum/library-desk/state/internal/errs"
	"github.com/Astemirdum/library-desk/state/internal/handler"
	"github.com/Astemirdum/library-desk/state/internal/model"

	service_mocks "github.com/Astemirdum/library-desk/state/internal/handler/mocks"
)

func TestHandler_State(t *testing.T) {
	t.Parallel()
	type input struct {
		method  string
		body    string
		version string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockStateService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "get. stored document",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().GetState(gomock.Any()).Return([]byte(`{"books":[{"id":101}]}`), nil)
			},
			input: input{method: http.MethodGet},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[{"id":101}]}`,
			},
		},
		{
			name: "get. empty",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().GetState(gomock.Any()).Return([]byte(`{}`), nil)
			},
			input: input{method: http.MethodGet},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{}`,
			},
		},
		{
			name: "get. db down",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().GetState(gomock.Any()).Return(nil, errors.New("db internal"))
			},
			input: input{method: http.MethodGet},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"db internal"}`,
			},
		},
		{
			name: "post. ok",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().SaveState(gomock.Any(), []byte(inp.body), int64(0)).Return(nil)
			},
			input: input{method: http.MethodPost, body: `{"books":[]}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true}`,
			},
		},
		{
			name: "post. invalid json",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().SaveState(gomock.Any(), []byte(inp.body), int64(0)).Return(errs.ErrInvalidJSON)
			},
			input: input{method: http.MethodPost, body: `{"books":`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"invalid JSON data"}`,
			},
		},
		{
			name: "post. versioned",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().SaveState(gomock.Any(), []byte(inp.body), int64(1700000000000000007)).Return(nil)
			},
			input: input{method: http.MethodPost, body: `{"books":[]}`, version: "1700000000000000007"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true}`,
			},
		},
		{
			name: "post. stale version",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {
				r.EXPECT().SaveState(gomock.Any(), []byte(inp.body), int64(3)).Return(errs.ErrStaleState)
			},
			input: input{method: http.MethodPost, body: `{"books":[]}`, version: "3"},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"error":"stale state version"}`,
			},
		},
		{
			name:         "post. bad version header",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {},
			input:        input{method: http.MethodPost, body: `{"books":[]}`, version: "v2"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"invalid state version"}`,
			},
		},
		{
			name:         "put. not allowed",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {},
			input:        input{method: http.MethodPut, body: `{}`},
			response: response{
				expectedCode: http.StatusMethodNotAllowed,
				expectedBody: `{"error":"method not allowed"}`,
			},
		},
		{
			name:         "delete. not allowed",
			mockBehavior: func(r *service_mocks.MockStateService, inp input) {},
			input:        input{method: http.MethodDelete},
			response: response{
				expectedCode: http.StatusMethodNotAllowed,
				expectedBody: `{"error":"method not allowed"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockStateService(c)
			log := zap.NewExample().Named("test")
			e := handler.New(svc, log).NewRouter()

			r := httptest.NewRequest(tt.input.method, "/state", strings.NewReader(tt.input.body))
			if tt.input.version != "" {
				r.Header.Set(model.VersionHeader, tt.input.version)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	e := handler.New(service_mocks.NewMockStateService(c), zap.NewNop()).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
