package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/session"
	"github.com/Astemirdum/library-desk/pkg/auth"
)

func TestManager(t *testing.T) {
	t.Parallel()
	m := session.NewManager("secret", time.Hour)

	token, s, err := m.Open(session.RoleMember, "M001", "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	got, err := m.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, s, got)
	require.False(t, got.IsAdmin())

	m.Close(s.ID)
	_, err = m.Resolve(token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = m.Resolve("garbage")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	other := session.NewManager("other", time.Hour)
	foreign, _, err := other.Open(session.RoleAdmin, "", "admin")
	require.NoError(t, err)
	_, err = m.Resolve(foreign)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestManager_UnknownRole(t *testing.T) {
	t.Parallel()
	m := session.NewManager("secret", time.Hour)

	token, err := auth.Sign(&auth.Claims{
		Profile: auth.Profile{Username: "eve", Role: "librarian"},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "forged",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte("secret"))
	require.NoError(t, err)

	_, err = m.Resolve(token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestContext(t *testing.T) {
	t.Parallel()
	_, ok := session.FromContext(context.Background())
	require.False(t, ok)

	want := session.Session{ID: "1", Role: session.RoleAdmin, Username: "admin"}
	got, ok := session.FromContext(session.WithSession(context.Background(), want))
	require.True(t, ok)
	require.Equal(t, want, got)
	require.True(t, got.IsAdmin())
}
