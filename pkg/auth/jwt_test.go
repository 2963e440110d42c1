package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-desk/pkg/auth"
)

func TestSignParse(t *testing.T) {
	t.Parallel()
	key := []byte("secret")
	claims := &auth.Claims{
		Profile:  auth.Profile{Username: "John Doe", Role: "member"},
		MemberID: "M001",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := auth.Sign(claims, key)
	require.NoError(t, err)

	got, err := auth.Parse(token, key)
	require.NoError(t, err)
	require.True(t, got.HasRole("member"))
	require.Equal(t, "M001", got.MemberID)
	require.Equal(t, "sid", got.ID)

	_, err = auth.Parse(token, []byte("other"))
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, err := auth.Sign(claims, key)
	require.NoError(t, err)
	_, err = auth.Parse(expired, key)
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = auth.Parse(none, key)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	t.Parallel()
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			token, ok := auth.TokenFromHeader(tt.header)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.token, token)
			}
		})
	}
}
