package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/pkg/auth"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Session is the identity a request acts as. Members carry their own id.
type Session struct {
	ID       string
	Role     Role
	MemberID model.ID
	Username string
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Manager issues session tokens and keeps the set of live sessions,
// so a logout revokes a token before it expires.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	live map[string]time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		key:  []byte(secret),
		ttl:  ttl,
		now:  time.Now,
		live: make(map[string]time.Time),
	}
}

func (m *Manager) Open(role Role, memberID model.ID, username string) (string, Session, error) {
	s := Session{
		ID:       uuid.NewString(),
		Role:     role,
		MemberID: memberID,
		Username: username,
	}
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &auth.Claims{
		Profile: auth.Profile{
			Username: username,
			Role:     string(role),
		},
		MemberID: string(memberID),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := auth.Sign(claims, m.key)
	if err != nil {
		return "", Session{}, errors.Wrap(err, "sign session token")
	}

	m.mu.Lock()
	m.gc(now)
	m.live[s.ID] = expiresAt
	m.mu.Unlock()
	return token, s, nil
}

func (m *Manager) Resolve(token string) (Session, error) {
	claims, err := auth.Parse(token, m.key)
	if err != nil {
		return Session{}, errors.Wrap(errs.ErrUnauthorized, err.Error())
	}
	if !claims.HasRole(string(RoleAdmin)) && !claims.HasRole(string(RoleMember)) {
		return Session{}, errors.Wrapf(errs.ErrUnauthorized, "unknown role %q", claims.Profile.Role)
	}
	m.mu.Lock()
	_, ok := m.live[claims.ID]
	m.mu.Unlock()
	if !ok {
		return Session{}, errors.Wrap(errs.ErrUnauthorized, "session is closed")
	}
	return Session{
		ID:       claims.ID,
		Role:     Role(claims.Profile.Role),
		MemberID: model.ID(claims.MemberID),
		Username: claims.Profile.Username,
	}, nil
}

func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()
}

// gc drops expired sessions. Callers hold mu.
func (m *Manager) gc(now time.Time) {
	for id, exp := range m.live {
		if now.After(exp) {
			delete(m.live, id)
		}
	}
}
