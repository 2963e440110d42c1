package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/session"
)

func (s *Service) LoginAdmin(ctx context.Context, req model.AdminLoginRequest) (model.TokenResponse, error) {
	cfg := s.repo.AdminConfig()
	if req.Username != cfg.Username || req.Password != cfg.Password {
		s.log.Warn("admin login rejected", zap.String("username", req.Username))
		return model.TokenResponse{}, errs.ErrInvalidCredentials
	}
	token, _, err := s.sessions.Open(session.RoleAdmin, "", cfg.Username)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{Token: token, Role: string(session.RoleAdmin)}, nil
}

// LoginMember opens a session for a bare member id. No secret is required.
func (s *Service) LoginMember(ctx context.Context, req model.MemberLoginRequest) (model.TokenResponse, error) {
	member, ok := s.repo.Members.FindByID(req.MemberID)
	if !ok {
		return model.TokenResponse{}, errors.Wrapf(errs.ErrInvalidMemberID, "%s", req.MemberID)
	}
	token, _, err := s.sessions.Open(session.RoleMember, member.ID, member.Name)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{Token: token, Role: string(session.RoleMember), MemberID: member.ID}, nil
}

func (s *Service) Logout(ctx context.Context) {
	if sess, ok := session.FromContext(ctx); ok {
		s.sessions.Close(sess.ID)
	}
}

// Authorize resolves a token to a live session. Sessions of deleted members are closed.
func (s *Service) Authorize(ctx context.Context, token string) (session.Session, error) {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return session.Session{}, err
	}
	if sess.Role == session.RoleMember {
		if _, ok := s.repo.Members.FindByID(sess.MemberID); !ok {
			s.sessions.Close(sess.ID)
			return session.Session{}, errors.Wrap(errs.ErrUnauthorized, "member no longer exists")
		}
	}
	return sess, nil
}

// SaveAdminConfig changes the admin credentials. A blank password keeps the current one.
func (s *Service) SaveAdminConfig(ctx context.Context, req model.AdminConfigRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return errs.NewValidationError("username", "cannot be empty")
	}
	if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		return errs.NewValidationError("confirmPassword", "passwords do not match")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.repo.AdminConfig()
	cfg.Username = username
	if req.NewPassword != "" {
		cfg.Password = req.NewPassword
	}
	s.repo.SaveAdminConfig(cfg)
	return nil
}
