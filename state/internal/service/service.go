package service

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/state/internal/errs"
	"github.com/Astemirdum/library-desk/state/internal/model"
	"github.com/Astemirdum/library-desk/state/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
}

// GetState returns the stored document verbatim, or {} when nothing was saved yet.
func (s *Service) GetState(ctx context.Context) ([]byte, error) {
	state, err := s.repo.GetState(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.EmptyState, nil
		}
		return nil, err
	}
	if state.Data == "" {
		return model.EmptyState, nil
	}
	return []byte(state.Data), nil
}

// SaveState replaces the stored document unless a newer version is stored.
// Invalid JSON is rejected before any write. Unversioned writes are stamped
// with the current time.
func (s *Service) SaveState(ctx context.Context, data []byte, version int64) error {
	if !jsoniter.ConfigFastest.Valid(data) {
		return errs.ErrInvalidJSON
	}
	if version <= 0 {
		version = s.now().UnixNano()
	}
	applied, err := s.repo.UpsertState(ctx, data, version)
	if err != nil {
		return err
	}
	if !applied {
		return errors.Wrapf(errs.ErrStaleState, "version %d", version)
	}
	s.log.Debug("state saved", zap.Int("size", len(data)), zap.Int64("version", version))
	return nil
}
