package handler

import (
	"context"

	"github.com/Astemirdum/library-desk/state/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StateService interface {
	GetState(ctx context.Context) ([]byte, error)
	SaveState(ctx context.Context, data []byte, version int64) error
}

var _ StateService = (*service.Service)(nil)
