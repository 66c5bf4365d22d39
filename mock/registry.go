package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.RegistryService = (*RegistryService)(nil)

// RegistryService is a mock implementation of ragbuild.RegistryService.
type RegistryService struct {
	FetchRegistryFn func(ctx context.Context) ([]ragbuild.RegistryEntry, error)
}

func (s *RegistryService) FetchRegistry(ctx context.Context) ([]ragbuild.RegistryEntry, error) {
	return s.FetchRegistryFn(ctx)
}
