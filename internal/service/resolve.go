package service

import (
	"context"
	"fmt"

	"cms_backend/internal/domain"
)

// resolvePublication finds an Active publication by internal name, then by display name.
func resolvePublication(ctx context.Context, store PublicationStore, name string) (*domain.Publication, error) {
	pub, found, err := store.FindActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find publication by name: %w", err)
	}
	if found {
		return pub, nil
	}

	pub, found, err = store.FindActiveByDisplayName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find publication by display name: %w", err)
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: "Publication", Key: name}
	}
	return pub, nil
}
