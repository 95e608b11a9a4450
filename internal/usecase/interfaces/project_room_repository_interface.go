package interfaces

import (
	"context"

	"fellowship_escrow/internal/domain/entities"
)

// IProjectRoomRepository is read-only; rooms are written by
// IMarketplaceTransactor so that creation and settlement stay atomic.

type IProjectRoomRepository interface {
	GetByID(ctx context.Context, id string) (entities.ProjectRoom, error)
}
