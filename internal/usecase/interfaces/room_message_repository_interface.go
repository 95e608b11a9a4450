package interfaces

import (
	"context"

	"fellowship_escrow/internal/domain/entities"
)

// IRoomMessageRepository is the append-only durable message log.

type IRoomMessageRepository interface {
	// Append returns ErrAlreadyExists when a message with the same id is
	// already stored for the room.
	Append(ctx context.Context, msg entities.RoomMessage) (entities.RoomMessage, error)
	GetByID(ctx context.Context, roomID, id string) (entities.RoomMessage, error)
	// ListByRoom returns messages ordered by seq, strictly after afterSeq
	// ("" = from the beginning).
	ListByRoom(ctx context.Context, roomID, afterSeq string) ([]entities.RoomMessage, error)
}
