package repository

import (
	"context"

	"walkingtube/domain/model"
)

// IVideo is the videos table access contract.
type IVideo interface {
	// List returns all videos ordered by creation time, most recent first.
	List(ctx context.Context) ([]model.Video, error)
	// GetByID returns a single video or model.ErrVideoNotFound.
	GetByID(ctx context.Context, id string) (model.Video, error)
	// Create inserts the video and fills the store-assigned id and createdAt.
	Create(ctx context.Context, video *model.Video) error
	// Delete removes the video by id.
	Delete(ctx context.Context, id string) error
}
