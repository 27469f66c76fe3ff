package dto

import (
	"fmt"
	"time"

	"walkingtube/domain/model"
)

// VideoForm is a user-submitted video pending validation. Coordinates are
// pointers because the client may submit before a location was picked.
type VideoForm struct {
	Title        string   `json:"title"`
	YouTubeURL   string   `json:"youtube_url"`
	Description  string   `json:"description,omitempty"`
	LocationName string   `json:"location_name,omitempty"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// VideoRow is the wire (snake_case) shape of a videos table row, as it
// appears in API responses consumed by map clients and in change-feed
// payloads.
type VideoRow struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	YouTubeID    string  `json:"youtube_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Description  *string `json:"description,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	AuthorID     *string `json:"author_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// NewVideoRow translates the in-memory video to its wire shape.
func NewVideoRow(v model.Video) VideoRow {
	return VideoRow{
		ID:           v.ID,
		Title:        v.Title,
		YouTubeID:    v.YouTubeID,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Description:  v.Description,
		LocationName: v.LocationName,
		AuthorID:     v.AuthorID,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Video translates the wire row back to the in-memory shape. It fails loudly
// on shape mismatch instead of trusting field presence implicitly.
func (r VideoRow) Video() (model.Video, error) {
	if r.ID == "" {
		return model.Video{}, fmt.Errorf("video row: missing id")
	}
	if r.Title == "" {
		return model.Video{}, fmt.Errorf("video row %s: missing title", r.ID)
	}
	if r.YouTubeID == "" {
		return model.Video{}, fmt.Errorf("video row %s: missing youtube_id", r.ID)
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return model.Video{}, fmt.Errorf("video row %s: coordinates out of range (%f, %f)", r.ID, r.Latitude, r.Longitude)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return model.Video{}, fmt.Errorf("video row %s: bad created_at %q: %w", r.ID, r.CreatedAt, err)
	}
	return model.Video{
		ID:           r.ID,
		Title:        r.Title,
		YouTubeID:    r.YouTubeID,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Description:  r.Description,
		LocationName: r.LocationName,
		AuthorID:     r.AuthorID,
		CreatedAt:    createdAt,
	}, nil
}

// Change-feed event types for the videos table.
const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeEvent is a single insert/update/delete notification scoped to the
// videos table. Record carries the new row for inserts/updates; OldRecord
// carries at least the id for deletes.
type ChangeEvent struct {
	Type      string    `json:"type"`
	Table     string    `json:"table"`
	Record    *VideoRow `json:"record,omitempty"`
	OldRecord *VideoRow `json:"old_record,omitempty"`
}
