package model

import (
	"time"
)

// Video is a location-tagged YouTube walking video shown as a map marker.
// Field names follow the in-memory (camelCase) naming; the snake_case wire
// shape lives in domain/dto.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	YouTubeID    string    `json:"youtubeId"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  *string   `json:"description,omitempty"`
	LocationName *string   `json:"locationName,omitempty"`
	AuthorID     *string   `json:"authorId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAuthor reports whether the given user created the video. Seed data has
// no author, which never matches.
func (v Video) IsAuthor(userID string) bool {
	return userID != "" && v.AuthorID != nil && *v.AuthorID == userID
}
