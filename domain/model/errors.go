package model

import "errors"

// Error taxonomy for the video store and submission flow. Validation errors
// are collected (see domain/validation), never returned as a single error.
var (
	ErrAuthRequired      = errors.New("auth required")
	ErrInvalidYouTubeURL = errors.New("invalid youtube url")
	ErrStoreWriteFailed  = errors.New("store write failed")
	ErrStoreDeleteFailed = errors.New("store delete failed")
	ErrNotAuthor         = errors.New("not the author of this video")
	ErrVideoNotFound     = errors.New("video not found")
	ErrConfigMissing     = errors.New("required configuration missing")
)
