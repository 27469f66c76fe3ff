package usecase

import (
	"context"
	"fmt"

	"walkingtube/domain/dto"
	"walkingtube/domain/model"
	"walkingtube/domain/repository"
	"walkingtube/domain/validation"
	"walkingtube/infrastructure/cache"
	"walkingtube/infrastructure/clients/youtube"
	"walkingtube/infrastructure/logger"
	"walkingtube/infrastructure/realtime"
)

type IVideoUsecase interface {
	List(ctx context.Context) []model.Video
	GetByID(ctx context.Context, id string) (model.Video, error)
	Create(ctx context.Context, form dto.VideoForm, userID string) (model.Video, []validation.FieldError, error)
	Delete(ctx context.Context, id, userID string) error
}

type videoUsecase struct {
	videoRepo  repository.IVideo
	videoCache cache.IVideoCache
	feed       *realtime.ChangeFeed
}

func NewVideoUsecase(videoRepo repository.IVideo, videoCache cache.IVideoCache, feed *realtime.ChangeFeed) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo, videoCache: videoCache, feed: feed}
}

// List returns every video for the map, newest first. Store failures degrade
// to an empty list so the map still renders.
func (u *videoUsecase) List(ctx context.Context) []model.Video {
	if videos, ok := u.videoCache.GetList(ctx); ok {
		return videos
	}
	videos, err := u.videoRepo.List(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching videos")
		return []model.Video{}
	}
	if videos == nil {
		videos = []model.Video{}
	}
	u.videoCache.SetList(ctx, videos)
	return videos
}

func (u *videoUsecase) GetByID(ctx context.Context, id string) (model.Video, error) {
	return u.videoRepo.GetByID(ctx, id)
}

// Create validates the submission, resolves the YouTube id and persists the
// video under the submitting user. An unauthenticated submission is rejected
// before anything else runs.
func (u *videoUsecase) Create(ctx context.Context, form dto.VideoForm, userID string) (model.Video, []validation.FieldError, error) {
	if userID == "" {
		return model.Video{}, nil, model.ErrAuthRequired
	}

	if fieldErrors := validation.ValidateVideoForm(form); len(fieldErrors) > 0 {
		return model.Video{}, fieldErrors, nil
	}

	youtubeID, err := youtube.ExtractVideoID(form.YouTubeURL)
	if err != nil {
		return model.Video{}, nil, err
	}

	video := model.Video{
		Title:     form.Title,
		YouTubeID: youtubeID,
		Latitude:  *form.Latitude,
		Longitude: *form.Longitude,
		AuthorID:  &userID,
	}
	if form.Description != "" {
		video.Description = &form.Description
	}
	if form.LocationName != "" {
		video.LocationName = &form.LocationName
	}

	if err := u.videoRepo.Create(ctx, &video); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while saving video")
		return model.Video{}, nil, fmt.Errorf("%w: %v", model.ErrStoreWriteFailed, err)
	}

	row := dto.NewVideoRow(video)
	if err := u.feed.Publish(ctx, dto.ChangeEvent{Type: dto.ChangeInsert, Record: &row}); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while publishing insert event")
	}

	return video, nil, nil
}

// Delete removes a video owned by the calling user. Ownership is checked
// here rather than trusting the client.
func (u *videoUsecase) Delete(ctx context.Context, id, userID string) error {
	if userID == "" {
		return model.ErrAuthRequired
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !video.IsAuthor(userID) {
		return model.ErrNotAuthor
	}

	if err := u.videoRepo.Delete(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting video")
		return fmt.Errorf("%w: %v", model.ErrStoreDeleteFailed, err)
	}

	row := dto.NewVideoRow(video)
	if err := u.feed.Publish(ctx, dto.ChangeEvent{Type: dto.ChangeDelete, OldRecord: &row}); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while publishing delete event")
	}

	return nil
}
