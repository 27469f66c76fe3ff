package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"walkingtube/domain/dto"
	"walkingtube/domain/model"
	"walkingtube/domain/validation"
	"walkingtube/infrastructure/logger"
	"walkingtube/usecase"
)

type IVideoHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) List(ctx *gin.Context) {
	videos := h.videoUsecase.List(ctx.Request.Context())

	rows := make([]dto.VideoRow, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, dto.NewVideoRow(v))
	}
	ctx.JSON(http.StatusOK, gin.H{"videos": rows})
}

func (h *VideoHandler) GetByID(ctx *gin.Context) {
	video, err := h.videoUsecase.GetByID(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch video"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"video": dto.NewVideoRow(video)})
}

func (h *VideoHandler) Create(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var form dto.VideoForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	video, fieldErrors, err := h.videoUsecase.Create(ctx.Request.Context(), form, userID)
	if err != nil {
		h.writeCreateError(ctx, err)
		return
	}
	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"video": dto.NewVideoRow(video)})
}

func (h *VideoHandler) Delete(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	userID := ctx.GetString("user_id")

	err := h.videoUsecase.Delete(ctx.Request.Context(), videoID, userID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"deleted": videoID})
	case errors.Is(err, model.ErrAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to delete videos"})
	case errors.Is(err, model.ErrNotAuthor):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this video"})
	case errors.Is(err, model.ErrVideoNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
	default:
		logger.GetLogger().WithField("video_id", videoID).WithField("error", err).Error("Error while deleting video")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not delete video"})
	}
}

func (h *VideoHandler) writeCreateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to share videos"})
	case errors.Is(err, model.ErrInvalidYouTubeURL):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []validation.FieldError{
			{Field: "youtube_url", Code: validation.CodeInvalidYouTubeURL, Message: "could not recognize a YouTube video in this link"},
		}})
	case errors.Is(err, model.ErrStoreWriteFailed):
		logger.GetLogger().WithField("error", err).Error("Error while saving video")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not save video"})
	default:
		logger.GetLogger().WithField("error", err).Error("Error while creating video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not create video"})
	}
}
