package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"walkingtube/domain/model"
	"walkingtube/domain/validation"
	"walkingtube/infrastructure/clients/youtube"
	"walkingtube/infrastructure/logger"
)

type IPreviewHandler interface {
	Preview(ctx *gin.Context)
}

type PreviewHandler struct {
	oembed *youtube.OEmbedClient
}

func NewPreviewHandler(oembed *youtube.OEmbedClient) IPreviewHandler {
	return &PreviewHandler{oembed: oembed}
}

// Preview resolves a submitted link to its video id plus display metadata,
// so the submit form can show a thumbnail before saving. Metadata comes from
// oEmbed and is optional; the id, embed and thumbnail URLs always resolve.
func (h *PreviewHandler) Preview(ctx *gin.Context) {
	raw := strings.TrimSpace(ctx.Query("url"))
	videoID, err := youtube.ExtractVideoID(raw)
	if err != nil {
		if errors.Is(err, model.ErrInvalidYouTubeURL) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []validation.FieldError{
				{Field: "youtube_url", Code: validation.CodeInvalidYouTubeURL, Message: "could not recognize a YouTube video in this link"},
			}})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while extracting video id")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not preview video"})
		return
	}

	preview, err := h.oembed.Preview(ctx.Request.Context(), videoID)
	if err != nil {
		logger.GetLogger().WithField("video_id", videoID).WithField("error", err).Error("Error while fetching oEmbed preview")
	}

	ctx.JSON(http.StatusOK, gin.H{
		"videoId":      videoID,
		"embedUrl":     youtube.EmbedURL(videoID),
		"thumbnailUrl": youtube.ThumbnailURL(videoID, ""),
		"available":    preview != nil,
		"metadata":     preview,
	})
}
