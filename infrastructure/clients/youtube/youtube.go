// Package youtube normalizes submitted YouTube links and previews them via
// the public oEmbed endpoint. Supported link shapes:
//
//	https://www.youtube.com/watch?v=dQw4w9WgXcQ
//	https://www.youtube.com/watch?v=dQw4w9WgXcQ&feature=share
//	https://youtu.be/dQw4w9WgXcQ
//	https://youtu.be/dQw4w9WgXcQ?si=xxxxx
//	https://www.youtube.com/embed/dQw4w9WgXcQ
//	https://m.youtube.com/watch?v=dQw4w9WgXcQ
//	https://youtube.com/shorts/dQw4w9WgXcQ
//	dQw4w9WgXcQ
package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"walkingtube/domain/model"
)

var (
	videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	pathPattern    = regexp.MustCompile(`^/(?:embed/|shorts/)?([a-zA-Z0-9_-]{11})`)
	rawPattern     = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`)
)

// ExtractVideoID resolves an arbitrary URL or bare token to an 11-character
// video identifier. Feeding it an already-extracted id returns the id
// unchanged. Returns model.ErrInvalidYouTubeURL when nothing matches.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)

	if u, err := url.Parse(input); err == nil && u.Host != "" {
		host := strings.TrimPrefix(u.Hostname(), "www.")
		host = strings.TrimPrefix(host, "m.")

		if host == "youtube.com" && u.Path == "/watch" {
			if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
				return id, nil
			}
		}
		if host == "youtu.be" || host == "youtube.com" {
			if m := pathPattern.FindStringSubmatch(u.Path); m != nil {
				return m[1], nil
			}
		}
	}

	// Fallback for strings the URL parser rejects or rules above missed.
	if m := rawPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	return "", model.ErrInvalidYouTubeURL
}

// ThumbnailURL builds the static thumbnail address for a video id.
// Quality is one of default, medium, high, maxres.
func ThumbnailURL(videoID, quality string) string {
	name := "hqdefault"
	switch quality {
	case "default":
		name = "default"
	case "medium":
		name = "mqdefault"
	case "maxres":
		name = "maxresdefault"
	}
	return "https://img.youtube.com/vi/" + videoID + "/" + name + ".jpg"
}

// EmbedURL builds the player address for a video id.
func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}
