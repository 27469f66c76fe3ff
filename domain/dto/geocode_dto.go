package dto

// GeocodeResult is one labeled coordinate from a forward-geocoding lookup.
// Center is [longitude, latitude], matching the upstream response.
type GeocodeResult struct {
	ID        string     `json:"id"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"`
}

// YouTubePreview is the oEmbed metadata shown before saving a submission.
type YouTubePreview struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
}
