package element

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/matzehuels/whiteboard/pkg/geom"
)

// DefaultIconColor is the color used for icon images without one.
const DefaultIconColor = "#111827"

// Image shows a bitmap given as a data URI. An image created from an icon
// carries only IconID and IconColor until its bitmap has been resolved.
type Image struct {
	Base
	DataURL   string
	IconID    string
	IconColor string

	hydrating bool
}

// NewImage returns an image showing dataURL.
func NewImage(id string, r geom.Rect, dataURL string) *Image {
	return &Image{Base: NewBase(id, r), DataURL: dataURL}
}

// NewIconImage returns an image whose bitmap will be rendered from an icon.
func NewIconImage(id string, r geom.Rect, iconID, color string) *Image {
	if color == "" {
		color = DefaultIconColor
	}
	return &Image{Base: NewBase(id, r), IconID: iconID, IconColor: color}
}

func (img *Image) Kind() Kind                 { return KindImage }
func (img *Image) Contains(p geom.Point) bool { return img.inBounds(p) }
func (img *Image) Controls() Controls         { return Controls{} }

// NeedsHydration reports whether the image still waits for its icon bitmap
// and no resolution has been started.
func (img *Image) NeedsHydration() bool {
	return img.DataURL == "" && img.IconID != "" && !img.hydrating
}

// BeginHydration marks the icon resolution as started. It returns false when
// no resolution is needed or one is already pending, so each image is
// resolved at most once at a time.
func (img *Image) BeginHydration() bool {
	if !img.NeedsHydration() {
		return false
	}
	img.hydrating = true
	return true
}

// Hydrating reports whether an icon resolution is pending.
func (img *Image) Hydrating() bool { return img.hydrating }

// CompleteHydration stores the resolved bitmap. An empty dataURL marks a
// failed resolution and allows a later retry.
func (img *Image) CompleteHydration(dataURL string) {
	img.hydrating = false
	if dataURL != "" {
		img.DataURL = dataURL
	}
}

func (img *Image) ToJSON() JSON {
	j := img.toJSON(KindImage)
	j.ImageDataURL = ptr(img.DataURL)
	if img.IconID != "" {
		j.IconID = ptr(img.IconID)
		j.IconColor = ptr(img.IconColor)
	}
	return j
}

func imageFromJSON(j JSON) *Image {
	img := &Image{
		Base:    baseFromJSON(j),
		DataURL: valueOr(j.ImageDataURL, ""),
		IconID:  valueOr(j.IconID, ""),
	}
	if img.IconID != "" {
		img.IconColor = valueOr(j.IconColor, DefaultIconColor)
	}
	return img
}

// Video is a placeholder for an embedded YouTube video.
type Video struct {
	Base
	URL string
}

// NewVideo returns a video placeholder for url.
func NewVideo(id string, r geom.Rect, url string) *Video {
	return &Video{Base: NewBase(id, r), URL: url}
}

func (v *Video) Kind() Kind                 { return KindVideo }
func (v *Video) Contains(p geom.Point) bool { return v.inBounds(p) }
func (v *Video) Controls() Controls         { return Controls{} }

// EmbedURL returns the player URL for the video, or "" when URL does not
// name a YouTube video.
func (v *Video) EmbedURL() string {
	u, _ := EmbedURL(v.URL)
	return u
}

func (v *Video) ToJSON() JSON {
	j := v.toJSON(KindVideo)
	j.VideoURL = ptr(v.URL)
	return j
}

func videoFromJSON(j JSON) *Video {
	return &Video{Base: baseFromJSON(j), URL: valueOr(j.VideoURL, "")}
}

var youTubeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// YouTubeID extracts the 11-character video id from a YouTube link. It
// understands youtu.be/<id>, youtube.com/watch?v=<id> and the /embed/,
// /shorts/ and /live/ path forms, with or without a scheme.
func YouTubeID(input string) (string, bool) {
	value := strings.TrimSpace(input)
	if value == "" {
		return "", false
	}
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		value = "https://" + value
	}

	u, err := url.Parse(value)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })

	switch {
	case strings.Contains(host, "youtu.be"):
		if len(parts) > 0 && youTubeIDPattern.MatchString(parts[0]) {
			return parts[0], true
		}
	case strings.Contains(host, "youtube.com"), strings.Contains(host, "youtube-nocookie.com"):
		if v := u.Query().Get("v"); youTubeIDPattern.MatchString(v) {
			return v, true
		}
		if len(parts) > 1 && youTubeIDPattern.MatchString(parts[1]) {
			switch parts[0] {
			case "embed", "shorts", "live":
				return parts[1], true
			}
		}
	}
	return "", false
}

// EmbedURL converts a YouTube link into its embeddable player URL.
func EmbedURL(input string) (string, bool) {
	id, ok := YouTubeID(input)
	if !ok {
		return "", false
	}
	return "https://www.youtube.com/embed/" + id, true
}
