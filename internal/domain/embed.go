package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Platform identifies the hosting service a video URL points at.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformFacebook Platform = "facebook"
	PlatformUnknown  Platform = "unknown"
)

// Classify inspects a raw URL string for known host fragments.
// It never performs network access.
func Classify(rawURL string) Platform {
	switch {
	case strings.Contains(rawURL, "youtube.com"), strings.Contains(rawURL, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(rawURL, "facebook.com"), strings.Contains(rawURL, "fb.watch"):
		return PlatformFacebook
	default:
		return PlatformUnknown
	}
}

// youtubeIDPattern matches the 11-character video token across the known URL
// shapes: canonical watch URL, youtu.be short link, and /v/ or /embed/ paths.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// youtubeStartPattern captures the t= query parameter, e.g. "42s" or "42".
var youtubeStartPattern = regexp.MustCompile(`[?&]t=([^&]+)`)

// ExtractYouTubeID pulls the native video identifier and the optional start
// offset (seconds) out of a YouTube URL. ok is false when no identifier can
// be found; callers are expected to fall back to the raw URL.
func ExtractYouTubeID(rawURL string) (id string, start int, ok bool) {
	m := youtubeIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", 0, false
	}
	id = m[1]

	if tm := youtubeStartPattern.FindStringSubmatch(rawURL); tm != nil {
		if n, err := strconv.Atoi(strings.TrimSuffix(tm[1], "s")); err == nil && n >= 0 {
			start = n
		}
	}
	return id, start, true
}

// PlaybackOptions parameterize the embedded player.
type PlaybackOptions struct {
	Autoplay        bool
	Muted           bool
	Start           int // seconds; overridden by a t= offset in the source URL
	Controls        bool
	DisableRelated  bool // rel=0
	ModestBranding  bool
	AllowFullscreen bool
	Inline          bool // playsinline=1
}

// DefaultPlayback is the configuration the presenter uses once the viewer
// hits play: sound on, controls visible, related videos and branding muted.
func DefaultPlayback() PlaybackOptions {
	return PlaybackOptions{
		Autoplay:        true,
		Controls:        true,
		DisableRelated:  true,
		ModestBranding:  true,
		AllowFullscreen: true,
		Inline:          true,
	}
}

// BuildPlaybackURL turns a stored video source URL into a single canonical
// embeddable reference with a fully specified, ordered query string.
//
// YouTube URLs become /embed/ references; Facebook URLs are wrapped by the
// plugins player with the original URL percent-encoded. When no native
// identifier can be extracted the original URL is returned unchanged so the
// caller can attempt a direct-link fallback.
func BuildPlaybackURL(rawURL string, opts PlaybackOptions) string {
	switch Classify(rawURL) {
	case PlatformFacebook:
		return fmt.Sprintf(
			"https://www.facebook.com/plugins/video.php?href=%s&show_text=0&autoplay=%s&mute=%s",
			url.QueryEscape(rawURL), boolParam(opts.Autoplay), boolParam(opts.Muted),
		)
	case PlatformYouTube:
		id, start, ok := ExtractYouTubeID(rawURL)
		if !ok {
			return rawURL
		}
		if start == 0 {
			start = opts.Start
		}
		params := []string{
			"autoplay=" + boolParam(opts.Autoplay),
			"mute=" + boolParam(opts.Muted),
			"start=" + strconv.Itoa(start),
			"controls=" + boolParam(opts.Controls),
			"rel=" + boolParam(!opts.DisableRelated),
			"showinfo=0",
			"modestbranding=" + boolParam(opts.ModestBranding),
			"iv_load_policy=3",
			"fs=" + boolParam(opts.AllowFullscreen),
			"playsinline=" + boolParam(opts.Inline),
		}
		return "https://www.youtube.com/embed/" + id + "?" + strings.Join(params, "&")
	default:
		return rawURL
	}
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
