package domain

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"canonical watch url", "https://www.youtube.com/watch?v=abc12345678", PlatformYouTube},
		{"short link", "https://youtu.be/abc12345678", PlatformYouTube},
		{"embed path", "https://www.youtube.com/embed/abc12345678", PlatformYouTube},
		{"facebook video", "https://www.facebook.com/watch/?v=123", PlatformFacebook},
		{"fb.watch short link", "https://fb.watch/abcdef/", PlatformFacebook},
		{"direct image", "https://picsum.photos/id/1027/1920/1080", PlatformUnknown},
		{"empty", "", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantStart int
		wantOK    bool
	}{
		{
			name:   "watch url",
			url:    "https://www.youtube.com/watch?v=abc12345678",
			wantID: "abc12345678",
			wantOK: true,
		},
		{
			name:      "watch url with start offset",
			url:       "https://www.youtube.com/watch?v=abc12345678&t=42s",
			wantID:    "abc12345678",
			wantStart: 42,
			wantOK:    true,
		},
		{
			name:      "bare seconds offset",
			url:       "https://www.youtube.com/watch?v=abc12345678&t=90",
			wantID:    "abc12345678",
			wantStart: 90,
			wantOK:    true,
		},
		{
			name:   "short link",
			url:    "https://youtu.be/abc12345678",
			wantID: "abc12345678",
			wantOK: true,
		},
		{
			name:   "embed path",
			url:    "https://www.youtube.com/embed/ysz5S6P_z-U",
			wantID: "ysz5S6P_z-U",
			wantOK: true,
		},
		{
			name:   "v path",
			url:    "https://www.youtube.com/v/abc12345678",
			wantID: "abc12345678",
			wantOK: true,
		},
		{
			name:   "id with hyphen and underscore",
			url:    "https://www.youtube.com/watch?v=a-b_c456789",
			wantID: "a-b_c456789",
			wantOK: true,
		},
		{
			name:   "unparseable string",
			url:    "not a url at all",
			wantOK: false,
		},
		{
			name:   "youtube url without id",
			url:    "https://www.youtube.com/feed/subscriptions",
			wantOK: false,
		},
		{
			name:   "token too short",
			url:    "https://youtu.be/short",
			wantOK: false,
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, start, ok := ExtractYouTubeID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
			if start != tt.wantStart {
				t.Errorf("start = %d, want %d", start, tt.wantStart)
			}
		})
	}
}

func TestBuildPlaybackURL_YouTube(t *testing.T) {
	opts := DefaultPlayback()
	got := BuildPlaybackURL("https://www.youtube.com/watch?v=abc12345678&t=42s", opts)

	want := "https://www.youtube.com/embed/abc12345678?autoplay=1&mute=0&start=42&controls=1&rel=0&showinfo=0&modestbranding=1&iv_load_policy=3&fs=1&playsinline=1"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestBuildPlaybackURL_Muted(t *testing.T) {
	opts := DefaultPlayback()
	opts.Muted = true
	got := BuildPlaybackURL("https://youtu.be/abc12345678", opts)

	if !strings.Contains(got, "mute=1") {
		t.Errorf("expected mute=1 in %q", got)
	}
	if !strings.Contains(got, "start=0") {
		t.Errorf("expected start=0 in %q", got)
	}
}

func TestBuildPlaybackURL_Deterministic(t *testing.T) {
	opts := DefaultPlayback()
	first := BuildPlaybackURL("https://youtu.be/abc12345678", opts)
	for i := 0; i < 5; i++ {
		if got := BuildPlaybackURL("https://youtu.be/abc12345678", opts); got != first {
			t.Fatalf("non-deterministic playback url: %q vs %q", got, first)
		}
	}
}

func TestBuildPlaybackURL_Facebook(t *testing.T) {
	src := "https://www.facebook.com/vmediateam/videos/123456789"
	got := BuildPlaybackURL(src, DefaultPlayback())

	if !strings.HasPrefix(got, "https://www.facebook.com/plugins/video.php?href=") {
		t.Fatalf("expected plugins wrapper, got %q", got)
	}
	if !strings.Contains(got, "https%3A%2F%2Fwww.facebook.com%2Fvmediateam") {
		t.Errorf("expected percent-encoded source url in %q", got)
	}
}

func TestBuildPlaybackURL_FallsBackToRawURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unknown platform", "https://vimeo.com/123456"},
		{"youtube without extractable id", "https://www.youtube.com/feed/library"},
		{"garbage", "::::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPlaybackURL(tt.url, DefaultPlayback()); got != tt.url {
				t.Errorf("got %q, want raw url back", got)
			}
		})
	}
}
