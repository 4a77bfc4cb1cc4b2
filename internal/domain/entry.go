package domain

import "strings"

// MediaKind distinguishes playable videos from still images.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindImage MediaKind = "image"
)

// Entry represents one portfolio item shown on the playback surface.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is an opaque stable identifier, unique within the collection.
	// Assigned at creation time and never reassigned.
	ID string `json:"id" yaml:"id"`

	// ─────────────────────────────
	// Media
	// ─────────────────────────────

	// Kind is either video or image.
	Kind MediaKind `json:"type" yaml:"type"`

	// SourceURL is the original link supplied by an editor:
	// a platform watch-page URL for videos, a direct URL for images.
	SourceURL string `json:"url" yaml:"url"`

	// ThumbnailURL is a displayable still. May be a remote URL or an
	// inlined data: blob produced by the admin upload form.
	ThumbnailURL string `json:"thumbnail" yaml:"thumbnail"`

	// ─────────────────────────────
	// Display metadata
	// ─────────────────────────────

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Client      string `json:"client,omitempty" yaml:"client,omitempty"`
}

// Validate reports whether the entry carries the fields the editing surface
// requires before it may enter the collection.
func (e *Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return ErrMissingID
	case e.Kind != KindVideo && e.Kind != KindImage:
		return ErrBadKind
	case strings.TrimSpace(e.Title) == "":
		return ErrMissingTitle
	case strings.TrimSpace(e.SourceURL) == "":
		return ErrMissingURL
	case strings.TrimSpace(e.ThumbnailURL) == "":
		return ErrMissingThumbnail
	}
	return nil
}

// Dataset is the full persisted shape: the ordered entry collection plus the
// single profile record. It is the unit of export/import and of seeding.
type Dataset struct {
	Entries []Entry `json:"portfolioItems" yaml:"portfolioItems"`
	Profile Profile `json:"contactInfo" yaml:"contactInfo"`
}
