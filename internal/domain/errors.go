package domain

import "errors"

var (
	ErrMissingID        = errors.New("entry id is required")
	ErrBadKind          = errors.New("entry kind must be video or image")
	ErrMissingTitle     = errors.New("entry title is required")
	ErrMissingURL       = errors.New("entry source url is required")
	ErrMissingThumbnail = errors.New("entry thumbnail is required")
)
