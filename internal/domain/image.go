package domain

import "errors"

// ImageKind discriminates how an image reaches the API.
type ImageKind string

const (
	// ImageInline carries raw image bytes that must be uploaded before use
	ImageInline ImageKind = "inline"
	// ImageHosted references an image that already lives at a URL
	ImageHosted ImageKind = "hosted"
)

type ImageInput struct {
	Kind ImageKind
	Data []byte
	URL  string
}

var (
	ErrImageTooLarge = errors.New("image exceeds the maximum size")
	ErrNotAnImage    = errors.New("payload is not a supported image")
)
