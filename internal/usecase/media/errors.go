package media

import "errors"

var (
	// ErrInvalidMediaReference marks a media string that is neither a
	// well-formed inline payload nor an absolute URL.
	ErrInvalidMediaReference = errors.New("media: invalid media reference")
	// ErrUnsupportedMediaType marks a declared MIME type outside the allow-list.
	ErrUnsupportedMediaType = errors.New("media: unsupported media type")
	// ErrPayloadTooLarge marks an inline payload over the size cap.
	ErrPayloadTooLarge = errors.New("media: payload too large")
	// ErrMediaProcessing marks a decode/encode failure on otherwise valid input.
	ErrMediaProcessing = errors.New("media: processing failed")
)

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
