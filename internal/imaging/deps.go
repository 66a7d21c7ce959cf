package imaging

import (
	"image"
	"io"

	"github.com/chai2010/webp"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// compile-time check: *Normaliser must satisfy port.ImageNormaliser
var _ port.ImageNormaliser = (*Normaliser)(nil)

type WebPEncoder interface {
	Encode(w io.Writer, img image.Image, quality float32) error
}

type webpEncoder struct{}

func NewWebPEncoder() WebPEncoder {
	return webpEncoder{}
}

func (webpEncoder) Encode(w io.Writer, img image.Image, quality float32) error {
	return webp.Encode(w, img, &webp.Options{Quality: quality})
}
