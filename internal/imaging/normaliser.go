package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// BoundingBox is the maximum width and height of a normalised image.
	BoundingBox = 1200
	// Quality is the lossy WebP quality factor.
	Quality = 85
)

type Normaliser struct {
	enc WebPEncoder
}

func NewNormaliser(enc WebPEncoder) *Normaliser {
	log.Println("initialising image normaliser...")
	return &Normaliser{enc: enc}
}

// Normalise takes raw image bytes (JPEG, PNG, GIF or WebP), applies the
// EXIF orientation, downscales to fit within BoundingBox on both axes
// without ever upscaling, and re-encodes to lossy WebP.
func (n *Normaliser) Normalise(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: failed to read image data: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: failed to decode image: %w", err)
	}

	img = autoOrient(img, orientationOf(data))
	img = fitWithin(img, BoundingBox)

	buf := &bytes.Buffer{}
	if err := n.enc.Encode(buf, img, Quality); err != nil {
		return nil, fmt.Errorf("imaging: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin scales img down so neither axis exceeds box, preserving aspect
// ratio. Images already inside the box are returned untouched.
func fitWithin(img image.Image, box int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= box && h <= box {
		return img
	}

	var tw, th int
	if w >= h {
		tw = box
		th = h * box / w
	} else {
		th = box
		tw = w * box / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
