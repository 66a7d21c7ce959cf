package media

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Family is the expected media family of a classified string.
type Family string

const (
	FamilyImage Family = "image"
	FamilyVideo Family = "video"
)

// DecodedMedia holds the raw bytes of an inline payload along with the
// MIME type declared in its header.
type DecodedMedia struct {
	Bytes     []byte
	MimeType  string
	Extension string
}

// Reference is the result of classifying one media string. Exactly one of
// URL or Inline is set.
type Reference struct {
	URL    string
	Inline *DecodedMedia
}

var dataURLRe = regexp.MustCompile(`^data:(.+?);base64,(.+)$`)

// Classify decides whether item is an inline base64 payload of the expected
// family or a reference to already-hosted content. It performs no network
// calls: external URLs are passed through unchanged.
func Classify(item string, family Family) (Reference, error) {
	if m := dataURLRe.FindStringSubmatch(item); m != nil {
		mimeType := m[1]
		if !strings.HasPrefix(mimeType, string(family)+"/") {
			return Reference{}, fmt.Errorf("%w: inline payload declares %q, expected %s data", ErrInvalidMediaReference, mimeType, family)
		}
		raw, err := base64.StdEncoding.DecodeString(m[2])
		if err != nil {
			return Reference{}, fmt.Errorf("%w: malformed base64 %s payload", ErrInvalidMediaReference, family)
		}
		return Reference{Inline: &DecodedMedia{
			Bytes:     raw,
			MimeType:  mimeType,
			Extension: ExtensionFor(family, mimeType),
		}}, nil
	}

	u, err := url.Parse(item)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Reference{}, fmt.Errorf("%w: %s must be inline base64 data or a valid URL", ErrInvalidMediaReference, family)
	}
	return Reference{URL: item}, nil
}
