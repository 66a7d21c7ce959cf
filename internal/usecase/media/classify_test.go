package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
)

func dataURL(mime string, payload []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(payload))
}

func TestClassify_InlineImage(t *testing.T) {
	payload := []byte("fake image bytes")
	ref, err := Classify(dataURL("image/png", payload), FamilyImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.URL != "" {
		t.Errorf("expected no URL, got %q", ref.URL)
	}
	if ref.Inline == nil {
		t.Fatal("expected inline data")
	}
	if !bytes.Equal(ref.Inline.Bytes, payload) {
		t.Error("decoded bytes do not match the original payload")
	}
	if ref.Inline.MimeType != "image/png" {
		t.Errorf("expected mime image/png, got %q", ref.Inline.MimeType)
	}
	if ref.Inline.Extension != "png" {
		t.Errorf("expected extension png, got %q", ref.Inline.Extension)
	}
}

func TestClassify_ExtensionMapping(t *testing.T) {
	tests := []struct {
		family Family
		mime   string
		ext    string
	}{
		{FamilyImage, "image/jpeg", "jpg"},
		{FamilyImage, "image/webp", "webp"},
		{FamilyImage, "image/gif", "gif"},
		{FamilyImage, "image/x-exotic", "bin"},
		{FamilyVideo, "video/mp4", "mp4"},
		{FamilyVideo, "video/webm", "webm"},
		{FamilyVideo, "video/quicktime", "mov"},
		{FamilyVideo, "video/x-exotic", "mp4"},
	}
	for _, tc := range tests {
		ref, err := Classify(dataURL(tc.mime, []byte("x")), tc.family)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.mime, err)
		}
		if ref.Inline.Extension != tc.ext {
			t.Errorf("%s: expected extension %q, got %q", tc.mime, tc.ext, ref.Inline.Extension)
		}
	}
}

func TestClassify_URLPassThrough(t *testing.T) {
	in := "https://photos.example.com/memorial/old/gallery_abc.webp"
	ref, err := Classify(in, FamilyImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Inline != nil {
		t.Error("expected no inline data")
	}
	if ref.URL != in {
		t.Errorf("expected URL returned unchanged, got %q", ref.URL)
	}
}

func TestClassify_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"definitely not a url",
		"/relative/path.jpg",
		"data:image/png;base64,!!!not-base64!!!",
	} {
		_, err := Classify(in, FamilyImage)
		if !errors.Is(err, ErrInvalidMediaReference) {
			t.Errorf("%q: expected ErrInvalidMediaReference, got %v", in, err)
		}
	}
}

func TestClassify_FamilyMismatch(t *testing.T) {
	_, err := Classify(dataURL("video/mp4", []byte("x")), FamilyImage)
	if !errors.Is(err, ErrInvalidMediaReference) {
		t.Fatalf("expected ErrInvalidMediaReference for video payload in image slot, got %v", err)
	}
	_, err = Classify(dataURL("image/png", []byte("x")), FamilyVideo)
	if !errors.Is(err, ErrInvalidMediaReference) {
		t.Fatalf("expected ErrInvalidMediaReference for image payload in video slot, got %v", err)
	}
}
