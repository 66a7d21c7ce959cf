package media

import (
	"fmt"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// MemorialPrefix is the storage namespace owned by one memorial. Every
// object the pipeline uploads for a slug lives under it, so purging the
// prefix removes the whole gallery including orphans from past updates.
func MemorialPrefix(slug string) string {
	return fmt.Sprintf("memorial/%s/", slug)
}

// ObjectKey builds the deterministic storage key for one media item. The
// extension always reflects the output format, never the input format.
func ObjectKey(slug string, kind port.MediaKind, suffix, ext string) string {
	return fmt.Sprintf("memorial/%s/%s_%s.%s", slug, kind, suffix, ext)
}
