package mock

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called bool
	Getter port.MemorialGetter
	Slug   string
}

func (m *HTTPRenderer) RenderGetMemorial(ctx context.Context, getter port.MemorialGetter, slug string) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	m.Slug = slug
	return m.Data, m.Etag, m.Err
}
