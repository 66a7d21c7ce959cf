package media

import (
	"context"
	"io"
	"sync"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type mockStorage struct {
	mu sync.Mutex

	saveErr        error
	saveHook       func(fileKey string) error
	listKeys       []string
	listErr        error
	removeFilesErr error

	savedKeys      []string
	savedOpts      []map[string]string
	savedData      [][]byte
	listCalled     int
	removedBatches [][]string
}

func (m *mockStorage) InitBucket() error { return nil }

func (m *mockStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	if m.saveHook != nil {
		if err := m.saveHook(fileKey); err != nil {
			return err
		}
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedKeys = append(m.savedKeys, fileKey)
	m.savedOpts = append(m.savedOpts, opts)
	m.savedData = append(m.savedData, data)
	return nil
}

func (m *mockStorage) RemoveFile(ctx context.Context, fileKey string) error { return nil }

func (m *mockStorage) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalled++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listKeys, nil
}

func (m *mockStorage) RemoveFiles(ctx context.Context, fileKeys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeFilesErr != nil {
		return m.removeFilesErr
	}
	batch := make([]string, len(fileKeys))
	copy(batch, fileKeys)
	m.removedBatches = append(m.removedBatches, batch)
	return nil
}

func (m *mockStorage) PublicURL(fileKey string) string {
	return "https://cdn.example.com/memorials/" + fileKey
}

type mockNormaliser struct {
	out []byte
	err error
	fn  func(data []byte) ([]byte, error)
}

var _ port.ImageNormaliser = (*mockNormaliser)(nil)

func (m *mockNormaliser) Normalise(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if m.fn != nil {
		return m.fn(data)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.out != nil {
		return m.out, nil
	}
	return data, nil
}

type mockTranscoder struct {
	mu sync.Mutex

	out   port.TranscodeOutput
	err   error
	calls int
}

var _ port.VideoTranscoder = (*mockTranscoder)(nil)

func (m *mockTranscoder) Transcode(ctx context.Context, data []byte, mimeType string) (port.TranscodeOutput, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return port.TranscodeOutput{}, m.err
	}
	if m.out.Bytes != nil {
		return m.out, nil
	}
	return port.TranscodeOutput{Bytes: data, MimeType: "video/mp4", Extension: "mp4"}, nil
}
