package mock

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// MemorialGetter implements port.MemorialGetter for tests.
type MemorialGetter struct {
	Out    *model.Memorial
	Err    error
	Called bool
	Slug   string
}

func (m *MemorialGetter) GetMemorial(ctx context.Context, slug string) (*model.Memorial, error) {
	m.Called = true
	m.Slug = slug
	return m.Out, m.Err
}

// MemorialLister implements port.MemorialLister for tests.
type MemorialLister struct {
	Out    []model.Memorial
	Err    error
	Called bool
}

func (m *MemorialLister) ListMemorials(ctx context.Context) ([]model.Memorial, error) {
	m.Called = true
	return m.Out, m.Err
}

// MemorialCreator implements port.MemorialCreator for tests.
type MemorialCreator struct {
	Out    *model.Memorial
	Err    error
	Called bool
	In     port.CreateMemorialInput
}

func (m *MemorialCreator) CreateMemorial(ctx context.Context, in port.CreateMemorialInput) (*model.Memorial, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MemorialUpdater implements port.MemorialUpdater for tests.
type MemorialUpdater struct {
	Out    *model.Memorial
	Err    error
	Called bool
	Slug   string
	In     port.UpdateMemorialInput
}

func (m *MemorialUpdater) UpdateMemorial(ctx context.Context, slug string, in port.UpdateMemorialInput) (*model.Memorial, error) {
	m.Called = true
	m.Slug = slug
	m.In = in
	return m.Out, m.Err
}

// MemorialDeleter implements port.MemorialDeleter for tests.
type MemorialDeleter struct {
	Err    error
	Called bool
	Slug   string
}

func (m *MemorialDeleter) DeleteMemorial(ctx context.Context, slug string) error {
	m.Called = true
	m.Slug = slug
	return m.Err
}

// CommentLister implements port.CommentLister for tests.
type CommentLister struct {
	Out    *port.ListCommentsOutput
	Err    error
	Called bool
	In     port.ListCommentsInput
}

func (m *CommentLister) ListComments(ctx context.Context, in port.ListCommentsInput) (*port.ListCommentsOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// CommentCreator implements port.CommentCreator for tests.
type CommentCreator struct {
	Out    *model.Comment
	Err    error
	Called bool
	In     port.CreateCommentInput
}

func (m *CommentCreator) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// Authenticator implements port.Authenticator for tests.
type Authenticator struct {
	Out    port.LoginOutput
	Err    error
	Called bool
	In     port.LoginInput
}

func (m *Authenticator) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// PrefixPurger implements port.PrefixPurger for tests.
type PrefixPurger struct {
	Err      error
	Called   bool
	Prefixes []string
}

func (m *PrefixPurger) PurgePrefix(ctx context.Context, prefix string) error {
	m.Called = true
	m.Prefixes = append(m.Prefixes, prefix)
	return m.Err
}
