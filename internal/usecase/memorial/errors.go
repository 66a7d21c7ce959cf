package memorial

import "errors"

var (
	ErrMemorialNotFound = errors.New("memorial: not found")
	ErrSlugTaken        = errors.New("memorial: slug already exists")
)
