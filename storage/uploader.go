package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader хранит бинарные ассеты черновика (постер, схема зала).
// Download нужен сборщику отправки: ассеты уходят на бэкенд файловыми
// частями формы.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Download(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
