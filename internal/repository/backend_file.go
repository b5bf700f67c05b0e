package repository

import (
	"context"
	"errors"

	"github.com/noah-isme/iftu-lms-api/pkg/storage"
)

// FileBackend stores the document as <key>.json through LocalStorage.
type FileBackend struct {
	storage  *storage.LocalStorage
	filename string
}

// NewFileBackend returns a backend writing key.json under the storage root.
func NewFileBackend(store *storage.LocalStorage, key string) *FileBackend {
	return &FileBackend{storage: store, filename: key + ".json"}
}

func (b *FileBackend) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := b.storage.Read(b.filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *FileBackend) Write(ctx context.Context, data []byte) error {
	_, err := b.storage.Save(b.filename, data)
	return err
}

func (b *FileBackend) Clear(ctx context.Context) error {
	return b.storage.Delete(b.filename)
}
