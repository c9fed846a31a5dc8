package controllers

import (
	"context"
	"io"
	"mime"
	"path"

	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/sources/storage"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

// ObjectStore is the part of storage.MinIOClient the media library needs.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, key string) error
}

type MediaController struct {
	store ObjectStore
	dao   *dao.CRUD[models.Media]
}

func NewMediaController(store ObjectStore, d *dao.CRUD[models.Media]) *MediaController {
	return &MediaController{store: store, dao: d}
}

// Upload stores the bytes first, then the row; a failed insert removes
// the object again.
func (c *MediaController) Upload(ctx context.Context, r io.Reader, fileName, contentType string, size int64, alt string) (*models.Media, error) {
	defer logging.LogDuration(ctx, "MediaController.Upload")()
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(path.Ext(fileName)); byExt != "" {
			contentType = byExt
		}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	m := &models.Media{
		Key:         storage.MediaKey(fileName),
		FileName:    path.Base(fileName),
		ContentType: contentType,
		Size:        size,
		Alt:         alt,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := c.store.PutObject(ctx, m.Key, r, size, contentType); err != nil {
		return nil, err
	}
	if err := c.dao.Create(ctx, m); err != nil {
		if rmErr := c.store.RemoveObject(ctx, m.Key); rmErr != nil {
			logging.ErrorLogger.Error("orphaned media object", zap.String("key", m.Key), zap.Error(rmErr))
		}
		return nil, err
	}
	return m, nil
}

func (c *MediaController) List(ctx context.Context, limit, offset int) ([]models.Media, error) {
	return c.dao.List(ctx, limit, offset)
}

func (c *MediaController) Get(ctx context.Context, id string) (*models.Media, error) {
	m, err := c.dao.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, dao.ErrNotFound
	}
	return m, nil
}

// Content opens the stored bytes of media id. Callers close the reader.
func (c *MediaController) Content(ctx context.Context, id string) (*models.Media, io.ReadCloser, error) {
	m, err := c.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	body, err := c.store.GetObject(ctx, m.Key)
	if err != nil {
		return nil, nil, err
	}
	return m, body, nil
}

func (c *MediaController) Delete(ctx context.Context, id string) error {
	m, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.store.RemoveObject(ctx, m.Key); err != nil {
		return err
	}
	return c.dao.Delete(ctx, id)
}
