package controllers

import (
	"context"
	"encoding/json"
	"fmt"

	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/utils/logging"
)

// Model is what every content table implements through models.Base plus
// its own Validate.
type Model interface {
	Validate() error
	Meta() *models.Base
}

// ResourceController is the plain CRUD surface shared by the back-office
// tables. PT is the pointer type of T.
type ResourceController[T any, PT interface {
	*T
	Model
}] struct {
	dao *dao.CRUD[T]
}

func NewResourceController[T any, PT interface {
	*T
	Model
}](d *dao.CRUD[T]) *ResourceController[T, PT] {
	return &ResourceController[T, PT]{dao: d}
}

func (c *ResourceController[T, PT]) List(ctx context.Context, limit, offset int) ([]T, error) {
	return c.dao.List(ctx, limit, offset)
}

// Get returns dao.ErrNotFound for a missing id.
func (c *ResourceController[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	item, err := c.dao.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, dao.ErrNotFound
	}
	return item, nil
}

func (c *ResourceController[T, PT]) Create(ctx context.Context, item *T) (*T, error) {
	defer logging.LogDuration(ctx, fmt.Sprintf("Create[%T]", item))()
	p := PT(item)
	// ids and timestamps are never taken from the client
	*p.Meta() = models.Base{}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := c.dao.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update merges the JSON patch into the stored row, validates the result
// and writes it back.
func (c *ResourceController[T, PT]) Update(ctx context.Context, id string, patch []byte) (*T, error) {
	existing, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := PT(existing)
	base := *p.Meta()
	// the patch may not rename the row or rewrite its timestamps
	if err := json.Unmarshal(patch, existing); err != nil {
		return nil, &models.ValidationError{Field: "body", Reason: err.Error()}
	}
	*p.Meta() = base
	if err := p.Validate(); err != nil {
		return nil, err
	}
	*p.Meta() = models.Base{}
	return c.dao.Replace(ctx, id, existing)
}

func (c *ResourceController[T, PT]) Delete(ctx context.Context, id string) error {
	return c.dao.Delete(ctx, id)
}
