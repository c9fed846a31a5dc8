package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// CRUD is create/read/update/delete by id over one table. T is a model
// struct embedding models.Base.
type CRUD[T any] struct {
	DB *gorm.DB
}

func NewCRUD[T any](db *gorm.DB) *CRUD[T] {
	return &CRUD[T]{DB: db}
}

func (dao *CRUD[T]) Create(ctx context.Context, item *T) error {
	return dao.DB.WithContext(ctx).Create(item).Error
}

// Get returns nil, nil when no row has that id.
func (dao *CRUD[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	err := dao.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns newest first. limit <= 0 means no limit.
func (dao *CRUD[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	items := []T{}
	q := dao.DB.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the non-zero fields of item to row id and returns the
// stored row.
func (dao *CRUD[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	res := dao.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(item)
	return dao.reload(ctx, id, res)
}

// Replace writes every column of item to row id except id and created_at,
// so zero values (false, "", 0) are stored too.
func (dao *CRUD[T]) Replace(ctx context.Context, id string, item *T) (*T, error) {
	res := dao.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(item)
	return dao.reload(ctx, id, res)
}

func (dao *CRUD[T]) reload(ctx context.Context, id string, res *gorm.DB) (*T, error) {
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	updated, err := dao.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (dao *CRUD[T]) Delete(ctx context.Context, id string) error {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (dao *CRUD[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}
