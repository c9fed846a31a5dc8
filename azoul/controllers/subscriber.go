package controllers

import (
	"context"

	"azoul/azoul/chat"
	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

// SubscriberController adds the public newsletter form on top of the
// admin CRUD surface.
type SubscriberController struct {
	*ResourceController[models.Subscriber, *models.Subscriber]
	dao *dao.SubscriberDAO
}

func NewSubscriberController(d *dao.SubscriberDAO) *SubscriberController {
	return &SubscriberController{
		ResourceController: NewResourceController[models.Subscriber, *models.Subscriber](d.CRUD),
		dao:                d,
	}
}

func (c *SubscriberController) Subscribe(ctx context.Context, email, language string) (*models.Subscriber, bool, error) {
	sub, created, err := c.dao.Subscribe(ctx, email, chat.NormalizeLanguage(language))
	if err != nil {
		return nil, false, err
	}
	if created {
		logging.AppLogger.Info("new subscriber", zap.String("id", sub.ID), zap.String("language", sub.Language))
	}
	return sub, created, nil
}
