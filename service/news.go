package service

import (
	"context"

	"carbon_zero/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type NewsService interface {
	List(ctx context.Context) ([]model.News, error)
	Create(ctx context.Context, input model.CreateNewsInput) (*model.News, error)
}

type newsService struct {
	db *gorm.DB
}

func NewNewsService(db *gorm.DB) NewsService {
	return &newsService{db: db}
}

func (s *newsService) List(ctx context.Context) ([]model.News, error) {
	var news []model.News
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (s *newsService) Create(ctx context.Context, input model.CreateNewsInput) (*model.News, error) {
	var news model.News
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, input.OwnerId)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
		}
		if err := copier.Copy(&news, &input); err != nil {
			return err
		}
		return tx.Create(&news).Error
	})
	if err != nil {
		return nil, err
	}
	return &news, nil
}
