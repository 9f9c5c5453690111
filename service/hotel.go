package service

import (
	"context"

	"carbon_zero/helper"
	"carbon_zero/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type HotelService interface {
	List(ctx context.Context) ([]model.Hotel, error)
	Get(ctx context.Context, id uint) (*model.Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*model.Hotel, error)
	Create(ctx context.Context, input model.CreateHotelInput) (*model.Hotel, error)
	AddRoom(ctx context.Context, hotelId uint, input model.CreateRoomInput) (*model.Room, error)
	GetRoom(ctx context.Context, id uint) (*model.Room, error)
}

type hotelService struct {
	db *gorm.DB
}

func NewHotelService(db *gorm.DB) HotelService {
	return &hotelService{db: db}
}

func (s *hotelService) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *hotelService) Get(ctx context.Context, id uint) (*model.Hotel, error) {
	var hotel model.Hotel
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("price ASC") }).
		First(&hotel, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

func (s *hotelService) GetBySlug(ctx context.Context, slug string) (*model.Hotel, error) {
	var hotel model.Hotel
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("price ASC") }).
		Where("slug = ?", slug).
		First(&hotel).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

func (s *hotelService) Create(ctx context.Context, input model.CreateHotelInput) (*model.Hotel, error) {
	var hotel model.Hotel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := copier.Copy(&hotel, &input); err != nil {
			return err
		}
		slug, err := helper.GenerateUniqueSlug(tx, &model.Hotel{}, input.Name)
		if err != nil {
			return err
		}
		hotel.Slug = slug
		return tx.Create(&hotel).Error
	})
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// AddRoom creates a room type whose availability starts at its capacity.
func (s *hotelService) AddRoom(ctx context.Context, hotelId uint, input model.CreateRoomInput) (*model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hotels int64
		if err := tx.Model(&model.Hotel{}).Where("id = ?", hotelId).Count(&hotels).Error; err != nil {
			return err
		}
		if hotels == 0 {
			return ErrNotFound
		}
		if err := copier.Copy(&room, &input); err != nil {
			return err
		}
		room.HotelId = hotelId
		room.Availability = room.Capacity
		return tx.Create(&room).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *hotelService) GetRoom(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := s.db.WithContext(ctx).Preload("Hotel").First(&room, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}
