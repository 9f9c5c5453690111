package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carbon_zero/constants"
	"carbon_zero/inventory"
	"carbon_zero/model"
	"carbon_zero/utils"

	"gorm.io/gorm"
)

type BookingService interface {
	Create(ctx context.Context, roomId uint, input model.CreateBookingInput) (*model.Booking, error)
	ListByUser(ctx context.Context, userId uint) ([]model.Booking, error)
	Cancel(ctx context.Context, id uint, actor model.TokenClaim) (*model.Booking, error)
	CompleteStays(ctx context.Context, today time.Time) (int, error)
}

type bookingService struct {
	db   *gorm.DB
	deps Deps
}

func NewBookingService(db *gorm.DB, deps Deps) BookingService {
	return &bookingService{db: db, deps: deps}
}

// Create takes one unit of the room and inserts the booking in the same transaction.
func (s *bookingService) Create(ctx context.Context, roomId uint, input model.CreateBookingInput) (*model.Booking, error) {
	nights := utils.NightsBetween(input.CheckIn, input.CheckOut)
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() || nights <= 0 {
		return nil, ErrInvalidStay
	}

	var (
		booking model.Booking
		room    *model.Room
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = inventory.Reserve[model.Room](tx, roomId, 1)
		if err != nil {
			return inventoryError(err)
		}

		// rolling back releases the unit taken above
		ok, err := userExists(tx, input.UserId)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
		}

		booking = model.Booking{
			Code:       "BK-" + shortCode(),
			RoomId:     roomId,
			UserId:     input.UserId,
			CheckIn:    input.CheckIn,
			CheckOut:   input.CheckOut,
			Nights:     nights,
			TotalPrice: float64(nights) * room.Price,
			GuestName:  input.GuestName,
			GuestEmail: input.GuestEmail,
			Status:     constants.BOOKING_ACTIVE,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	booking.Room = room
	s.deps.notify(ctx, ResourceRoom, room.ID, room.Availability)
	s.deps.publish("booking.room.created", booking)
	if s.deps.Mailer != nil {
		s.deps.Mailer.SendBookingConfirmation(utils.BookingConfirmationData{
			To:          booking.GuestEmail,
			GuestName:   booking.GuestName,
			Code:        booking.Code,
			Title:       room.Name,
			When:        fmt.Sprintf("%s to %s", booking.CheckIn, booking.CheckOut),
			Quantity:    1,
			TotalAmount: booking.TotalPrice,
		})
	}
	return &booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userId uint) ([]model.Booking, error) {
	db := s.db.WithContext(ctx)
	ok, err := userExists(db, userId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	bookings := []model.Booking{}
	err = db.Preload("Room").
		Where("user_id = ?", userId).
		Order("check_in DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel flips an ACTIVE booking to CANCELLED and gives its unit back.
func (s *bookingService) Cancel(ctx context.Context, id uint, actor model.TokenClaim) (*model.Booking, error) {
	var (
		booking model.Booking
		room    *model.Room
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			return notFound(err)
		}
		if !CanManage(actor, booking.UserId) {
			return ErrForbidden
		}

		var err error
		room, err = s.finish(tx, &booking, constants.BOOKING_CANCELLED)
		return err
	})
	if err != nil {
		return nil, err
	}

	booking.Room = room
	s.deps.notify(ctx, ResourceRoom, room.ID, room.Availability)
	s.deps.publish("booking.room.cancelled", booking)
	return &booking, nil
}

// CompleteStays closes every ACTIVE booking whose check_out is on or before today,
// one transaction per booking, and returns how many were closed.
func (s *bookingService) CompleteStays(ctx context.Context, today time.Time) (int, error) {
	var due []model.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND check_out <= ?", constants.BOOKING_ACTIVE, utils.NewCustomDate(today)).
		Find(&due).Error
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range due {
		booking := due[i]
		var room *model.Room
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			room, err = s.finish(tx, &booking, constants.BOOKING_COMPLETED)
			return err
		})
		if errors.Is(err, ErrAlreadyCancelled) {
			continue
		}
		if err != nil {
			return completed, fmt.Errorf("complete booking %s: %w", booking.Code, err)
		}
		completed++
		s.deps.notify(ctx, ResourceRoom, room.ID, room.Availability)
		s.deps.publish("booking.room.completed", booking)
	}
	if completed > 0 {
		log.Printf("completed %d stays", completed)
	}
	return completed, nil
}

// finish moves an ACTIVE booking to status and releases its unit. A booking that
// is no longer ACTIVE is left untouched.
func (s *bookingService) finish(tx *gorm.DB, booking *model.Booking, status string) (*model.Room, error) {
	result := tx.Model(&model.Booking{}).
		Where("id = ? AND status = ?", booking.ID, constants.BOOKING_ACTIVE).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyCancelled
	}
	booking.Status = status

	room, err := inventory.Release[model.Room](tx, booking.RoomId, 1)
	if err != nil {
		return nil, inventoryError(err)
	}
	return room, nil
}

func inventoryError(err error) error {
	if errors.Is(err, inventory.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// CanManage allows the owning user and administrators.
func CanManage(actor model.TokenClaim, ownerId uint) bool {
	return actor.UserTypeId == constants.USER_TYPE_ADMIN || actor.UserId == ownerId
}
