package service

import (
	"context"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/inventory"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const ticketBatchSize = 100

type EventService interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error)
	Book(ctx context.Context, eventId uint, input model.CreateEventBookingInput) (*model.EventBookingBatch, error)
	ListByUser(ctx context.Context, userId uint) ([]model.EventBooking, error)
	CancelBatch(ctx context.Context, batchCode string, actor model.TokenClaim) (*model.EventBookingBatch, error)
}

type eventService struct {
	db   *gorm.DB
	deps Deps
}

func NewEventService(db *gorm.DB, deps Deps) EventService {
	return &eventService{db: db, deps: deps}
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := s.db.WithContext(ctx).Order("starts_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &event, nil
}

func (s *eventService) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	var event model.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := copier.Copy(&event, &input); err != nil {
			return err
		}
		slug, err := helper.GenerateUniqueSlug(tx, &model.Event{}, input.Name)
		if err != nil {
			return err
		}
		event.Slug = slug
		event.Availability = event.Capacity
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Book reserves Amount tickets and inserts one row per ticket under a shared batch
// code. Either all rows and the decrement commit, or nothing does.
func (s *eventService) Book(ctx context.Context, eventId uint, input model.CreateEventBookingInput) (*model.EventBookingBatch, error) {
	var (
		event   *model.Event
		tickets []model.EventBooking
	)
	batchCode := "EB-" + shortCode()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = inventory.Reserve[model.Event](tx, eventId, input.Amount)
		if err != nil {
			return inventoryError(err)
		}

		ok, err := userExists(tx, input.UserId)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
		}

		tickets = make([]model.EventBooking, input.Amount)
		for i := range tickets {
			tickets[i] = model.EventBooking{
				Code:       "TK-" + shortCode(),
				BatchCode:  batchCode,
				EventId:    eventId,
				UserId:     input.UserId,
				GuestName:  input.GuestName,
				GuestEmail: input.GuestEmail,
				Status:     constants.BOOKING_ACTIVE,
			}
		}
		return tx.CreateInBatches(&tickets, ticketBatchSize).Error
	})
	if err != nil {
		return nil, err
	}

	batch := &model.EventBookingBatch{
		BatchCode:    batchCode,
		EventId:      eventId,
		Amount:       len(tickets),
		Availability: event.Availability,
		Tickets:      tickets,
	}
	s.deps.notify(ctx, ResourceEvent, eventId, event.Availability)
	s.deps.publish("booking.event.created", batch)
	if s.deps.Mailer != nil {
		s.deps.Mailer.SendBookingConfirmation(utils.BookingConfirmationData{
			To:          input.GuestEmail,
			GuestName:   input.GuestName,
			Code:        batchCode,
			Title:       event.Name,
			When:        event.StartsAt.Format("02 Jan 2006 15:04"),
			Quantity:    len(tickets),
			TotalAmount: float64(len(tickets)) * event.Price,
		})
	}
	return batch, nil
}

func (s *eventService) ListByUser(ctx context.Context, userId uint) ([]model.EventBooking, error) {
	db := s.db.WithContext(ctx)
	ok, err := userExists(db, userId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	tickets := []model.EventBooking{}
	err = db.Preload("Event").
		Where("user_id = ?", userId).
		Order("created_at DESC, id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// CancelBatch cancels the still ACTIVE tickets of a batch and releases that many units.
func (s *eventService) CancelBatch(ctx context.Context, batchCode string, actor model.TokenClaim) (*model.EventBookingBatch, error) {
	var (
		event   *model.Event
		tickets []model.EventBooking
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_code = ?", batchCode).Order("id ASC").Find(&tickets).Error; err != nil {
			return err
		}
		if len(tickets) == 0 {
			return ErrNotFound
		}
		if !CanManage(actor, tickets[0].UserId) {
			return ErrForbidden
		}

		result := tx.Model(&model.EventBooking{}).
			Where("batch_code = ? AND status = ?", batchCode, constants.BOOKING_ACTIVE).
			Update("status", constants.BOOKING_CANCELLED)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyCancelled
		}

		var err error
		event, err = inventory.Release[model.Event](tx, tickets[0].EventId, int(result.RowsAffected))
		if err != nil {
			return inventoryError(err)
		}
		return tx.Where("batch_code = ?", batchCode).Order("id ASC").Find(&tickets).Error
	})
	if err != nil {
		return nil, err
	}

	batch := &model.EventBookingBatch{
		BatchCode:    batchCode,
		EventId:      event.ID,
		Amount:       len(tickets),
		Availability: event.Availability,
		Tickets:      tickets,
	}
	s.deps.notify(ctx, ResourceEvent, event.ID, event.Availability)
	s.deps.publish("booking.event.cancelled", batch)
	return batch, nil
}
