// Package service holds the business operations. Handlers depend on the interfaces
// declared here; every transaction of the application is opened in this package.
package service

import (
	"context"
	"errors"
	"log"

	"carbon_zero/inventory"
	"carbon_zero/utils"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidReference  = errors.New("invalid reference id")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidLogin      = errors.New("invalid email or password")
	ErrInvalidStay       = errors.New("check_out must be after check_in")
	ErrAlreadyCancelled  = errors.New("booking is not active")
	ErrForbidden         = errors.New("booking belongs to another user")
	ErrNotEnoughCapacity = inventory.ErrExhausted
)

// Resource names used on the availability feed.
const (
	ResourceRoom  = "room"
	ResourceEvent = "event"
)

// AvailabilityNotifier pushes counter changes to live subscribers.
type AvailabilityNotifier interface {
	NotifyAvailability(ctx context.Context, resource string, id uint, availability int)
}

// Publisher emits domain events to the message broker.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type Mailer interface {
	SendBookingConfirmation(data utils.BookingConfirmationData)
	SendCertificate(data utils.CertificateMailData)
}

type CertificateUploader interface {
	Upload(ctx context.Context, code string, png []byte) (string, error)
}

// TotalCache caches the global carbon sum.
type TotalCache interface {
	GetCarbonTotal(ctx context.Context) (float64, bool)
	SetCarbonTotal(ctx context.Context, total float64)
	InvalidateCarbonTotal(ctx context.Context)
}

// Deps are the optional side channels; any nil field is skipped.
type Deps struct {
	Notifier  AvailabilityNotifier
	Publisher Publisher
	Mailer    Mailer
	Uploader  CertificateUploader
	Cache     TotalCache
}

type Services struct {
	Users    UserService
	News     NewsService
	Boards   BoardService
	Carbon   CarbonService
	Hotels   HotelService
	Bookings BookingService
	Events   EventService
}

func New(db *gorm.DB, deps Deps) *Services {
	return &Services{
		Users:    NewUserService(db),
		News:     NewNewsService(db),
		Boards:   NewBoardService(db),
		Carbon:   NewCarbonService(db, deps),
		Hotels:   NewHotelService(db),
		Bookings: NewBookingService(db, deps),
		Events:   NewEventService(db, deps),
	}
}

func (d Deps) notify(ctx context.Context, resource string, id uint, availability int) {
	if d.Notifier != nil {
		d.Notifier.NotifyAvailability(ctx, resource, id, availability)
	}
}

func (d Deps) publish(routingKey string, payload any) {
	if d.Publisher == nil {
		return
	}
	if err := d.Publisher.Publish(routingKey, payload); err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
}

// userExists reports whether the user row is present; it is the owner check used
// by every create operation that references a user.
func userExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Table("users").Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
