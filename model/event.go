package model

import "time"

type Event struct {
	DTO
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	StartsAt     time.Time `gorm:"not null" json:"starts_at"`
	Price        float64   `gorm:"not null;check:price >= 0" json:"price"`
	Capacity     int       `gorm:"not null;check:capacity >= 0" json:"capacity"`
	Availability int       `gorm:"not null;check:availability >= 0" json:"availability"`
}

// EventBooking is one ticket. A request for N tickets inserts N rows that share a BatchCode.
type EventBooking struct {
	DTO
	Code       string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	BatchCode  string `gorm:"size:20;index;not null" json:"batch_code"`
	EventId    uint   `gorm:"index;not null" json:"event_id"`
	UserId     uint   `gorm:"index;not null" json:"user_id"`
	GuestName  string `gorm:"not null" json:"guest_name"`
	GuestEmail string `gorm:"not null" json:"guest_email"`
	Status     string `gorm:"size:16;index;not null;default:'ACTIVE'" json:"status"`
	Event      *Event `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	User       *User  `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateEventInput struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Location    string    `json:"location" validate:"max=200"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Capacity    int       `json:"capacity" validate:"required,gte=1,lte=1000000"`
}

type CreateEventBookingInput struct {
	UserId     uint   `json:"user_id" validate:"required"`
	GuestName  string `json:"guest_name" validate:"required,max=200"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	Amount     int    `json:"amount" validate:"required,gte=1,lte=20"`
}

type EventBookingBatch struct {
	BatchCode    string         `json:"batch_code"`
	EventId      uint           `json:"event_id"`
	Amount       int            `json:"amount"`
	Availability int            `json:"availability"`
	Tickets      []EventBooking `json:"tickets"`
}
