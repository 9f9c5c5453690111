package model

import "carbon_zero/utils"

type Hotel struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Rooms       []Room `gorm:"foreignKey:HotelId;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

// Room is a bookable room type; Capacity is the number of identical units and
// Availability the units not held by an ACTIVE booking.
type Room struct {
	DTO
	HotelId      uint    `gorm:"index;not null" json:"hotel_id"`
	Name         string  `gorm:"not null" json:"name"`
	Price        float64 `gorm:"not null;check:price >= 0" json:"price"`
	Capacity     int     `gorm:"not null;check:capacity >= 0" json:"capacity"`
	Availability int     `gorm:"not null;check:availability >= 0" json:"availability"`
	Hotel        *Hotel  `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
}

type Booking struct {
	DTO
	Code       string           `gorm:"size:20;uniqueIndex;not null" json:"code"`
	RoomId     uint             `gorm:"index;not null" json:"room_id"`
	UserId     uint             `gorm:"index;not null" json:"user_id"`
	CheckIn    utils.CustomDate `gorm:"type:date;not null" json:"check_in"`
	CheckOut   utils.CustomDate `gorm:"type:date;not null" json:"check_out"`
	Nights     int              `gorm:"not null" json:"nights"`
	TotalPrice float64          `gorm:"not null" json:"total_price"`
	GuestName  string           `gorm:"not null" json:"guest_name"`
	GuestEmail string           `gorm:"not null" json:"guest_email"`
	Status     string           `gorm:"size:16;index;not null;default:'ACTIVE'" json:"status"`
	Room       *Room            `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	User       *User            `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateHotelInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description"`
}

type CreateRoomInput struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Capacity int     `json:"capacity" validate:"required,gte=1,lte=10000"`
}

type CreateBookingInput struct {
	UserId     uint             `json:"user_id" validate:"required"`
	CheckIn    utils.CustomDate `json:"check_in"`
	CheckOut   utils.CustomDate `json:"check_out"`
	GuestName  string           `json:"guest_name" validate:"required,max=200"`
	GuestEmail string           `json:"guest_email" validate:"required,email"`
}
