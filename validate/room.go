package validate

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateHotel() fiber.Handler {
	return body[model.CreateHotelInput]()
}

func CreateRoom() fiber.Handler {
	return body[model.CreateRoomInput]()
}

func CreateBooking() fiber.Handler {
	return body(func(input *model.CreateBookingInput) error {
		if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
			return errors.New("check_in and check_out are required")
		}
		if utils.NightsBetween(input.CheckIn, input.CheckOut) <= 0 {
			return errors.New(constants.INVALID_STAY)
		}
		return nil
	})
}

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]()
}

func CreateEventBooking() fiber.Handler {
	return body[model.CreateEventBookingInput]()
}

func CloudinarySignature() fiber.Handler {
	return body[model.SignatureInput]()
}
