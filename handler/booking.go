package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.UserId) {
		return forbidden(c)
	}

	booking, err := services.Bookings.Create(c.UserContext(), inputId(c), input)
	if err != nil {
		return serviceError(c, err, constants.ROOM_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetUserBookings(c *fiber.Ctx) error {
	if !actingFor(c, inputId(c)) {
		return forbidden(c)
	}

	bookings, err := services.Bookings.ListByUser(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func CancelBooking(c *fiber.Ctx) error {
	claim, _ := helper.GetTokenClaim(c)

	booking, err := services.Bookings.Cancel(c.UserContext(), inputId(c), claim)
	if err != nil {
		return serviceError(c, err, constants.BOOKING_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
