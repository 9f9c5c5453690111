package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func GetEvents(c *fiber.Ctx) error {
	events, err := services.Events.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, constants.EVENT_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func GetEvent(c *fiber.Ctx) error {
	event, err := services.Events.Get(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.EVENT_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	event, err := services.Events.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.EVENT_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

func CreateEventBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateEventBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.UserId) {
		return forbidden(c)
	}

	batch, err := services.Events.Book(c.UserContext(), inputId(c), input)
	if err != nil {
		return serviceError(c, err, constants.EVENT_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, batch)
}

func GetUserEventBookings(c *fiber.Ctx) error {
	if !actingFor(c, inputId(c)) {
		return forbidden(c)
	}

	tickets, err := services.Events.ListByUser(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

func CancelEventBooking(c *fiber.Ctx) error {
	claim, _ := helper.GetTokenClaim(c)

	batch, err := services.Events.CancelBatch(c.UserContext(), c.Params("batchCode"), claim)
	if err != nil {
		return serviceError(c, err, constants.BOOKING_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, batch)
}
