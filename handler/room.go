package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHotels(c *fiber.Ctx) error {
	hotels, err := services.Hotels.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, constants.HOTEL_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotels)
}

func GetHotel(c *fiber.Ctx) error {
	hotel, err := services.Hotels.Get(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.HOTEL_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func GetHotelBySlug(c *fiber.Ctx) error {
	hotel, err := services.Hotels.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return serviceError(c, err, constants.HOTEL_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	hotel, err := services.Hotels.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.HOTEL_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	room, err := services.Hotels.AddRoom(c.UserContext(), inputId(c), input)
	if err != nil {
		return serviceError(c, err, constants.HOTEL_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func GetRoom(c *fiber.Ctx) error {
	room, err := services.Hotels.GetRoom(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.ROOM_NOT_FOUND, constants.ERROR_INPUT)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}
