package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func GetNews(c *fiber.Ctx) error {
	news, err := services.News.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, constants.ERROR_INTERNAL_ERROR, constants.INVALID_OWNER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, news)
}

func CreateNews(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateNewsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.OwnerId) {
		return forbidden(c)
	}

	news, err := services.News.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_OWNER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, news)
}
