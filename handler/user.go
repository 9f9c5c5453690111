package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	user, err := services.Users.Register(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func GetUser(c *fiber.Ctx) error {
	user, err := services.Users.Get(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetUsers(c *fiber.Ctx) error {
	page, _ := c.Locals("pagination").(model.Pagination)

	users, total, err := services.Users.List(c.UserContext(), page)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		Limit:      page.Limit,
		Page:       page.Page,
		TotalCount: total,
	})
}
