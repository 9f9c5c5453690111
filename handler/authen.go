package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	result, err := services.Users.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_LOGIN)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    result.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  c.Context().Time().Add(helper.AccessTokenTTL),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func Me(c *fiber.Ctx) error {
	claim, ok := helper.GetTokenClaim(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
	}

	user, err := services.Users.Get(c.UserContext(), claim.UserId)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
