package handler

import (
	"encoding/base64"
	"errors"
	"fmt"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCarbonDonation(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCarbonDonationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.UserId) {
		return forbidden(c)
	}

	donation, err := services.Carbon.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, donation)
}

func GetCarbonTotal(c *fiber.Ctx) error {
	total, err := services.Carbon.Total(c.UserContext())
	if err != nil {
		return serviceError(c, err, constants.DONATION_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"total": total})
}

func GetUserCarbon(c *fiber.Ctx) error {
	summary, err := services.Carbon.ByUser(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.USER_NOT_FOUND, constants.INVALID_USER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

// GetCertificate returns the PNG, or a base64 data string with ?format=base64.
func GetCertificate(c *fiber.Ctx) error {
	png, donation, err := services.Carbon.Certificate(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.DONATION_NOT_FOUND, constants.INVALID_USER_ID)
	}

	if c.Query("format") == "base64" {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"certificate_code": donation.CertificateCode,
			"image":            base64.StdEncoding.EncodeToString(png),
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.png"`, donation.CertificateCode))
	return c.Status(fiber.StatusOK).Send(png)
}
