package handler

import (
	"errors"
	"time"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateSignature signs a direct browser upload of a news, hotel or event image.
func GenerateSignature(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.SignatureInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}
	if appConfig.CloudinaryAPISecret == "" || appConfig.CloudinaryAPIKey == "" {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.CLOUDINARY_NOT_CONFIGURED, errors.New("cloudinary credentials missing"))
	}

	signature, err := helper.SignUpload(appConfig, map[string]string{
		"folder":    input.Folder,
		"public_id": input.PublicId,
	}, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature.Signature,
		"timestamp": signature.Timestamp,
		"apiKey":    signature.APIKey,
		"cloudName": signature.CloudName,
		"folder":    input.Folder,
	})
}
