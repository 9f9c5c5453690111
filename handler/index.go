package handler

import (
	"errors"
	"log"

	"carbon_zero/config"
	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/realtime"
	"carbon_zero/service"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	services  *service.Services
	hub       *realtime.Hub
	appConfig config.App
)

// Init wires the handlers to the service layer. h may be nil when Redis is not configured.
func Init(s *service.Services, h *realtime.Hub, cfg config.App) {
	services = s
	hub = h
	appConfig = cfg
}

func inputId(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(int)
	return uint(id)
}

// actingFor reports whether the caller may act as userId. Admins may act for anyone.
func actingFor(c *fiber.Ctx, userId uint) bool {
	claim, ok := helper.GetTokenClaim(c)
	return ok && service.CanManage(claim, userId)
}

func forbidden(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACTING_FOR_OTHER_USER, service.ErrForbidden)
}

// serviceError maps service errors to a status code. notFound and invalidRef are the
// messages used for ErrNotFound and ErrInvalidReference on this endpoint.
func serviceError(c *fiber.Ctx, err error, notFound, invalidRef string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound, err)
	case errors.Is(err, service.ErrInvalidReference):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, invalidRef, err)
	case errors.Is(err, service.ErrEmailTaken):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_ALREADY_REGISTERED, err)
	case errors.Is(err, service.ErrInvalidLogin):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_LOGIN, err)
	case errors.Is(err, service.ErrInvalidStay):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STAY, err)
	case errors.Is(err, service.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BOOKING_OWNER, err)
	case errors.Is(err, service.ErrAlreadyCancelled):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_ALREADY_CANCELLED, err)
	case errors.Is(err, service.ErrNotEnoughCapacity):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.NOT_ENOUGH_AVAILABILITY, err)
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
