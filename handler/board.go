package handler

import (
	"errors"

	"carbon_zero/constants"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
)

func GetBoards(c *fiber.Ctx) error {
	boards, err := services.Boards.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, constants.BOARD_NOT_FOUND, constants.INVALID_OWNER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, boards)
}

func GetBoard(c *fiber.Ctx) error {
	board, err := services.Boards.Get(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.BOARD_NOT_FOUND, constants.INVALID_OWNER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

func CreateBoard(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBoardInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.OwnerId) {
		return forbidden(c)
	}

	board, err := services.Boards.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, constants.BOARD_NOT_FOUND, constants.INVALID_OWNER_ID)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, board)
}

func CreateDiscussion(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateDiscussionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.OwnerId) {
		return forbidden(c)
	}

	discussion, err := services.Boards.CreateDiscussion(c.UserContext(), inputId(c), input)
	if err != nil {
		return serviceError(c, err, constants.BOARD_NOT_FOUND, constants.INVALID_OWNER_OR_BOARD)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, discussion)
}

func GetDiscussions(c *fiber.Ctx) error {
	discussions, err := services.Boards.ListDiscussions(c.UserContext(), inputId(c))
	if err != nil {
		return serviceError(c, err, constants.BOARD_NOT_FOUND, constants.INVALID_OWNER_OR_BOARD)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, discussions)
}

func InteractDiscussion(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.DiscussionInteractionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("input not found"))
	}

	if !actingFor(c, input.UserId) {
		return forbidden(c)
	}

	interaction, err := services.Boards.Interact(c.UserContext(), inputId(c), input)
	if err != nil {
		return serviceError(c, err, constants.INVALID_USER_OR_DISCUSSION, constants.INVALID_USER_OR_DISCUSSION)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, interaction)
}
