package validate

import (
	"carbon_zero/model"

	"github.com/gofiber/fiber/v2"
)

func CreateNews() fiber.Handler {
	return body[model.CreateNewsInput]()
}

func CreateBoard() fiber.Handler {
	return body[model.CreateBoardInput]()
}

func CreateDiscussion() fiber.Handler {
	return body[model.CreateDiscussionInput]()
}

func DiscussionInteraction() fiber.Handler {
	return body[model.DiscussionInteractionInput]()
}

func CreateCarbonDonation() fiber.Handler {
	return body[model.CreateCarbonDonationInput]()
}
