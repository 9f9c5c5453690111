package router

import (
	"carbon_zero/handler"
	"carbon_zero/middleware"
	"carbon_zero/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	v1.Post("/login", validate.Login(), handler.Login)
	v1.Post("/logout", handler.Logout)
	v1.Get("/me", middleware.Protected(), handler.Me)

	users := v1.Group("/users")
	users.Post("/", validate.CreateUser(), handler.CreateUser)
	users.Get("/", middleware.Protected(), validate.Pagination(), handler.GetUsers)
	users.Get("/:id", validate.GetById("id"), handler.GetUser)
	users.Get("/:id/carbon", validate.GetById("id"), handler.GetUserCarbon)
	users.Get("/:id/bookings", middleware.Protected(), validate.GetById("id"), handler.GetUserBookings)
	users.Get("/:id/event-bookings", middleware.Protected(), validate.GetById("id"), handler.GetUserEventBookings)

	news := v1.Group("/news")
	news.Get("/", handler.GetNews)
	news.Post("/", middleware.Protected(), validate.CreateNews(), handler.CreateNews)

	boards := v1.Group("/boards")
	boards.Get("/", handler.GetBoards)
	boards.Get("/:id", validate.GetById("id"), handler.GetBoard)
	boards.Post("/", middleware.Protected(), validate.CreateBoard(), handler.CreateBoard)
	boards.Post("/:id/discussion", middleware.Protected(), validate.GetById("id"), validate.CreateDiscussion(), handler.CreateDiscussion)
	boards.Get("/:id/discussions", validate.GetById("id"), handler.GetDiscussions)

	discussions := v1.Group("/discussions")
	discussions.Post("/:id/interaction", middleware.Protected(), validate.GetById("id"), validate.DiscussionInteraction(), handler.InteractDiscussion)

	carbon := v1.Group("/carbon")
	carbon.Post("/", middleware.Protected(), validate.CreateCarbonDonation(), handler.CreateCarbonDonation)
	carbon.Get("/total", handler.GetCarbonTotal)
	carbon.Get("/:id/certificate", validate.GetById("id"), handler.GetCertificate)

	hotels := v1.Group("/hotels")
	hotels.Get("/", handler.GetHotels)
	hotels.Get("/slug/:slug", handler.GetHotelBySlug)
	hotels.Get("/:id", validate.GetById("id"), handler.GetHotel)
	hotels.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateHotel(), handler.CreateHotel)
	hotels.Post("/:id/rooms", middleware.Protected(), middleware.AdminOnly(), validate.GetById("id"), validate.CreateRoom(), handler.CreateRoom)

	rooms := v1.Group("/rooms")
	rooms.Get("/:id", validate.GetById("id"), handler.GetRoom)
	rooms.Post("/:id/bookings", middleware.Protected(), validate.GetById("id"), validate.CreateBooking(), handler.CreateBooking)

	bookings := v1.Group("/bookings")
	bookings.Post("/:id/cancel", middleware.Protected(), validate.GetById("id"), handler.CancelBooking)

	events := v1.Group("/events")
	events.Get("/", handler.GetEvents)
	events.Get("/:id", validate.GetById("id"), handler.GetEvent)
	events.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateEvent(), handler.CreateEvent)
	events.Post("/:id/bookings", middleware.Protected(), validate.GetById("id"), validate.CreateEventBooking(), handler.CreateEventBooking)

	eventBookings := v1.Group("/event-bookings")
	eventBookings.Post("/:batchCode/cancel", middleware.Protected(), handler.CancelEventBooking)

	v1.Post("/cloudinary-signature", middleware.Protected(), middleware.AdminOnly(), validate.CloudinarySignature(), handler.GenerateSignature)

	ws := v1.Group("/ws")
	ws.Get("/availability/:resource/:id", handler.AvailabilityUpgrade, websocket.New(handler.AvailabilityFeed))
}
