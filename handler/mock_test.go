package handler_test

import (
	"context"
	"time"

	"carbon_zero/model"

	"github.com/stretchr/testify/mock"
)

type userServiceMock struct{ mock.Mock }

func (m *userServiceMock) Register(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userServiceMock) Get(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userServiceMock) List(ctx context.Context, page model.Pagination) ([]model.User, int64, error) {
	args := m.Called(ctx, page)
	users, _ := args.Get(0).([]model.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *userServiceMock) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	resp, _ := args.Get(0).(*model.LoginResponse)
	return resp, args.Error(1)
}

type boardServiceMock struct{ mock.Mock }

func (m *boardServiceMock) List(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *boardServiceMock) Get(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *boardServiceMock) Create(ctx context.Context, input model.CreateBoardInput) (*model.Board, error) {
	args := m.Called(ctx, input)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *boardServiceMock) CreateDiscussion(ctx context.Context, boardId uint, input model.CreateDiscussionInput) (*model.Discussion, error) {
	args := m.Called(ctx, boardId, input)
	discussion, _ := args.Get(0).(*model.Discussion)
	return discussion, args.Error(1)
}

func (m *boardServiceMock) ListDiscussions(ctx context.Context, boardId uint) ([]model.Discussion, error) {
	args := m.Called(ctx, boardId)
	discussions, _ := args.Get(0).([]model.Discussion)
	return discussions, args.Error(1)
}

func (m *boardServiceMock) Interact(ctx context.Context, discussionId uint, input model.DiscussionInteractionInput) (*model.DiscussionInteraction, error) {
	args := m.Called(ctx, discussionId, input)
	interaction, _ := args.Get(0).(*model.DiscussionInteraction)
	return interaction, args.Error(1)
}

type carbonServiceMock struct{ mock.Mock }

func (m *carbonServiceMock) Create(ctx context.Context, input model.CreateCarbonDonationInput) (*model.CarbonDonation, error) {
	args := m.Called(ctx, input)
	donation, _ := args.Get(0).(*model.CarbonDonation)
	return donation, args.Error(1)
}

func (m *carbonServiceMock) Total(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *carbonServiceMock) ByUser(ctx context.Context, userId uint) (*model.CarbonSummary, error) {
	args := m.Called(ctx, userId)
	summary, _ := args.Get(0).(*model.CarbonSummary)
	return summary, args.Error(1)
}

func (m *carbonServiceMock) Certificate(ctx context.Context, id uint) ([]byte, *model.CarbonDonation, error) {
	args := m.Called(ctx, id)
	png, _ := args.Get(0).([]byte)
	donation, _ := args.Get(1).(*model.CarbonDonation)
	return png, donation, args.Error(2)
}

type bookingServiceMock struct{ mock.Mock }

func (m *bookingServiceMock) Create(ctx context.Context, roomId uint, input model.CreateBookingInput) (*model.Booking, error) {
	args := m.Called(ctx, roomId, input)
	booking, _ := args.Get(0).(*model.Booking)
	return booking, args.Error(1)
}

func (m *bookingServiceMock) ListByUser(ctx context.Context, userId uint) ([]model.Booking, error) {
	args := m.Called(ctx, userId)
	bookings, _ := args.Get(0).([]model.Booking)
	return bookings, args.Error(1)
}

func (m *bookingServiceMock) Cancel(ctx context.Context, id uint, actor model.TokenClaim) (*model.Booking, error) {
	args := m.Called(ctx, id, actor)
	booking, _ := args.Get(0).(*model.Booking)
	return booking, args.Error(1)
}

func (m *bookingServiceMock) CompleteStays(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}

type eventServiceMock struct{ mock.Mock }

func (m *eventServiceMock) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]model.Event)
	return events, args.Error(1)
}

func (m *eventServiceMock) Get(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Error(1)
}

func (m *eventServiceMock) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	args := m.Called(ctx, input)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Error(1)
}

func (m *eventServiceMock) Book(ctx context.Context, eventId uint, input model.CreateEventBookingInput) (*model.EventBookingBatch, error) {
	args := m.Called(ctx, eventId, input)
	batch, _ := args.Get(0).(*model.EventBookingBatch)
	return batch, args.Error(1)
}

func (m *eventServiceMock) ListByUser(ctx context.Context, userId uint) ([]model.EventBooking, error) {
	args := m.Called(ctx, userId)
	tickets, _ := args.Get(0).([]model.EventBooking)
	return tickets, args.Error(1)
}

func (m *eventServiceMock) CancelBatch(ctx context.Context, batchCode string, actor model.TokenClaim) (*model.EventBookingBatch, error) {
	args := m.Called(ctx, batchCode, actor)
	batch, _ := args.Get(0).(*model.EventBookingBatch)
	return batch, args.Error(1)
}
