//go:build integration

package service

import (
	"testing"

	"carbon_zero/constants"
	"carbon_zero/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	cleanTables()
	svc := NewUserService(testDB)
	input := model.CreateUserInput{
		Email: "dup@example.com", Password: "secret1", Name: "Dup", Lastname: "User", MobilePhone: "1",
	}

	user, err := svc.Register(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, constants.USER_TYPE_USER, user.UserTypeId)
	assert.NotEqual(t, "secret1", user.HashedPassword)

	input.Email = "DUP@example.com"
	_, err = svc.Register(t.Context(), input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	cleanTables()
	t.Setenv("JWT_SECRET", "integration-secret")
	svc := NewUserService(testDB)
	_, err := svc.Register(t.Context(), model.CreateUserInput{
		Email: "login@example.com", Password: "secret1", Name: "Log", Lastname: "In", MobilePhone: "1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(t.Context(), "login@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "login@example.com", resp.Data.Email)

	_, err = svc.Login(t.Context(), "login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidLogin)
	_, err = svc.Login(t.Context(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestInteract_Upserts(t *testing.T) {
	cleanTables()
	user := createUser(t, "board@example.com")
	svc := NewBoardService(testDB)

	board, err := svc.Create(t.Context(), model.CreateBoardInput{Title: "Compost", OwnerId: user.ID})
	require.NoError(t, err)
	discussion, err := svc.CreateDiscussion(t.Context(), board.ID, model.CreateDiscussionInput{Body: "Tips?", OwnerId: user.ID})
	require.NoError(t, err)

	_, err = svc.Interact(t.Context(), discussion.ID, model.DiscussionInteractionInput{UserId: user.ID, InteractionType: constants.INTERACTION_LIKE})
	require.NoError(t, err)
	_, err = svc.Interact(t.Context(), discussion.ID, model.DiscussionInteractionInput{UserId: user.ID, InteractionType: constants.INTERACTION_DISLIKE})
	require.NoError(t, err)

	var rows []model.DiscussionInteraction
	require.NoError(t, testDB.Where("discussion_id = ?", discussion.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, constants.INTERACTION_DISLIKE, rows[0].InteractionType)

	_, err = svc.Interact(t.Context(), 9999, model.DiscussionInteractionInput{UserId: user.ID, InteractionType: constants.INTERACTION_LIKE})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = svc.CreateDiscussion(t.Context(), 9999, model.CreateDiscussionInput{Body: "x", OwnerId: user.ID})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestNews_InvalidOwner(t *testing.T) {
	cleanTables()
	svc := NewNewsService(testDB)

	_, err := svc.Create(t.Context(), model.CreateNewsInput{Title: "Beach cleanup", OwnerId: 4242})

	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCarbon_TotalsAndCertificate(t *testing.T) {
	cleanTables()
	user := createUser(t, "carbon@example.com")
	svc := NewCarbonService(testDB, Deps{})

	first, err := svc.Create(t.Context(), model.CreateCarbonDonationInput{UserId: user.ID, Amount: 12.5})
	require.NoError(t, err)
	assert.Regexp(t, `^CERT-[0-9A-F]{8}$`, first.CertificateCode)
	_, err = svc.Create(t.Context(), model.CreateCarbonDonationInput{UserId: user.ID, Amount: 7.5})
	require.NoError(t, err)

	total, err := svc.Total(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 20.0, total)

	summary, err := svc.ByUser(t.Context(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, summary.Total)
	assert.Len(t, summary.Donations, 2)

	png, donation, err := svc.Certificate(t.Context(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateCode, donation.CertificateCode)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = svc.Create(t.Context(), model.CreateCarbonDonationInput{UserId: 4242, Amount: 1})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, _, err = svc.Certificate(t.Context(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHotels_SlugAndRooms(t *testing.T) {
	cleanTables()
	svc := NewHotelService(testDB)

	first, err := svc.Create(t.Context(), model.CreateHotelInput{Name: "Eco Resort Krabi"})
	require.NoError(t, err)
	second, err := svc.Create(t.Context(), model.CreateHotelInput{Name: "Eco Resort Krabi"})
	require.NoError(t, err)
	assert.Equal(t, "eco-resort-krabi", first.Slug)
	assert.Equal(t, "eco-resort-krabi-1", second.Slug)

	room, err := svc.AddRoom(t.Context(), first.ID, model.CreateRoomInput{Name: "Bungalow", Price: 1500, Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, room.Availability)

	hotel, err := svc.GetBySlug(t.Context(), "eco-resort-krabi")
	require.NoError(t, err)
	require.Len(t, hotel.Rooms, 1)

	_, err = svc.AddRoom(t.Context(), 9999, model.CreateRoomInput{Name: "x", Capacity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
