//go:build integration

package service

import (
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"carbon_zero/config"
	"carbon_zero/constants"
	"carbon_zero/database"
	"carbon_zero/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "carbon_zero_test"),
	)

	var err error
	testDB, err = database.Open(dsn)
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}
	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}
	database.SeedData(testDB, config.App{})

	code := m.Run()
	cleanTables()
	os.Exit(code)
}

func cleanTables() {
	testDB.Exec(`TRUNCATE event_bookings, events, bookings, rooms, hotels,
		discussion_interactions, discussions, boards, news, carbon_donations, users RESTART IDENTITY CASCADE`)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func createUser(t *testing.T, email string) model.User {
	t.Helper()
	user := model.User{
		Email:          email,
		HashedPassword: "x",
		Name:           "Test",
		Lastname:       "User",
		MobilePhone:    "0800000000",
		UserTypeId:     constants.USER_TYPE_USER,
	}
	require.NoError(t, testDB.Create(&user).Error)
	return user
}

func createRoom(t *testing.T, capacity int, price float64) model.Room {
	t.Helper()
	hotel := model.Hotel{Name: "Green Lodge", Slug: "green-lodge-" + strings.ToLower(shortCode())}
	require.NoError(t, testDB.Create(&hotel).Error)
	room := model.Room{HotelId: hotel.ID, Name: "Double", Price: price, Capacity: capacity, Availability: capacity}
	require.NoError(t, testDB.Create(&room).Error)
	return room
}

func createEvent(t *testing.T, capacity int) model.Event {
	t.Helper()
	svc := NewEventService(testDB, Deps{})
	event, err := svc.Create(t.Context(), model.CreateEventInput{
		Name:     "Mangrove Planting",
		Capacity: capacity,
		Price:    100,
		StartsAt: testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	return *event
}
