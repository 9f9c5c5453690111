//go:build integration

package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"carbon_zero/constants"
	"carbon_zero/inventory"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func stay(userId uint, from, to string) model.CreateBookingInput {
	checkIn, _ := utils.ParseCustomDate(from)
	checkOut, _ := utils.ParseCustomDate(to)
	return model.CreateBookingInput{
		UserId:     userId,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestName:  "Guest",
		GuestEmail: "guest@example.com",
	}
}

func availabilityOf[T inventory.Counted](t *testing.T, id uint) int {
	t.Helper()
	var availability int
	require.NoError(t, testDB.Model(new(T)).Where("id = ?", id).Select("availability").Scan(&availability).Error)
	return availability
}

func TestRoomBooking_TakesOneUnit(t *testing.T) {
	cleanTables()
	user := createUser(t, "one@example.com")
	room := createRoom(t, 1, 1200)
	svc := NewBookingService(testDB, Deps{})

	booking, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-06-01", "2025-06-04"))
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 3600.0, booking.TotalPrice)
	assert.Equal(t, constants.BOOKING_ACTIVE, booking.Status)
	assert.Regexp(t, `^BK-[0-9A-F]{8}$`, booking.Code)
	assert.Equal(t, 0, booking.Room.Availability)
	assert.Equal(t, 0, availabilityOf[model.Room](t, room.ID))
}

func TestRoomBooking_LastUnitRace(t *testing.T) {
	cleanTables()
	room := createRoom(t, 1, 900)
	svc := NewBookingService(testDB, Deps{})

	const contenders = 10
	users := make([]model.User, contenders)
	for i := range users {
		users[i] = createUser(t, fmt.Sprintf("race-%02d@example.com", i))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		exhausted int
	)
	wg.Add(contenders)
	for i := 0; i < contenders; i++ {
		go func(user model.User) {
			defer wg.Done()
			_, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-07-01", "2025-07-02"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, ErrNotEnoughCapacity) {
				exhausted++
			}
		}(users[i])
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, contenders-1, exhausted)
	assert.Equal(t, 0, availabilityOf[model.Room](t, room.ID))

	var rows int64
	testDB.Model(&model.Booking{}).Where("room_id = ?", room.ID).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestRoomBooking_MissingRoomCreatesNothing(t *testing.T) {
	cleanTables()
	user := createUser(t, "ghost@example.com")
	svc := NewBookingService(testDB, Deps{})

	booking, err := svc.Create(t.Context(), 9999, stay(user.ID, "2025-06-01", "2025-06-02"))

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrNotFound)
	var rows int64
	testDB.Model(&model.Booking{}).Count(&rows)
	assert.Zero(t, rows)
}

func TestRoomBooking_UnknownUserKeepsAvailability(t *testing.T) {
	cleanTables()
	room := createRoom(t, 2, 500)
	svc := NewBookingService(testDB, Deps{})

	_, err := svc.Create(t.Context(), room.ID, stay(4242, "2025-06-01", "2025-06-02"))

	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 2, availabilityOf[model.Room](t, room.ID))
}

func TestRoomBooking_MissingRoomWinsOverUnknownUser(t *testing.T) {
	cleanTables()
	svc := NewBookingService(testDB, Deps{})

	_, err := svc.Create(t.Context(), 9999, stay(4242, "2025-06-01", "2025-06-02"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomBooking_EmptyStay(t *testing.T) {
	svc := NewBookingService(testDB, Deps{})

	_, err := svc.Create(t.Context(), 1, stay(1, "2025-06-02", "2025-06-02"))

	assert.ErrorIs(t, err, ErrInvalidStay)
}

func TestCancelBooking_ReleasesOnce(t *testing.T) {
	cleanTables()
	user := createUser(t, "cancel@example.com")
	room := createRoom(t, 2, 800)
	svc := NewBookingService(testDB, Deps{})
	owner := model.TokenClaim{UserId: user.ID, UserTypeId: constants.USER_TYPE_USER}

	booking, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-06-01", "2025-06-03"))
	require.NoError(t, err)
	require.Equal(t, 1, availabilityOf[model.Room](t, room.ID))

	stranger := model.TokenClaim{UserId: user.ID + 100, UserTypeId: constants.USER_TYPE_USER}
	_, err = svc.Cancel(t.Context(), booking.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := svc.Cancel(t.Context(), booking.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, constants.BOOKING_CANCELLED, cancelled.Status)
	assert.Equal(t, 2, availabilityOf[model.Room](t, room.ID))

	_, err = svc.Cancel(t.Context(), booking.ID, owner)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, 2, availabilityOf[model.Room](t, room.ID))
}

func TestCompleteStays(t *testing.T) {
	cleanTables()
	user := createUser(t, "stay@example.com")
	room := createRoom(t, 3, 300)
	svc := NewBookingService(testDB, Deps{})

	_, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-05-28", "2025-05-31"))
	require.NoError(t, err)
	_, err = svc.Create(t.Context(), room.ID, stay(user.ID, "2025-05-30", "2025-06-01"))
	require.NoError(t, err)
	future, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-06-10", "2025-06-12"))
	require.NoError(t, err)
	require.Equal(t, 0, availabilityOf[model.Room](t, room.ID))

	completed, err := svc.CompleteStays(t.Context(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, completed)
	assert.Equal(t, 2, availabilityOf[model.Room](t, room.ID))

	var status string
	testDB.Model(&model.Booking{}).Where("id = ?", future.ID).Select("status").Scan(&status)
	assert.Equal(t, constants.BOOKING_ACTIVE, status)

	again, err := svc.CompleteStays(t.Context(), testNow)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestEventBooking_CreatesOneRowPerTicket(t *testing.T) {
	cleanTables()
	user := createUser(t, "tickets@example.com")
	event := createEvent(t, 10)
	svc := NewEventService(testDB, Deps{})

	batch, err := svc.Book(t.Context(), event.ID, model.CreateEventBookingInput{
		UserId: user.ID, GuestName: "Guest", GuestEmail: "guest@example.com", Amount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Amount)
	assert.Equal(t, 7, batch.Availability)
	assert.Equal(t, 7, availabilityOf[model.Event](t, event.ID))

	var rows []model.EventBooking
	require.NoError(t, testDB.Where("event_id = ?", event.ID).Find(&rows).Error)
	require.Len(t, rows, 3)
	codes := map[string]bool{}
	for _, row := range rows {
		assert.Equal(t, batch.BatchCode, row.BatchCode)
		codes[row.Code] = true
	}
	assert.Len(t, codes, 3)
}

func TestEventBooking_NoOversell(t *testing.T) {
	cleanTables()
	event := createEvent(t, 10)
	svc := NewEventService(testDB, Deps{})

	const buyers = 8
	users := make([]model.User, buyers)
	for i := range users {
		users[i] = createUser(t, fmt.Sprintf("buyer-%02d@example.com", i))
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sold int
	)
	wg.Add(buyers)
	for i := 0; i < buyers; i++ {
		go func(user model.User) {
			defer wg.Done()
			batch, err := svc.Book(t.Context(), event.ID, model.CreateEventBookingInput{
				UserId: user.ID, GuestName: "Guest", GuestEmail: "guest@example.com", Amount: 3,
			})
			if err != nil {
				assert.ErrorIs(t, err, ErrNotEnoughCapacity)
				return
			}
			mu.Lock()
			sold += batch.Amount
			mu.Unlock()
		}(users[i])
	}
	wg.Wait()

	assert.Equal(t, 9, sold)
	assert.Equal(t, 1, availabilityOf[model.Event](t, event.ID))

	var rows int64
	testDB.Model(&model.EventBooking{}).Where("event_id = ?", event.ID).Count(&rows)
	assert.Equal(t, int64(9), rows)
}

func TestEventBooking_MissingEvent(t *testing.T) {
	cleanTables()
	user := createUser(t, "nobody@example.com")
	svc := NewEventService(testDB, Deps{})

	_, err := svc.Book(t.Context(), 9999, model.CreateEventBookingInput{
		UserId: user.ID, GuestName: "Guest", GuestEmail: "guest@example.com", Amount: 1,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	var rows int64
	testDB.Model(&model.EventBooking{}).Count(&rows)
	assert.Zero(t, rows)
}

func TestEventBooking_UnknownUser(t *testing.T) {
	cleanTables()
	event := createEvent(t, 5)
	svc := NewEventService(testDB, Deps{})
	input := model.CreateEventBookingInput{UserId: 4242, GuestName: "Guest", GuestEmail: "guest@example.com", Amount: 2}

	_, err := svc.Book(t.Context(), event.ID, input)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 5, availabilityOf[model.Event](t, event.ID))

	_, err = svc.Book(t.Context(), 9999, input)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBatch(t *testing.T) {
	cleanTables()
	user := createUser(t, "batch@example.com")
	event := createEvent(t, 5)
	svc := NewEventService(testDB, Deps{})
	owner := model.TokenClaim{UserId: user.ID, UserTypeId: constants.USER_TYPE_USER}

	batch, err := svc.Book(t.Context(), event.ID, model.CreateEventBookingInput{
		UserId: user.ID, GuestName: "Guest", GuestEmail: "guest@example.com", Amount: 2,
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBatch(t.Context(), batch.BatchCode, owner)
	require.NoError(t, err)
	assert.Equal(t, 5, cancelled.Availability)
	for _, ticket := range cancelled.Tickets {
		assert.Equal(t, constants.BOOKING_CANCELLED, ticket.Status)
	}

	_, err = svc.CancelBatch(t.Context(), batch.BatchCode, owner)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, 5, availabilityOf[model.Event](t, event.ID))

	_, err = svc.CancelBatch(t.Context(), "EB-MISSING", owner)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReconcile_RepairsDrift(t *testing.T) {
	cleanTables()
	user := createUser(t, "drift@example.com")
	room := createRoom(t, 4, 100)
	svc := NewBookingService(testDB, Deps{})

	_, err := svc.Create(t.Context(), room.ID, stay(user.ID, "2025-06-01", "2025-06-02"))
	require.NoError(t, err)
	require.NoError(t, testDB.Model(&model.Room{}).Where("id = ?", room.ID).Update("availability", 1).Error)

	fixed, err := inventory.Reconcile(t.Context(), testDB)
	require.NoError(t, err)

	require.Len(t, fixed, 1)
	assert.Equal(t, "rooms", fixed[0].Table)
	assert.Equal(t, 3, fixed[0].Expected())
	assert.Equal(t, 3, availabilityOf[model.Room](t, room.ID))

	drifts, err := inventory.FindDrift(t.Context(), testDB)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}
