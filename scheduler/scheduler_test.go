package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stayCompleterMock struct {
	mock.Mock
}

func (m *stayCompleterMock) CompleteStays(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}

func TestCompleteStays_UsesLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	stays := new(stayCompleterMock)
	stays.On("CompleteStays", mock.Anything, mock.MatchedBy(func(t time.Time) bool {
		return t.Location() == loc
	})).Return(2, nil).Once()

	CompleteStays(stays, loc)

	stays.AssertExpectations(t)
}

func TestCompleteStays_LogsError(t *testing.T) {
	stays := new(stayCompleterMock)
	stays.On("CompleteStays", mock.Anything, mock.Anything).Return(1, errors.New("db down")).Once()

	assert.NotPanics(t, func() { CompleteStays(stays, time.UTC) })
	stays.AssertExpectations(t)
}

func TestReconcileSchedule(t *testing.T) {
	schedule, err := cron.ParseStandard(reconcileSchedule)
	require.NoError(t, err)

	from := time.Date(2025, 1, 1, 10, 2, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC), schedule.Next(from))
}
