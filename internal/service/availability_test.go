package service

import (
	"context"
	"testing"

	"genrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.svc.Availability(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Available)
	assert.Len(t, report.Details, 3)

	t.Run("Reserved unit is not available", func(t *testing.T) {
		env.mustApprove(t, env.mustCreate(t).ID)

		report, err := env.svc.Availability(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Available)
	})

	t.Run("Out-of-service unit is not available", func(t *testing.T) {
		_, err := env.svc.ToggleGeneratorInService(ctx, 3)
		require.NoError(t, err)

		report, err := env.svc.Availability(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Total, "fleet size counts out-of-service units")
		assert.Equal(t, 1, report.Available)
	})
}

func TestBookedPeriods(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	periods, active, err := env.svc.BookedPeriods(ctx)
	require.NoError(t, err)
	assert.Empty(t, periods)
	assert.Equal(t, 3, active)

	env.mustCreate(t)
	approved := env.mustApprove(t, env.mustCreate(t).ID)

	periods, active, err = env.svc.BookedPeriods(ctx)
	require.NoError(t, err)
	require.Len(t, periods, 1, "pending rentals do not occupy a unit")
	assert.Equal(t, approved.StartDate, periods[0].Start)
	assert.Equal(t, 3, active)

	t.Run("Paid rentals drop off the calendar", func(t *testing.T) {
		_, err := env.svc.Invoice(ctx, approved.ID)
		require.NoError(t, err)

		periods, _, err := env.svc.BookedPeriods(ctx)
		require.NoError(t, err)
		assert.Len(t, periods, 1, "invoiced rentals still occupy")

		_, err = env.svc.MarkPaid(ctx, approved.ID)
		require.NoError(t, err)

		periods, _, err = env.svc.BookedPeriods(ctx)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("Out-of-service shrinks the active count", func(t *testing.T) {
		_, err := env.svc.ToggleGeneratorInService(ctx, 2)
		require.NoError(t, err)

		_, active, err := env.svc.BookedPeriods(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, active)
	})
}

func TestIsDateBookable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("Invalid date", func(t *testing.T) {
		_, err := env.svc.IsDateBookable(ctx, "someday")
		assert.Error(t, err)
	})

	t.Run("Empty calendar", func(t *testing.T) {
		ok, err := env.svc.IsDateBookable(ctx, "2026-06-03")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	// Occupy all three units over the same period.
	for i := 0; i < 3; i++ {
		env.mustApprove(t, env.mustCreate(t).ID)
	}

	t.Run("Covered date at capacity", func(t *testing.T) {
		ok, err := env.svc.IsDateBookable(ctx, "2026-06-03")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Date outside every period", func(t *testing.T) {
		ok, err := env.svc.IsDateBookable(ctx, "2026-07-01")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestIsDateBookable_CapacityFollowsFleetSize(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Two overlapping bookings against a fleet of three leave capacity.
	env.mustApprove(t, env.mustCreate(t).ID)
	env.mustApprove(t, env.mustCreate(t).ID)

	ok, err := env.svc.IsDateBookable(ctx, "2026-06-03")
	require.NoError(t, err)
	assert.True(t, ok)

	// Shrinking the fleet to two makes the same date fully booked.
	_, err = env.svc.ToggleGeneratorInService(ctx, 3)
	require.NoError(t, err)

	ok, err = env.svc.IsDateBookable(ctx, "2026-06-03")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToggleGeneratorInService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	generator, err := env.svc.ToggleGeneratorInService(ctx, 2)
	require.NoError(t, err)
	assert.False(t, generator.InService)

	_, err = env.svc.ToggleGeneratorInService(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrGeneratorNotFound)
}
