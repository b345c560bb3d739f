package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"testing"

	"genrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	inRange := env.mustCreate(t) // 2026-06-01 .. 2026-06-05

	outOfRange, err := env.svc.CreateRental(ctx, CreateRentalInput{
		Name:         "Liisa Virtanen",
		Email:        "liisa@example.com",
		Phone:        "+358501112222",
		StartDate:    "2026-08-10",
		EndDate:      "2026-08-12",
		DeliveryType: domain.DeliveryTypeDelivery,
		Address:      "Mannerheimintie 1, Helsinki",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.svc.ExportCSV(ctx, "2026-06-01", "2026-06-30", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus the one overlapping rental")

	header := records[0]
	assert.Equal(t, []string{"id", "name", "email", "phone", "start_date", "end_date", "delivery_type", "address", "price_eur", "status", "generator_id", "created_at"}, header)

	row := records[1]
	assert.Equal(t, strconv.FormatInt(inRange.ID, 10), row[0])
	assert.Equal(t, "Matti Meikäläinen", row[1])
	assert.Equal(t, "396.00", row[8], "four days at 99.00")
	assert.Equal(t, "pending", row[9])
	assert.Equal(t, "", row[10], "no unit reserved yet")

	for _, record := range records[1:] {
		assert.NotEqual(t, strconv.FormatInt(outOfRange.ID, 10), record[0])
	}
}

func TestExportCSV_PartialOverlapIncluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreate(t) // 2026-06-01 .. 2026-06-05

	var buf bytes.Buffer
	require.NoError(t, env.svc.ExportCSV(ctx, "2026-06-05", "2026-06-20", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2, "a rental ending on the range start still overlaps")
}

func TestExportCSV_InvalidRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var buf bytes.Buffer
	assert.ErrorIs(t, env.svc.ExportCSV(ctx, "", "2026-06-30", &buf), domain.ErrInvalidInput)
	assert.ErrorIs(t, env.svc.ExportCSV(ctx, "2026-06-01", "soon", &buf), domain.ErrInvalidInput)
	assert.Zero(t, buf.Len(), "nothing is written on validation failure")
}

func TestExportCSV_GeneratorColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	approved := env.mustApprove(t, env.mustCreate(t).ID)

	var buf bytes.Buffer
	require.NoError(t, env.svc.ExportCSV(ctx, "2026-06-01", "2026-06-30", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, strconv.FormatInt(int64(*approved.GeneratorID), 10), records[1][10])
	assert.Equal(t, "approved", records[1][9])
}
