package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/utils"
)

// ExportCSV writes every rental whose period overlaps the inclusive
// [startDate, endDate] range as CSV. Both bounds are required.
func (s *rentalService) ExportCSV(ctx context.Context, startDate, endDate string, w io.Writer) error {
	if _, err := utils.ParseDate(startDate); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rentals, err := s.rentalRepo.List(ctx, "")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "name", "email", "phone", "start_date", "end_date", "delivery_type", "address", "price_eur", "status", "generator_id", "created_at"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rental := range rentals {
		if !utils.PeriodsOverlap(rental.StartDate, rental.EndDate, startDate, endDate) {
			continue
		}
		generatorID := ""
		if rental.GeneratorID != nil {
			generatorID = strconv.FormatInt(int64(*rental.GeneratorID), 10)
		}
		record := []string{
			strconv.FormatInt(rental.ID, 10),
			rental.Name,
			rental.Email,
			rental.Phone,
			rental.StartDate,
			rental.EndDate,
			string(rental.DeliveryType),
			rental.Address,
			formatCents(rental.PriceCents),
			string(rental.Status),
			generatorID,
			rental.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCents(cents int32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
