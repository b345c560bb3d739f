package service

import (
	"context"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/utils"
)

func (s *rentalService) Availability(ctx context.Context) (*domain.AvailabilityReport, error) {
	generators, err := s.generatorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &domain.AvailabilityReport{
		Total:   len(generators),
		Details: generators,
	}
	for _, g := range generators {
		if g.InService && g.Available {
			report.Available++
		}
	}
	return report, nil
}

// BookedPeriods returns the date ranges of every rental currently
// occupying a generator, plus the in-service fleet size the calendar
// needs to judge capacity.
func (s *rentalService) BookedPeriods(ctx context.Context) ([]domain.BookedPeriod, int, error) {
	rentals, err := s.rentalRepo.List(ctx, "")
	if err != nil {
		return nil, 0, err
	}
	periods := []domain.BookedPeriod{}
	for _, rental := range rentals {
		if rental.Status.Occupying() {
			periods = append(periods, domain.BookedPeriod{Start: rental.StartDate, End: rental.EndDate})
		}
	}

	generators, err := s.generatorRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	active := 0
	for _, g := range generators {
		if g.InService {
			active++
		}
	}
	return periods, active, nil
}

// IsDateBookable reports whether the calendar day still has capacity:
// the count of occupying periods covering the date must stay strictly
// below the in-service fleet size. Capacity is about fleet size, not
// momentary availability — by the time the date arrives other rentals
// may have concluded.
func (s *rentalService) IsDateBookable(ctx context.Context, date string) (bool, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return false, err
	}
	periods, active, err := s.BookedPeriods(ctx)
	if err != nil {
		return false, err
	}
	booked := 0
	for _, p := range periods {
		if utils.DateCovered(date, p.Start, p.End) {
			booked++
		}
	}
	return booked < active, nil
}
