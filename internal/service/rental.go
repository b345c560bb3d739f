package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
	"genrent-backend/internal/utils"
)

type rentalService struct {
	// mu serializes every mutating read-modify-write across the two
	// collections. Without it two concurrent approvals can both read the
	// same "available" generator and double-book it.
	mu sync.Mutex

	rentalRepo    repository.RentalRepository
	generatorRepo repository.GeneratorRepository
	emailSvc      EmailService

	adminEmail     string
	dailyRateCents int32
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	generatorRepo repository.GeneratorRepository,
	emailSvc EmailService,
	adminEmail string,
	dailyRateCents int32,
) RentalService {
	return &rentalService{
		rentalRepo:     rentalRepo,
		generatorRepo:  generatorRepo,
		emailSvc:       emailSvc,
		adminEmail:     adminEmail,
		dailyRateCents: dailyRateCents,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	price, err := utils.RentalPriceCents(input.StartDate, input.EndDate, s.dailyRateCents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rental := &domain.Rental{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DeliveryType: input.DeliveryType,
		Address:      strings.TrimSpace(input.Address),
		PriceCents:   price,
		Status:       domain.RentalStatusPending,
	}

	s.mu.Lock()
	err = s.rentalRepo.Create(ctx, rental)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Notification failure never rolls back or blocks the booking.
	if err := s.emailSvc.SendRentalRequestNotification(ctx, s.adminEmail, rental.Name, rental.StartDate, rental.EndDate); err != nil {
		logger.Warn("Failed to send rental request notification", "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx, status)
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// Approve moves a pending rental to approved and reserves the lowest-id
// available in-service generator for it. With no eligible generator the
// rental stays pending and ErrNoGeneratorsAvailable is returned.
func (s *rentalService) Approve(ctx context.Context, id int64) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending {
		return nil, domain.ErrInvalidState
	}

	generator, err := s.generatorRepo.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusApproved
	rental.GeneratorID = &generator.ID
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	if err := s.generatorRepo.SetAvailability(ctx, generator.ID, false); err != nil {
		return nil, err
	}

	logger.Info("Rental approved", "rental_id", rental.ID, "generator_id", generator.ID)

	if err := s.emailSvc.SendRentalApprovedNotification(ctx, rental.Email, rental.Name, generator.Name, rental.StartDate, rental.EndDate); err != nil {
		logger.Warn("Failed to send approval notification", "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

func (s *rentalService) Invoice(ctx context.Context, id int64) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusApproved {
		return nil, domain.ErrInvalidState
	}

	rental.Status = domain.RentalStatusInvoiced
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental invoiced", "rental_id", rental.ID)
	return rental, nil
}

// MarkPaid completes an invoiced rental and releases its generator back
// to the pool. The record keeps the generator id for reporting.
func (s *rentalService) MarkPaid(ctx context.Context, id int64) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusInvoiced {
		return nil, domain.ErrInvalidState
	}

	rental.Status = domain.RentalStatusPaid
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	if rental.GeneratorID != nil {
		if err := s.generatorRepo.SetAvailability(ctx, *rental.GeneratorID, true); err != nil {
			return nil, err
		}
	}

	logger.Info("Rental paid", "rental_id", rental.ID)

	if err := s.emailSvc.SendPaymentConfirmation(ctx, rental.Email, rental.Name, rental.PriceCents); err != nil {
		logger.Warn("Failed to send payment confirmation", "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

// Delete removes a rental in any status. A held generator is released
// first; deleting a pending rental never touches the pool.
func (s *rentalService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rental.GeneratorID != nil && rental.Status.Occupying() {
		if err := s.generatorRepo.SetAvailability(ctx, *rental.GeneratorID, true); err != nil {
			return err
		}
	}
	if _, err := s.rentalRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Rental deleted", "rental_id", id, "status", rental.Status)
	return nil
}

func (s *rentalService) ToggleGeneratorInService(ctx context.Context, generatorID int32) (*domain.Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generator, err := s.generatorRepo.ToggleInService(ctx, generatorID)
	if err != nil {
		return nil, err
	}
	logger.Info("Generator service flag toggled", "generator_id", generator.ID, "in_service", generator.InService)
	return generator, nil
}

func validateCreateInput(input CreateRentalInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrInvalidInput)
	}
	if !input.DeliveryType.Valid() {
		return fmt.Errorf("%w: delivery type must be %q or %q", domain.ErrInvalidInput, domain.DeliveryTypeDelivery, domain.DeliveryTypePickup)
	}
	if input.DeliveryType == domain.DeliveryTypeDelivery && strings.TrimSpace(input.Address) == "" {
		return fmt.Errorf("%w: address is required for delivery", domain.ErrInvalidInput)
	}
	if _, err := utils.ParseDate(input.StartDate); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := utils.ParseDate(input.EndDate); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
