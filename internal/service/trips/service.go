package trips

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	tripRepo "github.com/m04kA/SMC-MotoAgenda/internal/infra/storage/trip"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

// Service сервис для работы с поездками между филиалами
type Service struct {
	tripRepo TripRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса поездок
func NewService(tripRepo TripRepository, logger Logger) *Service {
	return &Service{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// GetByID получает поездку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.TripResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("GetByID: trip id=%s not found", id)
			return nil, ErrTripNotFound
		}
		s.logger.Error("GetByID: repository error for trip id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrip(trip), nil
}

// List получает поездки, сгруппированные по пункту назначения, со счетчиками
func (s *Service) List(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
	var status *domain.TripStatus
	if req != nil && req.Status != nil {
		parsed, err := domain.ParseTripStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	items, err := s.tripRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	groups := GroupTripsByDestination(items)

	resp := &models.TripListResponse{
		Groups: make([]models.TripGroupResponse, 0, len(groups)),
	}
	for _, group := range groups {
		pending, completed := CountTrips(group.Trips)
		resp.Groups = append(resp.Groups, models.TripGroupResponse{
			Destination: group.Destination,
			Trips:       models.FromDomainTripList(group.Trips),
			Counts:      models.Counts{Pending: pending, Completed: completed, Total: len(group.Trips)},
		})
	}

	pending, completed := CountTrips(items)
	resp.Counts = models.Counts{Pending: pending, Completed: completed, Total: len(items)}

	s.logger.Info("List: fetched %d trips in %d destinations (%d pending)", len(items), len(groups), pending)
	return resp, nil
}

// UpdateStatus переводит поездку в указанный статус (pending <-> completed)
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	if req == nil {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	s.logger.Info("UpdateStatus: updating trip id=%s to status=%s", id, req.Status)

	status, err := domain.ParseTripStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for trip id=%s", req.Status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.tripRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("UpdateStatus: trip id=%s not found", id)
			return ErrTripNotFound
		}
		s.logger.Error("UpdateStatus: repository error for trip id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: trip id=%s is now %s", id, status)
	return nil
}

// Delete удаляет поездку
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting trip id=%s", id)

	if err := s.tripRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("Delete: trip id=%s not found", id)
			return ErrTripNotFound
		}
		s.logger.Error("Delete: repository error for trip id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: trip id=%s deleted", id)
	return nil
}
