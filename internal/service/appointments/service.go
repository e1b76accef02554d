package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-MotoAgenda/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/appointments/models"
	"github.com/m04kA/SMC-MotoAgenda/pkg/ptr"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// Service сервис для работы с записями на выдачу
type Service struct {
	appointmentRepo AppointmentRepository
	links           LinkBuilder
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей. links может быть nil.
func NewService(
	appointmentRepo AppointmentRepository,
	links LinkBuilder,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		links:           links,
		logger:          logger,
	}
}

// GetByID получает запись по ID вместе со ссылкой WhatsApp для связи с клиентом
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAppointment(appointment)

	// Ссылка не строится для телефона без цифр, запись все равно отдаем
	if s.links != nil {
		link, err := s.links.PickupLink(appointment)
		if err != nil {
			s.logger.Warn("GetByID: no whatsapp link for appointment id=%s: %v", id, err)
		} else {
			resp.WhatsAppLink = ptr.Ptr(link)
		}
	}

	return resp, nil
}

// List получает записи в порядке отображения: сначала ожидающие, затем по дате и времени.
// Счетчики пересчитываются при каждом вызове.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentsFilter{}

	if req != nil {
		s.logger.Info("List: status=%q, date=%q", ptr.Deref(req.Status), ptr.Deref(req.Date))
	}

	if req != nil && req.Status != nil {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req != nil && req.Date != nil {
		date, err := types.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date=%s", *req.Date)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		filter.PickupDate = &date
	}

	items, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	SortAppointments(items)
	pending, delivered := CountAppointments(items)

	s.logger.Info("List: fetched %d appointments (%d pending)", len(items), pending)

	return models.FromDomainAppointmentList(items, models.Counts{
		Pending:   pending,
		Delivered: delivered,
		Total:     len(items),
	}), nil
}

// UpdateStatus переводит запись в указанный статус (pending <-> delivered)
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	if req == nil {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, status)
	return nil
}

// Delete удаляет запись, освобождая слот
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return nil
}
