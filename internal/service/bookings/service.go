package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	bookingRepo "github.com/larosee/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/larosee/salon-booking-service/internal/infra/storage/staff"
	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
	"github.com/larosee/salon-booking-service/pkg/ptr"
)

// Service сервис back-office операций с бронированиями:
// просмотр расписания дня, переводы статусов, ручное назначение мастера
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetDayBookings получает расписание дня с фильтрацией по статусу и мастеру
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayBookings: date=%s", req.DateKey)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDayBookings: invalid status filter for date=%s", req.DateKey)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.DateKey, err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	// Расписание дня всегда отдается по возрастанию времени начала,
	// независимо от порядка, в котором хранилище вернуло строки
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})

	s.logger.Info("GetDayBookings: fetched %d bookings for date=%s", len(bookings), req.DateKey)
	return models.FromDomainBookingList(bookings), nil
}

// GetClientBookings получает историю бронирований клиента по телефону
func (s *Service) GetClientBookings(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: phone=%s", phone)

	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус с проверкой допустимости
// перехода: pending -> confirmed | absent, confirmed -> attended | absent.
// Терминальные статусы не меняются.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, status=%s", req.BookingID, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s",
			booking.Status, status, req.BookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status
	s.logger.Info("UpdateStatus: booking id=%s updated to %s", req.BookingID, status)
	return models.FromDomainBooking(booking), nil
}

// AssignProfessional вручную назначает мастера бронированию.
// Используется персоналом для бронирований, созданных без назначения.
func (s *Service) AssignProfessional(ctx context.Context, req *models.AssignProfessionalRequest) (*models.BookingResponse, error) {
	s.logger.Info("AssignProfessional: booking id=%s, professional=%q", req.BookingID, ptr.Deref(req.ProfessionalID))

	// Проверяем, что мастер существует (если назначение не снимается)
	if req.ProfessionalID != nil {
		if _, err := s.staffRepo.GetMemberByID(ctx, *req.ProfessionalID); err != nil {
			if errors.Is(err, staffRepo.ErrMemberNotFound) {
				s.logger.Warn("AssignProfessional: professional id=%s not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			s.logger.Error("AssignProfessional: staff repository error: %v", err)
			return nil, fmt.Errorf("%w: AssignProfessional - repository error: %v", ErrInternal, err)
		}
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: AssignProfessional - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdateProfessional(ctx, req.BookingID, req.ProfessionalID); err != nil {
		s.logger.Error("AssignProfessional: failed to update booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: AssignProfessional - repository error: %v", ErrInternal, err)
	}

	booking.ProfessionalID = req.ProfessionalID
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование. Явное административное действие вне
// основного потока записи.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}
