package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/larosee/salon-booking-service/internal/availability"
	"github.com/larosee/salon-booking-service/internal/config"
	"github.com/larosee/salon-booking-service/internal/domain"
	catalogRepo "github.com/larosee/salon-booking-service/internal/infra/storage/catalog"
	"github.com/larosee/salon-booking-service/internal/schedule"
)

// UseCase use case получения сетки слотов дня с доступностью.
// Это грубая дневная предварительная проверка: окончательное решение
// принимает usecase создания бронирования внутри транзакции.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	staffRepo    StaffRepository
	calendar     *schedule.Calendar
	salon        config.SalonConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	calendar *schedule.Calendar,
	salon config.SalonConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		staffRepo:    staffRepo,
		calendar:     calendar,
		salon:        salon,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Дата привязывается к часовому поясу салона при разборе
	date, err := uc.calendar.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}
	dateKey := uc.calendar.DateKey(date)

	now := uc.timeProvider.Now()

	// 2. Прошедшие, нерабочие и заблокированные дни отдают пустую сетку -
	// это не ошибка, календарь просто показывает день закрытым
	if uc.calendar.IsPast(date, now) || uc.calendar.IsClosedDay(date) {
		return uc.closedResponse(dateKey, req.ServiceID), nil
	}

	blocked, err := uc.staffRepo.IsDateBlocked(ctx, dateKey)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check blocked date %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		return uc.closedResponse(dateKey, req.ServiceID), nil
	}

	// 3. Получаем услугу и её длительность
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := schedule.DurationOrDefault(service.Duration, uc.salon.DefaultServiceDurationMinutes)

	// 4. Один согласованный срез данных на весь проход по сетке
	team, err := uc.staffRepo.ListTeam(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list team: %v", err)
		return nil, fmt.Errorf("%w: failed to list team: %v", ErrInternal, err)
	}

	blocks, err := uc.staffRepo.ListBlocksByDate(ctx, dateKey)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.DayBookingsFilter{DateKey: dateKey})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	durationOf := availability.NewDurationResolver(
		domain.BuildServiceIndex(services),
		uc.salon.DefaultServiceDurationMinutes,
	)

	// 5. Сетка генерируется заново при каждом вызове и аннотируется
	// проверкой вместимости на длительность выбранной услуги
	grid := uc.calendar.SlotsForDay(date)
	slots := make([]Slot, 0, len(grid))

	for _, start := range grid {
		startMinutes, err := start.Minutes()
		if err != nil {
			continue
		}

		availReq := availability.Request{
			DateKey:         dateKey,
			StartMinutes:    startMinutes,
			DurationMinutes: duration,
		}

		slots = append(slots, Slot{
			StartTime: start,
			Available: availability.HasCapacity(
				availReq,
				uc.calendar.ClosingMinutes(),
				uc.salon.CapacityStepMinutes,
				team, blocks, bookings, durationOf,
			),
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(slots), req.ServiceID, dateKey)

	return &Response{
		DateKey:   dateKey,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

func (uc *UseCase) closedResponse(dateKey, serviceID string) *Response {
	return &Response{
		DateKey:   dateKey,
		ServiceID: serviceID,
		Closed:    true,
		Slots:     []Slot{},
	}
}
