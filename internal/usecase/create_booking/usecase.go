package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/larosee/salon-booking-service/internal/availability"
	"github.com/larosee/salon-booking-service/internal/config"
	"github.com/larosee/salon-booking-service/internal/domain"
	catalogRepo "github.com/larosee/salon-booking-service/internal/infra/storage/catalog"
	"github.com/larosee/salon-booking-service/internal/schedule"
	"github.com/larosee/salon-booking-service/pkg/whatsapp"
)

// UseCase use case создания бронирования: оркестратор отправки заявки.
// Повторно валидирует нерабочие дни, повторяет проверку вместимости внутри
// сериализуемой транзакции и назначает мастера случайным образом из
// допустимого пула.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	staffRepo   StaffRepository
	txManager   TransactionManager
	calendar    *schedule.Calendar
	salon       config.SalonConfig

	timeProvider TimeProvider
	// randIndex инъецируемый источник случайного выбора мастера;
	// подменяется в тестах для детерминизма
	randIndex func(n int) int

	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	calendar *schedule.Calendar,
	salon config.SalonConfig,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		staffRepo:    staffRepo,
		txManager:    txManager,
		calendar:     calendar,
		salon:        salon,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Состояния заявки: collecting -> validating -> resolving -> committed | rejected.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, service=%s, date=%s, time=%s",
		req.ClientName, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Дата привязывается к часовому поясу салона при разборе
	date, err := uc.calendar.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	dateKey := uc.calendar.DateKey(date)

	// 3. Повторная проверка даты на момент отправки: набор рабочих дней мог
	// измениться между выбором слота в календаре и подтверждением
	if uc.calendar.IsPast(date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", dateKey)
		return nil, ErrPastDate
	}
	if uc.calendar.IsClosedDay(date) {
		uc.logger.Warn("CreateBooking: salon closed on %s", dateKey)
		uc.metrics.IncBookingRejected("closed_day")
		return nil, ErrClosedDay
	}

	// 4. Заблокированные администратором даты
	blocked, err := uc.staffRepo.IsDateBlocked(ctx, dateKey)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check blocked date %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateBooking: date %s is blocked", dateKey)
		uc.metrics.IncBookingRejected("blocked_date")
		return nil, ErrDateBlocked
	}

	// 5. Получаем услугу и её длительность
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	duration := schedule.DurationOrDefault(service.Duration, uc.salon.DefaultServiceDurationMinutes)

	// 6. Услуга должна целиком помещаться в часы работы
	if startMinutes < uc.calendar.OpeningMinutes() || startMinutes+duration > uc.calendar.ClosingMinutes() {
		uc.logger.Warn("CreateBooking: slot %s (+%d min) outside working hours", req.StartTime, duration)
		uc.metrics.IncBookingRejected("outside_hours")
		return nil, ErrOutsideWorkingHours
	}

	availReq := availability.Request{
		DateKey:         dateKey,
		StartMinutes:    startMinutes,
		DurationMinutes: duration,
	}

	var result *domain.Booking

	// 7. Разрешение мастера и вставка выполняются в одной сериализуемой
	// транзакции: повторная проверка вместимости видит свежий срез дневных
	// бронирований (FOR UPDATE), и коммит отклоняется, если вместимость
	// исчезла между показом календаря и подтверждением
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		team, err := uc.staffRepo.ListTeam(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list team: %v", ErrInternal, err)
		}

		blocks, err := uc.staffRepo.ListBlocksByDate(txCtx, dateKey)
		if err != nil {
			return fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetByDate(txCtx, domain.DayBookingsFilter{DateKey: dateKey})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		services, err := uc.catalogRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}
		durationOf := availability.NewDurationResolver(
			domain.BuildServiceIndex(services),
			uc.salon.DefaultServiceDurationMinutes,
		)

		// Повторная проверка вместимости на свежих данных
		if !availability.HasCapacity(
			availReq,
			uc.calendar.ClosingMinutes(),
			uc.salon.CapacityStepMinutes,
			team, blocks, bookings, durationOf,
		) {
			uc.logger.Warn("CreateBooking: capacity exhausted for %s %s", dateKey, req.StartTime)
			return ErrNoCapacity
		}

		professionalID := availability.ResolveProfessional(
			availReq,
			team, blocks, bookings, durationOf,
			uc.salon.FallbackToDayPool,
			uc.randIndex,
		)
		if professionalID == nil {
			uc.logger.Warn("CreateBooking: no professional available for %s %s, booking unassigned",
				dateKey, req.StartTime)
		}

		booking := &domain.Booking{
			ID:             uuid.NewString(),
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ServiceID:      req.ServiceID,
			DateKey:        dateKey,
			StartTime:      req.StartTime,
			Status:         domain.StatusPending,
			ProfessionalID: professionalID,
			// Денормализация снимка услуги
			ServiceName:   service.Name,
			Price:         service.Price,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNoCapacity) {
			uc.metrics.IncBookingRejected("no_capacity")
		}
		return nil, err
	}

	assignment := "assigned"
	if result.ProfessionalID == nil {
		assignment = "unassigned"
	}
	uc.metrics.IncBookingCreated(assignment)

	uc.logger.Info("CreateBooking: successfully created booking id=%s (%s)", result.ID, assignment)

	return uc.buildResponse(result, req.Language), nil
}

// buildResponse собирает ответ и ссылку подтверждения WhatsApp.
// Генерация ссылки - fire-and-forget побочный эффект после коммита:
// её неуспех не влияет на созданное бронирование.
func (uc *UseCase) buildResponse(b *domain.Booking, lang whatsapp.Language) *Response {
	dateTime, err := uc.calendar.ComposeDateTime(b.DateKey, b.StartTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compose date-time for booking id=%s: %v", b.ID, err)
	}

	link := whatsapp.Link(uc.salon.BusinessPhone, whatsapp.BookingInfo{
		ServiceName: b.ServiceName,
		DateKey:     b.DateKey,
		Time:        b.StartTime.String(),
		ClientName:  b.ClientName,
	}, lang)

	return &Response{
		ID:             b.ID,
		ClientName:     b.ClientName,
		ClientPhone:    b.ClientPhone,
		ServiceID:      b.ServiceID,
		DateKey:        b.DateKey,
		DateTime:       dateTime,
		StartTime:      b.StartTime,
		Status:         string(b.Status),
		ProfessionalID: b.ProfessionalID,
		ServiceName:    b.ServiceName,
		Price:          b.Price,
		PaymentMethod:  string(b.PaymentMethod),
		WhatsAppLink:   link,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
