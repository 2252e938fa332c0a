package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/larosee/salon-booking-service/internal/domain"
	catalogRepo "github.com/larosee/salon-booking-service/internal/infra/storage/catalog"
	staffRepo "github.com/larosee/salon-booking-service/internal/infra/storage/staff"
	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

// Service сервис каталога салона: услуги, команда мастеров
// и блокировки мастеров на день
type Service struct {
	catalogRepo CatalogRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// ListServices возвращает каталог услуг салона
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetService возвращает услугу по ID
func (s *Service) GetService(ctx context.Context, id string) (*models.ServiceResponse, error) {
	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// CreateService добавляет услугу в каталог. Duration хранится как ввёл
// оператор и парсится в минуты при каждом чтении.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	service := &domain.Service{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
		Category: req.Category,
	}

	created, err := s.catalogRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: failed to create service: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%s created", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет данные услуги каталога
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%s", req.ID)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	service := &domain.Service{
		ID:       req.ID,
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
		Category: req.Category,
	}

	updated, err := s.catalogRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", req.ID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: failed to update service id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу из каталога. Существующие бронирования
// не трогаем: на них лежит снимок имени и цены услуги.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	s.logger.Info("DeleteService: id=%s", id)

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: failed to delete service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListTeam возвращает команду мастеров салона
func (s *Service) ListTeam(ctx context.Context) (*models.TeamListResponse, error) {
	team, err := s.staffRepo.ListTeam(ctx)
	if err != nil {
		s.logger.Error("ListTeam: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTeam - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTeamList(team), nil
}

// GetDayBlocks возвращает блокировки мастеров на указанный день
func (s *Service) GetDayBlocks(ctx context.Context, dateKey string) (*models.BlockListResponse, error) {
	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	blocks, err := s.staffRepo.ListBlocksByDate(ctx, dateKey)
	if err != nil {
		s.logger.Error("GetDayBlocks: repository error for date=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: GetDayBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// AddProfessionalBlock блокирует мастера на целый день. Заблокированный
// мастер исключается из пула доступности и назначения на этот день.
func (s *Service) AddProfessionalBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("AddProfessionalBlock: professional id=%s, date=%s", req.ProfessionalID, req.Date)

	if req.ProfessionalID == "" {
		return nil, fmt.Errorf("%w: professional_id is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if _, err := s.staffRepo.GetMemberByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, staffRepo.ErrMemberNotFound) {
			s.logger.Warn("AddProfessionalBlock: professional id=%s not found", req.ProfessionalID)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("AddProfessionalBlock: staff repository error: %v", err)
		return nil, fmt.Errorf("%w: AddProfessionalBlock - repository error: %v", ErrInternal, err)
	}

	block := &domain.ProfessionalBlock{
		ID:             uuid.NewString(),
		ProfessionalID: req.ProfessionalID,
		DateKey:        req.Date,
	}

	created, err := s.staffRepo.AddBlock(ctx, block)
	if err != nil {
		s.logger.Error("AddProfessionalBlock: failed to add block: %v", err)
		return nil, fmt.Errorf("%w: AddProfessionalBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddProfessionalBlock: block id=%s created", created.ID)
	return models.FromDomainBlock(created), nil
}

// ListBlockedDates возвращает все общесалонные заблокированные даты
func (s *Service) ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	dates, err := s.staffRepo.ListBlockedDates(ctx)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(dates), nil
}

// AddBlockedDate блокирует дату целиком для всего салона: в этот день
// запись недоступна независимо от календаря и команды
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("AddBlockedDate: date=%s", req.Date)

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	date := &domain.BlockedDate{
		ID:      uuid.NewString(),
		DateKey: req.Date,
	}

	created, err := s.staffRepo.AddBlockedDate(ctx, date)
	if err != nil {
		s.logger.Error("AddBlockedDate: failed to add blocked date: %v", err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: blocked date id=%s created", created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlockedDate снимает общесалонную блокировку даты
func (s *Service) RemoveBlockedDate(ctx context.Context, id string) error {
	s.logger.Info("RemoveBlockedDate: id=%s", id)

	if err := s.staffRepo.RemoveBlockedDate(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: blocked date id=%s not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: failed to remove blocked date id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RemoveProfessionalBlock снимает блокировку мастера
func (s *Service) RemoveProfessionalBlock(ctx context.Context, id string) error {
	s.logger.Info("RemoveProfessionalBlock: block id=%s", id)

	if err := s.staffRepo.RemoveBlock(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrBlockNotFound) {
			s.logger.Warn("RemoveProfessionalBlock: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("RemoveProfessionalBlock: failed to remove block id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveProfessionalBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}
