package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larosee/salon-booking-service/internal/domain"
	catalogRepo "github.com/larosee/salon-booking-service/internal/infra/storage/catalog"
	staffRepo "github.com/larosee/salon-booking-service/internal/infra/storage/staff"
	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

type fakeCatalogRepo struct {
	byID    map[string]*domain.Service
	deleted []string
}

func newFakeCatalogRepo(services ...*domain.Service) *fakeCatalogRepo {
	byID := make(map[string]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return &fakeCatalogRepo{byID: byID}
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if svc, ok := f.byID[id]; ok {
		copied := *svc
		return &copied, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.byID))
	for _, svc := range f.byID {
		result = append(result, svc)
	}
	return result, nil
}

func (f *fakeCatalogRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.byID[svc.ID] = svc
	return svc, nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if _, ok := f.byID[svc.ID]; !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	f.byID[svc.ID] = svc
	return svc, nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStaffRepo struct {
	members      map[string]*domain.TeamMember
	blocks       map[string]*domain.ProfessionalBlock
	blockedDates map[string]*domain.BlockedDate
}

func newFakeStaffRepo(members ...*domain.TeamMember) *fakeStaffRepo {
	byID := make(map[string]*domain.TeamMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return &fakeStaffRepo{
		members:      byID,
		blocks:       map[string]*domain.ProfessionalBlock{},
		blockedDates: map[string]*domain.BlockedDate{},
	}
}

func (f *fakeStaffRepo) ListTeam(_ context.Context) ([]*domain.TeamMember, error) {
	result := make([]*domain.TeamMember, 0, len(f.members))
	for _, m := range f.members {
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeStaffRepo) GetMemberByID(_ context.Context, id string) (*domain.TeamMember, error) {
	if m, ok := f.members[id]; ok {
		return m, nil
	}
	return nil, staffRepo.ErrMemberNotFound
}

func (f *fakeStaffRepo) ListBlocksByDate(_ context.Context, dateKey string) ([]*domain.ProfessionalBlock, error) {
	result := make([]*domain.ProfessionalBlock, 0)
	for _, b := range f.blocks {
		if b.DateKey == dateKey {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeStaffRepo) AddBlock(_ context.Context, block *domain.ProfessionalBlock) (*domain.ProfessionalBlock, error) {
	f.blocks[block.ID] = block
	return block, nil
}

func (f *fakeStaffRepo) RemoveBlock(_ context.Context, id string) error {
	if _, ok := f.blocks[id]; !ok {
		return staffRepo.ErrBlockNotFound
	}
	delete(f.blocks, id)
	return nil
}

func (f *fakeStaffRepo) ListBlockedDates(_ context.Context) ([]*domain.BlockedDate, error) {
	result := make([]*domain.BlockedDate, 0, len(f.blockedDates))
	for _, d := range f.blockedDates {
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeStaffRepo) AddBlockedDate(_ context.Context, date *domain.BlockedDate) (*domain.BlockedDate, error) {
	f.blockedDates[date.ID] = date
	return date, nil
}

func (f *fakeStaffRepo) RemoveBlockedDate(_ context.Context, id string) error {
	if _, ok := f.blockedDates[id]; !ok {
		return staffRepo.ErrBlockedDateNotFound
	}
	delete(f.blockedDates, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(catalog *fakeCatalogRepo, staff *fakeStaffRepo) *Service {
	return NewService(catalog, staff, noopLogger{})
}

func TestCreateService(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := newTestService(repo, newFakeStaffRepo())

	created, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:     "Corte de pelo",
		Duration: "45 min",
		Price:    25,
		Category: "hair",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Corte de pelo", created.Name)
	assert.Equal(t, "45 min", created.Duration)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corte de pelo", stored.Name)
}

func TestCreateServiceValidation(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: "Corte", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateService(t *testing.T) {
	repo := newFakeCatalogRepo(&domain.Service{ID: "svc-1", Name: "Corte", Duration: "30 min", Price: 20})
	svc := newTestService(repo, newFakeStaffRepo())

	updated, err := svc.UpdateService(context.Background(), &models.UpdateServiceRequest{
		ID:       "svc-1",
		Name:     "Corte y peinado",
		Duration: "1h",
		Price:    35,
		Category: "hair",
	})
	require.NoError(t, err)
	assert.Equal(t, "Corte y peinado", updated.Name)
	assert.Equal(t, "1h", updated.Duration)
	assert.Equal(t, 35.0, updated.Price)
}

func TestUpdateServiceNotFound(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.UpdateService(context.Background(), &models.UpdateServiceRequest{
		ID:   "missing",
		Name: "Corte",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	repo := newFakeCatalogRepo(&domain.Service{ID: "svc-1", Name: "Corte"})
	svc := newTestService(repo, newFakeStaffRepo())

	require.NoError(t, svc.DeleteService(context.Background(), "svc-1"))
	assert.Equal(t, []string{"svc-1"}, repo.deleted)

	err := svc.DeleteService(context.Background(), "svc-1")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddProfessionalBlock(t *testing.T) {
	staff := newFakeStaffRepo(&domain.TeamMember{ID: "pro-1", Name: "Ana"})
	svc := newTestService(newFakeCatalogRepo(), staff)

	block, err := svc.AddProfessionalBlock(context.Background(), &models.AddBlockRequest{
		ProfessionalID: "pro-1",
		Date:           "2026-09-14",
	})
	require.NoError(t, err)
	require.NotEmpty(t, block.ID)
	assert.Equal(t, "pro-1", block.ProfessionalID)
	assert.Equal(t, "2026-09-14", block.Date)
}

func TestAddProfessionalBlockUnknownMember(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.AddProfessionalBlock(context.Background(), &models.AddBlockRequest{
		ProfessionalID: "ghost",
		Date:           "2026-09-14",
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestAddProfessionalBlockValidation(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.AddProfessionalBlock(context.Background(), &models.AddBlockRequest{Date: "2026-09-14"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddProfessionalBlock(context.Background(), &models.AddBlockRequest{
		ProfessionalID: "pro-1",
		Date:           "14/09/2026",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBlockedDateLifecycle(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := newTestService(newFakeCatalogRepo(), staff)

	created, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{Date: "2026-12-24"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-12-24", created.Date)

	list, err := svc.ListBlockedDates(context.Background())
	require.NoError(t, err)
	require.Len(t, list.BlockedDates, 1)

	require.NoError(t, svc.RemoveBlockedDate(context.Background(), created.ID))

	err = svc.RemoveBlockedDate(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}

func TestAddBlockedDateInvalidFormat(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{Date: "24.12.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDayBlocksInvalidDate(t *testing.T) {
	svc := newTestService(newFakeCatalogRepo(), newFakeStaffRepo())

	_, err := svc.GetDayBlocks(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
