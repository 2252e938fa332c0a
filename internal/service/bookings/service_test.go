package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larosee/salon-booking-service/internal/domain"
	bookingRepo "github.com/larosee/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/larosee/salon-booking-service/internal/infra/storage/staff"
	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
	"github.com/larosee/salon-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	byID     map[string]*domain.Booking
	updated  map[string]domain.BookingStatus
	assigned map[string]*string
	deleted  []string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	byID := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}
	return &fakeBookingRepo{
		byID:     byID,
		updated:  map[string]domain.BookingStatus{},
		assigned: map[string]*string{},
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.DateKey == filter.DateKey {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByClientPhone(_ context.Context, phone string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.ClientPhone == phone {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updated[id] = status
	return nil
}

func (f *fakeBookingRepo) UpdateProfessional(_ context.Context, id string, professionalID *string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.assigned[id] = professionalID
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStaffRepo struct {
	members map[string]*domain.TeamMember
}

func (f *fakeStaffRepo) GetMemberByID(_ context.Context, id string) (*domain.TeamMember, error) {
	if m, ok := f.members[id]; ok {
		return m, nil
	}
	return nil, staffRepo.ErrMemberNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Ana García",
		ClientPhone: "600111222",
		ServiceID:   "cut",
		DateKey:     "2026-04-21",
		StartTime:   "10:00",
		Status:      domain.StatusPending,
	}
}

func newService(bookings *fakeBookingRepo, staff *fakeStaffRepo) *Service {
	if staff == nil {
		staff = &fakeStaffRepo{members: map[string]*domain.TeamMember{}}
	}
	return NewService(bookings, staff, noopLogger{})
}

func TestGetByID(t *testing.T) {
	svc := newService(newFakeBookingRepo(pendingBooking("b1")), nil)

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1"))
	svc := newService(repo, nil)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "b1",
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updated["b1"])
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1"))
	svc := newService(repo, nil)

	// pending -> attended запрещен, сначала нужен confirmed
	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "b1",
		Status:    "attended",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updated)
}

func TestUpdateStatusTerminalImmutable(t *testing.T) {
	absent := pendingBooking("b1")
	absent.Status = domain.StatusAbsent
	repo := newFakeBookingRepo(absent)
	svc := newService(repo, nil)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "b1",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newService(newFakeBookingRepo(pendingBooking("b1")), nil)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "b1",
		Status:    "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAssignProfessional(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1"))
	staff := &fakeStaffRepo{members: map[string]*domain.TeamMember{
		"ana": {ID: "ana", Name: "Ana"},
	}}
	svc := newService(repo, staff)

	resp, err := svc.AssignProfessional(context.Background(), &models.AssignProfessionalRequest{
		BookingID:      "b1",
		ProfessionalID: ptr.Ptr("ana"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ProfessionalID)
	assert.Equal(t, "ana", *resp.ProfessionalID)

	// Несуществующий мастер отклоняется до записи
	_, err = svc.AssignProfessional(context.Background(), &models.AssignProfessionalRequest{
		BookingID:      "b1",
		ProfessionalID: ptr.Ptr("ghost"),
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestAssignProfessionalUnassign(t *testing.T) {
	booked := pendingBooking("b1")
	booked.ProfessionalID = ptr.Ptr("ana")
	repo := newFakeBookingRepo(booked)
	svc := newService(repo, nil)

	resp, err := svc.AssignProfessional(context.Background(), &models.AssignProfessionalRequest{
		BookingID:      "b1",
		ProfessionalID: nil,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ProfessionalID)
}

func TestGetDayBookings(t *testing.T) {
	other := pendingBooking("b2")
	other.DateKey = "2026-04-22"
	svc := newService(newFakeBookingRepo(pendingBooking("b1"), other), nil)

	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		DateKey: "2026-04-21",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
}

func TestGetDayBookingsOrderedByStartTime(t *testing.T) {
	early := pendingBooking("b-early")
	early.StartTime = "09:30"
	late := pendingBooking("b-late")
	late.StartTime = "16:00"
	noon := pendingBooking("b-noon")
	noon.StartTime = "12:00"

	svc := newService(newFakeBookingRepo(late, early, noon), nil)

	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		DateKey: "2026-04-21",
	})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "b-early", resp.Bookings[0].ID)
	assert.Equal(t, "b-noon", resp.Bookings[1].ID)
	assert.Equal(t, "b-late", resp.Bookings[2].ID)
}

func TestGetDayBookingsInvalidStatusFilter(t *testing.T) {
	svc := newService(newFakeBookingRepo(), nil)

	_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		DateKey: "2026-04-21",
		Status:  ptr.Ptr("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClientBookings(t *testing.T) {
	svc := newService(newFakeBookingRepo(pendingBooking("b1")), nil)

	resp, err := svc.GetClientBookings(context.Background(), "600111222")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetClientBookings(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1"))
	svc := newService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), "b1"))
	assert.Equal(t, []string{"b1"}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrBookingNotFound)
}
