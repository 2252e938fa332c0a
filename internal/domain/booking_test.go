package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOccupying(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusAttended} {
		b := &Booking{Status: status}
		assert.True(t, b.IsOccupying(), "status %s must occupy", status)
	}

	absent := &Booking{Status: StatusAbsent}
	assert.False(t, absent.IsOccupying())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusAbsent, true},
		{StatusPending, StatusAttended, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusAttended, true},
		{StatusConfirmed, StatusAbsent, true},
		{StatusConfirmed, StatusPending, false},
		{StatusAttended, StatusConfirmed, false},
		{StatusAttended, StatusAbsent, false},
		{StatusAbsent, StatusPending, false},
		{StatusAbsent, StatusConfirmed, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusAttended}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusAbsent}).IsTerminal())
}

func TestBlockedProfessionalIDs(t *testing.T) {
	blocks := []*ProfessionalBlock{
		{ID: "1", ProfessionalID: "a", DateKey: "2026-04-21"},
		{ID: "2", ProfessionalID: "b", DateKey: "2026-04-22"},
	}

	blocked := BlockedProfessionalIDs(blocks, "2026-04-21")
	assert.Contains(t, blocked, "a")
	assert.NotContains(t, blocked, "b")
}

func TestBuildServiceIndex(t *testing.T) {
	services := []*Service{
		{ID: "cut", Name: "Corte"},
		{ID: "color", Name: "Color"},
	}

	index := BuildServiceIndex(services)
	assert.Len(t, index, 2)
	assert.Equal(t, "Corte", index["cut"].Name)
}
