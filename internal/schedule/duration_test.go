package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "minutes with unit", text: "60 min", want: 60},
		{name: "minutes without space", text: "45min", want: 45},
		{name: "hours and minutes", text: "1h 30min", want: 90},
		{name: "hours only", text: "2h", want: 120},
		{name: "spanish hour word", text: "1 hora", want: 60},
		{name: "spanish minutes word", text: "90 minutos", want: 90},
		{name: "bare number treated as minutes", text: "45", want: 45},
		{name: "bare number with spaces", text: "  30  ", want: 30},
		{name: "uppercase units", text: "1H 15MIN", want: 75},
		{name: "empty string", text: "", want: 0},
		{name: "garbage", text: "a mystery", want: 0},
		{name: "negative number", text: "-30", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.text))
		})
	}
}

func TestParseDurationStable(t *testing.T) {
	// Один и тот же текст всегда дает один и тот же результат
	for i := 0; i < 100; i++ {
		assert.Equal(t, 90, ParseDuration("1h 30min"))
	}
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, 60, DurationOrDefault("60 min", 30))
	assert.Equal(t, 30, DurationOrDefault("", 30))
	assert.Equal(t, 30, DurationOrDefault("garbage", 30))
}
