package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "29 de Diciembre", FormatDate("2026-12-29", LangES))
	assert.Equal(t, "December 29", FormatDate("2026-12-29", LangEN))
	assert.Equal(t, "1 de Enero", FormatDate("2027-01-01", LangES))

	// Нечитаемые ключи возвращаются как есть
	assert.Equal(t, "not-a-date-at-all", FormatDate("not-a-date-at-all", LangES))
	assert.Equal(t, "2026-13-01", FormatDate("2026-13-01", LangES))
}

func TestLinkStripsPhoneToDigits(t *testing.T) {
	info := BookingInfo{ServiceName: "Corte", DateKey: "2026-04-21", Time: "10:00", ClientName: "Ana"}

	link := Link("+34 617 58 68 56", info, LangES)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/34617586856?text="), link)
}

func TestLinkMessageContent(t *testing.T) {
	info := BookingInfo{ServiceName: "Corte", DateKey: "2026-04-21", Time: "10:00", ClientName: "Ana García"}

	link := Link("34617586856", info, LangES)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "Corte")
	assert.Contains(t, message, "21 de Abril")
	assert.Contains(t, message, "10:00")
	assert.Contains(t, message, "Ana García")
	assert.Contains(t, message, "confirmar un turno")
}

func TestLinkEnglishTemplate(t *testing.T) {
	info := BookingInfo{ServiceName: "Haircut", DateKey: "2026-04-21", Time: "10:00", ClientName: "Ana"}

	link := Link("34617586856", info, LangEN)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "April 21")
	assert.Contains(t, message, "confirm a booking")
}
