package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Language язык сообщения подтверждения
type Language string

const (
	LangES Language = "es"
	LangEN Language = "en"
)

var monthsES = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthsEN = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BookingInfo данные бронирования для сообщения подтверждения
type BookingInfo struct {
	ServiceName string
	DateKey     string // YYYY-MM-DD
	Time        string // HH:MM
	ClientName  string
}

const templateES = `Hola! Me gustaría confirmar un turno:

🗓 *Servicio:* %s
📅 *Fecha:* %s
⏰ *Hora:* %s
👤 *Nombre:* %s

Espero confirmación. Gracias!`

const templateEN = `Hi! I'd like to confirm a booking:

🗓 *Service:* %s
📅 *Date:* %s
⏰ *Time:* %s
👤 *Name:* %s

I look forward to your confirmation. Thanks!`

// Link строит ссылку wa.me с предзаполненным сообщением подтверждения.
// Телефон очищается до цифр; некорректный dateKey подставляется как есть.
func Link(phone string, info BookingInfo, lang Language) string {
	template := templateES
	if lang == LangEN {
		template = templateEN
	}

	message := fmt.Sprintf(template, info.ServiceName, FormatDate(info.DateKey, lang), info.Time, info.ClientName)

	return fmt.Sprintf("https://wa.me/%s?text=%s", cleanPhone(phone), url.QueryEscape(message))
}

// FormatDate форматирует dateKey (YYYY-MM-DD) в человекочитаемую дату:
// "29 de Diciembre" для испанского, "December 29" для английского
func FormatDate(dateKey string, lang Language) string {
	parts := strings.Split(dateKey, "-")
	if len(parts) != 3 {
		return dateKey
	}
	month, err1 := strconv.Atoi(parts[1])
	day, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return dateKey
	}

	if lang == LangEN {
		return fmt.Sprintf("%s %d", monthsEN[month-1], day)
	}
	return fmt.Sprintf("%d de %s", day, monthsES[month-1])
}

func cleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
