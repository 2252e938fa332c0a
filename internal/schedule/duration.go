package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// Длительности услуг вводятся операторами свободным текстом:
// "60 min", "1h 30min", "1 hora", "45". Парсер намеренно снисходительный -
// грязные данные каталога не должны блокировать клиенту запись.
var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// ParseDuration извлекает длительность в минутах из свободного текста.
// Суммирует часовую компоненту (цифры перед h/hora) и минутную (цифры перед
// m/min). Если ни одна не нашлась, но строка целиком число - трактует его
// как минуты. Для нераспознаваемого текста возвращает 0; вызывающая сторона
// подставляет безопасный дефолт.
func ParseDuration(text string) int {
	total := 0
	matched := false

	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 60
			matched = true
		}
	}

	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			total += minutes
			matched = true
		}
	}

	if matched {
		return total
	}

	// Чисто числовая строка трактуется как минуты
	if minutes, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && minutes >= 0 {
		return minutes
	}

	return 0
}

// DurationOrDefault возвращает распарсенную длительность услуги
// или fallback, если парсинг дал 0
func DurationOrDefault(text string, fallback int) int {
	if minutes := ParseDuration(text); minutes > 0 {
		return minutes
	}
	return fallback
}
