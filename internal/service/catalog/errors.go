package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrMemberNotFound возвращается, когда мастер не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("professional block not found")

	// ErrBlockedDateNotFound возвращается, когда общесалонная блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
