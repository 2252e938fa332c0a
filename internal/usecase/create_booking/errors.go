package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrPastDate возвращается при попытке бронирования на прошедшую дату
	ErrPastDate = errors.New("create_booking: date is in the past")

	// ErrClosedDay возвращается, когда выбранная дата стала нерабочей
	// (выходной или праздник) к моменту отправки - защита от устаревшего
	// состояния клиента между выбором слота и подтверждением
	ErrClosedDay = errors.New("create_booking: salon is closed on this date")

	// ErrDateBlocked возвращается, когда дата заблокирована администратором
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrOutsideWorkingHours возвращается, когда услуга выходит за часы работы
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrNoCapacity возвращается, когда вместимость исчерпана на момент
	// коммита - повторная проверка внутри транзакции не прошла
	ErrNoCapacity = errors.New("create_booking: no capacity for requested slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
