package staff

import "errors"

var (
	// ErrMemberNotFound возвращается, когда мастер не найден
	ErrMemberNotFound = errors.New("staff.repository: team member not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("staff.repository: professional block not found")

	// ErrBlockedDateNotFound возвращается, когда общесалонная блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("staff.repository: blocked date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
