package domain

import "time"

// Service represents a salon service from the catalog
type Service struct {
	ID   string
	Name string

	// Duration свободный текст, введённый оператором ("60 min", "1h 30min", "45").
	// Парсится в минуты при каждом чтении; парсинг обязан быть стабильным.
	Duration string

	Price    float64
	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceIndex индекс услуг по ID для разрешения снимков бронирований
type ServiceIndex map[string]*Service

// BuildServiceIndex строит индекс услуг по ID
func BuildServiceIndex(services []*Service) ServiceIndex {
	index := make(ServiceIndex, len(services))
	for _, s := range services {
		index[s.ID] = s
	}
	return index
}
