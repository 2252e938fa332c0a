package domain

import "time"

// TeamMember represents a salon professional
type TeamMember struct {
	ID   string
	Name string
	Role string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfessionalBlock отметка о недоступности мастера на целый календарный день
// (отпуск, выходной). Гранулярность - только целый день.
type ProfessionalBlock struct {
	ID             string
	ProfessionalID string
	DateKey        string // YYYY-MM-DD
	CreatedAt      time.Time
}

// BlockedDate общесалонная заблокированная дата: салон не принимает
// записи на этот день целиком
type BlockedDate struct {
	ID        string
	DateKey   string // YYYY-MM-DD
	CreatedAt time.Time
}

// BlockedProfessionalIDs возвращает множество ID мастеров, заблокированных
// на указанный день
func BlockedProfessionalIDs(blocks []*ProfessionalBlock, dateKey string) map[string]struct{} {
	blocked := make(map[string]struct{})
	for _, b := range blocks {
		if b.DateKey == dateKey {
			blocked[b.ProfessionalID] = struct{}{}
		}
	}
	return blocked
}
