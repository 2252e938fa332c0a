package models

import (
	"time"

	"github.com/larosee/salon-booking-service/internal/domain"
)

// ServiceResponse представление услуги каталога для API
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// TeamMemberResponse представление мастера для API
type TeamMemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TeamListResponse список мастеров салона
type TeamListResponse struct {
	Team []*TeamMemberResponse `json:"team"`
}

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Name string `json:"name"`

	// Duration свободный текст ("60 min", "1h 30min", "45"), как вводит оператор
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// UpdateServiceRequest запрос на изменение услуги каталога
type UpdateServiceRequest struct {
	ID       string  `json:"-"`
	Name     string  `json:"name"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// AddBlockRequest запрос на блокировку мастера на целый день
type AddBlockRequest struct {
	ProfessionalID string `json:"professional_id"`
	Date           string `json:"date"` // YYYY-MM-DD
}

// BlockResponse представление блокировки мастера для API
type BlockResponse struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// BlockListResponse список блокировок на день
type BlockListResponse struct {
	Blocks []*BlockResponse `json:"blocks"`
}

// AddBlockedDateRequest запрос на общесалонную блокировку даты
type AddBlockedDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// BlockedDateResponse представление общесалонной блокировки для API
type BlockedDateResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// BlockedDateListResponse список общесалонных заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []*BlockedDateResponse `json:"blocked_dates"`
}

// FromDomainService конвертирует доменную услугу в представление API
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.Duration,
		Price:    s.Price,
		Category: s.Category,
	}
}

// FromDomainServiceList конвертирует список доменных услуг в представление API
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]*ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}

// FromDomainTeamMember конвертирует доменного мастера в представление API
func FromDomainTeamMember(m *domain.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:   m.ID,
		Name: m.Name,
		Role: m.Role,
	}
}

// FromDomainTeamList конвертирует список мастеров в представление API
func FromDomainTeamList(team []*domain.TeamMember) *TeamListResponse {
	resp := &TeamListResponse{Team: make([]*TeamMemberResponse, 0, len(team))}
	for _, m := range team {
		resp.Team = append(resp.Team, FromDomainTeamMember(m))
	}
	return resp
}

// FromDomainBlock конвертирует доменную блокировку в представление API
func FromDomainBlock(b *domain.ProfessionalBlock) *BlockResponse {
	return &BlockResponse{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.DateKey,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список блокировок в представление API
func FromDomainBlockList(blocks []*domain.ProfessionalBlock) *BlockListResponse {
	resp := &BlockListResponse{Blocks: make([]*BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, FromDomainBlock(b))
	}
	return resp
}

// FromDomainBlockedDate конвертирует общесалонную блокировку в представление API
func FromDomainBlockedDate(d *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        d.ID,
		Date:      d.DateKey,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainBlockedDateList конвертирует список общесалонных блокировок в представление API
func FromDomainBlockedDateList(dates []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{BlockedDates: make([]*BlockedDateResponse, 0, len(dates))}
	for _, d := range dates {
		resp.BlockedDates = append(resp.BlockedDates, FromDomainBlockedDate(d))
	}
	return resp
}
