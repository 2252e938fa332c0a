package assign_professional

// AssignProfessionalRequest HTTP request model.
// Null professionalId снимает назначение мастера.
type AssignProfessionalRequest struct {
	ProfessionalID *string `json:"professionalId"`
}
