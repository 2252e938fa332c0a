package remove_professional_block

import "context"

type CatalogService interface {
	RemoveProfessionalBlock(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
