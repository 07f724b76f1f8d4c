package repository

import (
	"context"

	"github.com/globalhorizons/backend/models"
)

// ApplicationRepository defines the interface for application operations
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application) (int64, error)
	ListApplications(ctx context.Context) ([]models.Application, error)
}
