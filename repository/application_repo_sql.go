package repository

import (
	"context"
	"errors"

	"github.com/globalhorizons/backend/db"
	"github.com/globalhorizons/backend/models"
)

type SQLApplicationRepo struct {
	Store db.Store
}

func NewSQLApplicationRepo(store db.Store) *SQLApplicationRepo {
	return &SQLApplicationRepo{Store: store}
}

// CreateApplication inserts a new application and returns the generated id.
// The statement differs per backend: Postgres hands the id back through a
// RETURNING clause, SQLite through the write result's last insert rowid.
func (r *SQLApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) (int64, error) {
	if r.Store.Dialect() == db.Postgres {
		res, err := r.Store.Query(ctx, `
			INSERT INTO applications (name, email, phone, destination, position)
			VALUES ($1, $2, $3, $4, $5) RETURNING id
		`, app.Name, app.Email, app.Phone, app.Destination, app.Position)
		if err != nil {
			return 0, err
		}
		if len(res.Rows) == 0 {
			return 0, errors.New("insert returned no id")
		}
		return asInt64(res.Rows[0]["id"]), nil
	}

	res, err := r.Store.Query(ctx, `
		INSERT INTO applications (name, email, phone, destination, position)
		VALUES ($1, $2, $3, $4, $5)
	`, app.Name, app.Email, app.Phone, app.Destination, app.Position)
	if err != nil {
		return 0, err
	}
	return res.LastID, nil
}

// ListApplications fetches all applications, newest first
func (r *SQLApplicationRepo) ListApplications(ctx context.Context) ([]models.Application, error) {
	res, err := r.Store.Query(ctx, `
		SELECT id, name, email, phone, destination, position, status, created_at
		FROM applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}

	apps := make([]models.Application, 0, len(res.Rows))
	for _, row := range res.Rows {
		apps = append(apps, models.Application{
			ID:          asInt64(row["id"]),
			Name:        asString(row["name"]),
			Email:       asString(row["email"]),
			Phone:       asString(row["phone"]),
			Destination: asString(row["destination"]),
			Position:    asString(row["position"]),
			Status:      asString(row["status"]),
			CreatedAt:   asTime(row["created_at"]),
		})
	}
	return apps, nil
}
