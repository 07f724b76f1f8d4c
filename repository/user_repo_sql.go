package repository

import (
	"context"

	"github.com/globalhorizons/backend/db"
	"github.com/globalhorizons/backend/models"
)

type SQLUserRepo struct {
	Store db.Store
}

func NewSQLUserRepo(store db.Store) *SQLUserRepo {
	return &SQLUserRepo{Store: store}
}

// CreateUser inserts a user. Password must already be hashed; this layer
// never sees plaintext.
func (r *SQLUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	isAdmin := 0
	if user.IsAdmin {
		isAdmin = 1
	}
	_, err := r.Store.Query(ctx, `
		INSERT INTO users (username, password, is_admin)
		VALUES ($1, $2, $3)
	`, user.Username, user.Password, isAdmin)
	return err
}

// GetUserByUsername fetches a user by username; (nil, nil) when absent
func (r *SQLUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	res, err := r.Store.Query(ctx, `
		SELECT id, username, password, is_admin
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}

	row := res.Rows[0]
	return &models.User{
		ID:       asInt64(row["id"]),
		Username: asString(row["username"]),
		Password: asString(row["password"]),
		IsAdmin:  asBool(row["is_admin"]),
	}, nil
}
