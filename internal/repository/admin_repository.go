package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/careerdesk/job-portal/internal/model"
)

// AdminRepo persists admin accounts in the 'admin_table' table.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Create inserts an admin and returns its ID.  The password must already be
// hashed by the caller.  An empty email is stored as NULL so it does not
// collide with the unique constraint.
func (r *AdminRepo) Create(ctx context.Context, username, email, passwordHash string) (uint64, error) {
	username = strings.TrimSpace(username)
	var mail sql.NullString
	if e := strings.TrimSpace(email); e != "" {
		mail = sql.NullString{String: e, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admin_table (created, email, username, password) VALUES (?,?,?,?)",
		time.Now().UTC().Format("2006-01-02"), mail, username, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrAdminExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches an admin by username.  Returns ErrAdminNotFound when
// no row matches.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, created, email, username, password, token, expiry FROM admin_table WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Created, &a.Email, &a.Username, &a.Password, &a.Token, &a.Expiry)
	if err == sql.ErrNoRows {
		return model.Admin{}, ErrAdminNotFound
	}
	return a, err
}

// StoreToken overwrites the admin's recorded session token and its absolute
// expiry.  The previous values are lost; the row keeps only the latest
// issued session.
func (r *AdminRepo) StoreToken(ctx context.Context, username, token string, expiry time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE admin_table SET token=?, expiry=? WHERE username=?",
		token, expiry, username)
	return err
}
