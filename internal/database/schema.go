package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/careerdesk/job-portal/internal/utils"
)

// adminTableDDL creates the admin account table.  Username and email carry
// unique constraints; password holds a bcrypt hash.  Token and expiry record
// the last issued session token for audit purposes.
const adminTableDDL = `CREATE TABLE IF NOT EXISTS admin_table (
	id INT AUTO_INCREMENT PRIMARY KEY,
	created DATE NOT NULL,
	email VARCHAR(150) NULL UNIQUE,
	username VARCHAR(100) NOT NULL UNIQUE,
	password VARCHAR(500) NOT NULL,
	token TEXT NULL,
	expiry TIMESTAMP NULL
)`

// detailsTableDDL creates the job listing table.
const detailsTableDDL = `CREATE TABLE IF NOT EXISTS details (
	id INT AUTO_INCREMENT PRIMARY KEY,
	location VARCHAR(100) NOT NULL DEFAULT '',
	companyName VARCHAR(100) NOT NULL,
	designation VARCHAR(100) NOT NULL,
	description TEXT,
	image VARCHAR(255),
	created DATE NOT NULL,
	deadline DATE NULL,
	applicationLink VARCHAR(150),
	salary VARCHAR(20),
	batch VARCHAR(25)
)`

// Migrate creates the application tables when they do not exist and seeds a
// default admin account when the admin table is empty, so a fresh deployment
// can always log in.  The seeded password is bcrypt-hashed before storing.
func Migrate(ctx context.Context, db *sql.DB, defaultUser, defaultPass string, bcryptCost int) error {
	if _, err := db.ExecContext(ctx, adminTableDDL); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, detailsTableDDL); err != nil {
		return err
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin_table").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := utils.HashPassword(defaultPass, bcryptCost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO admin_table (created, username, password) VALUES (?,?,?)",
		time.Now().UTC().Format("2006-01-02"), defaultUser, hash)
	if err != nil {
		return err
	}
	log.Printf("seeded default admin %q", defaultUser)
	return nil
}
