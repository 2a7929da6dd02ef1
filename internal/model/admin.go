package model

import (
	"database/sql"
	"time"
)

// Admin mirrors the `admin_table` table.  Password always holds a bcrypt
// hash, never plaintext.  Token and Expiry record the most recently issued
// session token and the moment it stops being honored; they are overwritten
// on every login, so the row carries at most one recorded session.  Token
// validation itself is stateless and never reads these columns — they are
// kept as an audit trail of the latest login.
//
// Fields:
//  ID       – primary key identifier of the admin.
//  Created  – date the account was created.
//  Email    – optional unique email address (NULL allowed).
//  Username – unique login name.
//  Password – bcrypt hash of the password.
//  Token    – last issued session token (NULL before first login).
//  Expiry   – absolute expiry of that token (NULL before first login).
type Admin struct {
	ID       uint64         // admin_table.id
	Created  time.Time      // admin_table.created
	Email    sql.NullString // admin_table.email
	Username string         // admin_table.username
	Password string         // admin_table.password
	Token    sql.NullString // admin_table.token
	Expiry   sql.NullTime   // admin_table.expiry
}
