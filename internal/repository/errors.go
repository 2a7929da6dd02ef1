// Package repository contains the data access layer.  Each repository wraps
// a *sql.DB and exposes context-aware CRUD methods.  Sentinel errors defined
// here let handlers map storage outcomes onto HTTP status codes without
// inspecting driver-specific error strings.
package repository

import "errors"

// ErrAdminNotFound indicates that no admin row matched the given username.
var ErrAdminNotFound = errors.New("admin not found")

// ErrAdminExists indicates a username or email uniqueness violation.
var ErrAdminExists = errors.New("username or email already exists")

// ErrListingNotFound indicates that a listing was not located in the DB.
var ErrListingNotFound = errors.New("listing not found")
