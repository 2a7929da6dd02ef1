package repository

import (
	"context"
	"database/sql"

	"github.com/careerdesk/job-portal/internal/model"
)

// listingCols is the column list shared by every listing SELECT so that
// scanListing stays in sync with the queries.
const listingCols = "id, location, companyName, designation, description, image, created, deadline, applicationLink, salary, batch"

// ListingRepo persists job listings in the 'details' table.
type ListingRepo struct{ DB *sql.DB }

func NewListingRepo(db *sql.DB) *ListingRepo { return &ListingRepo{DB: db} }

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(s rowScanner) (model.Listing, error) {
	var (
		l        model.Listing
		deadline sql.NullTime
	)
	err := s.Scan(&l.ID, &l.Location, &l.CompanyName, &l.Designation, &l.Description,
		&l.Image, &l.Created, &deadline, &l.ApplicationLink, &l.Salary, &l.Batch)
	if err != nil {
		return model.Listing{}, err
	}
	if deadline.Valid {
		d := deadline.Time
		l.Deadline = &d
	}
	return l, nil
}

// ListAll returns every listing in store iteration order.  Visibility
// filtering is the caller's concern; expired listings are included here.
func (r *ListingRepo) ListAll(ctx context.Context) ([]model.Listing, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+listingCols+" FROM details")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetByID retrieves a listing by its ID.  Returns ErrListingNotFound when
// there is no matching row.
func (r *ListingRepo) GetByID(ctx context.Context, id uint64) (model.Listing, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+listingCols+" FROM details WHERE id=? LIMIT 1", id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return model.Listing{}, ErrListingNotFound
	}
	return l, err
}

// Create inserts a new listing and assigns the generated ID back to the
// struct.  Defaulting of deadline and salary happens before this call.
func (r *ListingRepo) Create(ctx context.Context, l *model.Listing) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO details (location, companyName, designation, description, image, created, deadline, applicationLink, salary, batch) VALUES (?,?,?,?,?,?,?,?,?,?)",
		l.Location, l.CompanyName, l.Designation, l.Description, l.Image,
		l.Created, deadlineArg(l), l.ApplicationLink, l.Salary, l.Batch)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// Update overwrites every mutable field of an existing listing.  This is a
// full replace, not a partial patch.
func (r *ListingRepo) Update(ctx context.Context, l *model.Listing) error {
	// Existence is the caller's concern; zero affected rows here can also
	// mean an identical overwrite.
	_, err := r.DB.ExecContext(ctx,
		"UPDATE details SET location=?, companyName=?, designation=?, description=?, image=?, created=?, deadline=?, applicationLink=?, salary=?, batch=? WHERE id=?",
		l.Location, l.CompanyName, l.Designation, l.Description, l.Image,
		l.Created, deadlineArg(l), l.ApplicationLink, l.Salary, l.Batch, l.ID)
	return err
}

func deadlineArg(l *model.Listing) interface{} {
	if l.Deadline == nil {
		return nil
	}
	return *l.Deadline
}
