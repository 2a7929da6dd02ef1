// Package handler exposes HTTP handlers for both authenticated and public
// endpoints.  This file covers the job listing routes: the public feed and
// detail lookup, plus the token-guarded create and update operations.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careerdesk/job-portal/internal/model"
	"github.com/careerdesk/job-portal/internal/queue"
	"github.com/careerdesk/job-portal/internal/repository"
)

// EventPublisher pushes listing events to the message broker.  A nil
// publisher disables eventing entirely.
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, evt queue.ListingPublishedEvent) error
}

// ListingHandler bundles dependencies for listing endpoints.
type ListingHandler struct {
	Listings *repository.ListingRepo
	Events   EventPublisher
}

func NewListingHandler(l *repository.ListingRepo, ev EventPublisher) *ListingHandler {
	return &ListingHandler{Listings: l, Events: ev}
}

// ----- DTOs -----

// listingReq is the write body for /details and /update/:company_id.
// Dates travel as "YYYY-MM-DD" strings; nil means absent.
type listingReq struct {
	Location        *string `json:"location"`
	CompanyName     string  `json:"companyName"`
	Designation     string  `json:"designation"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Created         *string `json:"created"`
	Deadline        *string `json:"deadline"`
	ApplicationLink string  `json:"applicationLink"`
	Salary          *string `json:"salary"`
	Batch           *string `json:"batch"`
}

// listingSummary is one element of the public feed.
type listingSummary struct {
	ID              uint64  `json:"id"`
	CompanyName     string  `json:"companyName"`
	Designation     string  `json:"designation"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Salary          string  `json:"salary"`
	Deadline        *string `json:"deadline"`
	Batch           string  `json:"batch"`
	ApplicationLink string  `json:"applicationLink"`
}

// listingDetail is the full representation returned by single-listing routes.
type listingDetail struct {
	CompanyName     string  `json:"companyName"`
	Designation     string  `json:"designation"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Created         string  `json:"created"`
	Deadline        *string `json:"deadline"`
	ApplicationLink string  `json:"applicationLink"`
	Salary          string  `json:"salary"`
	Batch           string  `json:"batch"`
	Location        string  `json:"location"`
}

const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string { return t.Format(dateLayout) }

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toSummary(l model.Listing) listingSummary {
	return listingSummary{
		ID:              l.ID,
		CompanyName:     l.CompanyName,
		Designation:     l.Designation,
		Location:        l.Location,
		Description:     l.Description,
		Image:           l.Image,
		Salary:          l.Salary,
		Deadline:        fmtDatePtr(l.Deadline),
		Batch:           l.Batch,
		ApplicationLink: l.ApplicationLink,
	}
}

func toDetail(l model.Listing) listingDetail {
	return listingDetail{
		CompanyName:     l.CompanyName,
		Designation:     l.Designation,
		Description:     l.Description,
		Image:           l.Image,
		Created:         fmtDate(l.Created),
		Deadline:        fmtDatePtr(l.Deadline),
		ApplicationLink: l.ApplicationLink,
		Salary:          l.Salary,
		Batch:           l.Batch,
		Location:        l.Location,
	}
}

// ----- Handlers -----

// Home returns the public feed: every listing whose deadline has not passed,
// in store iteration order.  Expired listings stay fetchable by id but are
// excluded here.
func (h *ListingHandler) Home(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	all, err := h.Listings.ListAll(ctx)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	today := time.Now().UTC()
	out := make([]listingSummary, 0, len(all))
	for _, l := range all {
		if l.IsActive(today) {
			out = append(out, toSummary(l))
		}
	}
	return respond(c, http.StatusOK, out, "")
}

// GetByID returns one listing regardless of its deadline.
func (h *ListingHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return respondError(c, http.StatusNotFound, "Company not found")
		}
		return respondError(c, http.StatusInternalServerError, err.Error())
	}
	return respond(c, http.StatusOK, toDetail(l), "Successfully fetched the job")
}

// Create persists a new listing.  Absent deadline defaults to ten days from
// today, absent salary to "NA".
func (h *ListingHandler) Create(c echo.Context) error {
	var req listingReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	l, err := listingFromReq(req, time.Now().UTC())
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Listings.Create(ctx, l); err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(ctx, l, "created")
	return respond(c, http.StatusOK, toDetail(*l), "")
}

// Update overwrites every mutable field of an existing listing, applying the
// same defaulting rules as Create.
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("company_id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}
	var req listingReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	existing, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return respondError(c, http.StatusNotFound, "Company not found")
		}
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	l, err := listingFromReq(req, time.Now().UTC())
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	l.ID = existing.ID
	if req.Created == nil {
		// Full replace covers the mutable fields; the creation date is kept
		// unless the client sends one explicitly.
		l.Created = existing.Created
	}

	if err := h.Listings.Update(ctx, l); err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(ctx, l, "updated")
	return respond(c, http.StatusOK, toDetail(*l), "")
}

// listingFromReq validates the request and builds a listing with defaults
// applied: created falls back to today, deadline to today + 10 days, salary
// to "NA", and the free-text fields to empty strings.
func listingFromReq(req listingReq, now time.Time) (*model.Listing, error) {
	if req.CompanyName == "" || req.Designation == "" {
		return nil, errors.New("companyName/designation required")
	}

	today := model.DateOnly(now)
	created := today
	if req.Created != nil && *req.Created != "" {
		t, err := time.Parse(dateLayout, *req.Created)
		if err != nil {
			return nil, errors.New("invalid created date")
		}
		created = t
	}
	deadline := today.AddDate(0, 0, 10)
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			return nil, errors.New("invalid deadline date")
		}
		deadline = t
	}

	l := &model.Listing{
		CompanyName:     req.CompanyName,
		Designation:     req.Designation,
		Description:     req.Description,
		Image:           req.Image,
		Created:         created,
		Deadline:        &deadline,
		ApplicationLink: req.ApplicationLink,
		Salary:          "NA",
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.Salary != nil && *req.Salary != "" {
		l.Salary = *req.Salary
	}
	if req.Batch != nil {
		l.Batch = *req.Batch
	}
	return l, nil
}

// publish emits a listing event best-effort; failures are the publisher's to
// log and never affect the response.
func (h *ListingHandler) publish(ctx context.Context, l *model.Listing, action string) {
	if h.Events == nil {
		return
	}
	evt := queue.ListingPublishedEvent{
		ListingID:   l.ID,
		CompanyName: l.CompanyName,
		Designation: l.Designation,
		Location:    l.Location,
		Batch:       l.Batch,
		Action:      action,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if l.Deadline != nil {
		evt.Deadline = fmtDate(*l.Deadline)
	}
	_ = h.Events.PublishListingEvent(ctx, evt)
}
