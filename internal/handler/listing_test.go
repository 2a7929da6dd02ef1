package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/careerdesk/job-portal/internal/model"
	"github.com/careerdesk/job-portal/internal/repository"
)

const selectListings = "SELECT id, location, companyName, designation, description, image, created, deadline, applicationLink, salary, batch FROM details"

func newListingTest(t *testing.T) (*ListingHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	h := NewListingHandler(repository.NewListingRepo(db), nil)
	return h, mock, func() { db.Close() }
}

func listingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "location", "companyName", "designation", "description",
		"image", "created", "deadline", "applicationLink", "salary", "batch"})
}

func TestHomeFiltersExpiredListings(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	today := model.DateOnly(time.Now().UTC())
	yesterday := today.AddDate(0, 0, -1)
	mock.ExpectQuery(selectListings).WillReturnRows(listingRows().
		AddRow(1, "", "Expired Inc", "SWE", "d", "a.png", today, yesterday, "http://a", "NA", "2025").
		AddRow(2, "", "Open Ltd", "SRE", "d", "b.png", today, nil, "http://b", "NA", "2025"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", ""), rec)

	if err := h.Home(c); err != nil {
		t.Fatalf("Home() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data, ok := env["data"].([]interface{})
	if !ok {
		t.Fatalf("expected array data, got %T", env["data"])
	}
	if len(data) != 1 {
		t.Fatalf("expected only the listing without a deadline, got %d entries", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["companyName"] != "Open Ltd" {
		t.Fatalf("expected Open Ltd in feed, got %v", first["companyName"])
	}
}

func TestHomeIncludesDeadlineToday(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	today := model.DateOnly(time.Now().UTC())
	mock.ExpectQuery(selectListings).WillReturnRows(listingRows().
		AddRow(1, "", "LastDay Co", "SWE", "d", "a.png", today, today, "http://a", "NA", "2025"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", ""), rec)

	if err := h.Home(c); err != nil {
		t.Fatalf("Home() error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	data := env["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("a deadline of today is inclusive; expected 1 entry, got %d", len(data))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	mock.ExpectQuery(selectListings).WithArgs(42).WillReturnError(sql.ErrNoRows)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/42", nil), rec)
	c.SetPath("/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues("42")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetByIDReturnsExpiredListing(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	created := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	deadline := created.AddDate(0, 0, 10) // long past
	mock.ExpectQuery(selectListings).WithArgs(3).WillReturnRows(listingRows().
		AddRow(3, "Pune", "Acme", "SWE", "d", "a.png", created, deadline, "http://a", "NA", "2024"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/3", nil), rec)
	c.SetPath("/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues("3")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	// Direct lookup bypasses the visibility filter.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for expired listing by id, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	detail := env["data"].(map[string]interface{})
	if detail["deadline"] != "2024-06-11" {
		t.Fatalf("expected deadline 2024-06-11, got %v", detail["deadline"])
	}
}

func TestGetByIDInvalidID(t *testing.T) {
	h, _, done := newListingTest(t)
	defer done()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/abc", nil), rec)
	c.SetPath("/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues("abc")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	mock.ExpectExec("INSERT INTO details").
		WithArgs("", "Acme", "SWE", "backend role", "x.png", sqlmock.AnyArg(), sqlmock.AnyArg(),
			"http://apply.example.com", "NA", "2025").
		WillReturnResult(sqlmock.NewResult(10, 1))

	body := `{"companyName":"Acme","designation":"SWE","description":"backend role","image":"x.png","deadline":null,"applicationLink":"http://apply.example.com","salary":null,"batch":"2025"}`
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/details", body), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	detail := env["data"].(map[string]interface{})
	if detail["salary"] != "NA" {
		t.Fatalf("absent salary must default to NA, got %v", detail["salary"])
	}
	wantDeadline := model.DateOnly(time.Now().UTC()).AddDate(0, 0, 10).Format("2006-01-02")
	if detail["deadline"] != wantDeadline {
		t.Fatalf("absent deadline must default to today+10d (%s), got %v", wantDeadline, detail["deadline"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	h, _, done := newListingTest(t)
	defer done()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/details", `{"description":"no name"}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateNotFound(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	mock.ExpectQuery(selectListings).WithArgs(9).WillReturnError(sql.ErrNoRows)

	body := `{"companyName":"Acme","designation":"SWE"}`
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/update/9", body), rec)
	c.SetPath("/update/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues("9")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateReplacesFieldsWithDefaults(t *testing.T) {
	h, mock, done := newListingTest(t)
	defer done()

	created := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(selectListings).WithArgs(5).WillReturnRows(listingRows().
		AddRow(5, "Pune", "Acme", "SWE", "old", "a.png", created, nil, "http://a", "10 LPA", "2025"))
	mock.ExpectExec("UPDATE details SET location=").
		WithArgs("", "Acme", "Senior SWE", "new description", "b.png", created, sqlmock.AnyArg(),
			"http://b", "NA", "2026", uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"companyName":"Acme","designation":"Senior SWE","description":"new description","image":"b.png","applicationLink":"http://b","salary":null,"batch":"2026"}`
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/update/5", body), rec)
	c.SetPath("/update/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	detail := env["data"].(map[string]interface{})
	if detail["salary"] != "NA" {
		t.Fatalf("update must apply the same salary defaulting, got %v", detail["salary"])
	}
	if detail["created"] != "2025-04-01" {
		t.Fatalf("creation date must survive an update without one, got %v", detail["created"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
