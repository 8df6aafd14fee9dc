package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
	"busbackend/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testBookerUUID = "1b671a64-40d5-491e-99b0-da01ff1f3341"

func bookingTestRouter(uuid, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", func(c *gin.Context) {
		middleware.SetTestIdentity(c, uuid, role)
		CreateBooking(c)
	})
	return r
}

func postBooking(t *testing.T, r *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingRequestBody(bookedBy string) map[string]any {
	return map[string]any{
		"trip":           1,
		"schedule":       3,
		"seat":           "A",
		"bookedBy":       bookedBy,
		"passengerName":  "Sita Sharma",
		"passengerPhone": 9841000000,
		"amount":         1200,
		"isPaid":         true,
		"paymentMethod":  "cash",
		"bookedOn":       "2026-08-28T10:00:00Z",
	}
}

func TestCreateBookingRespondsWithBookedingID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	prev := intconfig.DB
	intconfig.DB = db
	defer func() { intconfig.DB = prev }()

	mock.ExpectQuery("FROM scheduled_vehicles").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "v_id", "vehicle_type_id", "number_plate", "vt_id", "name", "layout_id",
		}).AddRow(1, 2, 1, "BA 2 KHA 9133", 1, "Super Deluxe", 4))
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(int64(4), "A").
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(9, 4, "A", 0, 0))
	mock.ExpectQuery("FROM schedules WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "departure_date", "departure_time", "nature"}).
			AddRow(3, 1, "2026-09-01", "19:30", "Night"))
	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(1), int64(3), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))

	r := bookingTestRouter(testBookerUUID, models.RoleCustomer)
	w := postBooking(t, r, bookingRequestBody(testBookerUUID))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "bookedingId")
	assert.EqualValues(t, 42, resp["bookedingId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingImpersonationReturns403(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	prev := intconfig.DB
	intconfig.DB = db
	defer func() { intconfig.DB = prev }()

	// lookups up to the schedule run; no bookings query may follow
	mock.ExpectQuery("FROM scheduled_vehicles").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "v_id", "vehicle_type_id", "number_plate", "vt_id", "name", "layout_id",
		}).AddRow(1, 2, 1, "BA 2 KHA 9133", 1, "Super Deluxe", 4))
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(int64(4), "A").
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(9, 4, "A", 0, 0))
	mock.ExpectQuery("FROM schedules WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "departure_date", "departure_time", "nature"}).
			AddRow(3, 1, "2026-09-01", "19:30", "Night"))

	r := bookingTestRouter(testBookerUUID, models.RoleCustomer)
	w := postBooking(t, r, bookingRequestBody("9e107d9d-372b-4500-9a2b-6c6c1d6f3c1a"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "AuthorizationError: Intrusion Detected"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsIncompletePayload(t *testing.T) {
	r := bookingTestRouter(testBookerUUID, models.RoleCustomer)
	w := postBooking(t, r, map[string]any{"trip": 1, "schedule": 3})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "FormatError: ")
}
