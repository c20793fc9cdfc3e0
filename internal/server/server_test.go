package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVetService struct {
	vets []vetdomain.Veterinarian
	err  error
}

func (f *fakeVetService) List(ctx context.Context) ([]vetdomain.Veterinarian, error) {
	return f.vets, f.err
}

func (f *fakeVetService) GetByID(ctx context.Context, id int64) (vetdomain.Veterinarian, error) {
	if f.err != nil {
		return vetdomain.Veterinarian{}, f.err
	}
	for _, v := range f.vets {
		if v.ID == id {
			return v, nil
		}
	}
	return vetdomain.Veterinarian{}, vetdomain.ErrNotFound
}

func (f *fakeVetService) Create(ctx context.Context, input vetdomain.VeterinarianInput) (vetdomain.Veterinarian, error) {
	if f.err != nil {
		return vetdomain.Veterinarian{}, f.err
	}
	vet := vetdomain.Veterinarian{
		ID:            int64(len(f.vets) + 1),
		LicenseNumber: input.LicenseNumber,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		IsActive:      true,
	}
	f.vets = append(f.vets, vet)
	return vet, nil
}

func (f *fakeVetService) Replace(ctx context.Context, id int64, input vetdomain.VeterinarianInput) (vetdomain.Veterinarian, error) {
	return vetdomain.Veterinarian{}, f.err
}

func (f *fakeVetService) Delete(ctx context.Context, id int64) error {
	return f.err
}

type fakeApptService struct {
	appts []apptdomain.Appointment
	err   error
}

func (f *fakeApptService) List(ctx context.Context) ([]apptdomain.Appointment, error) {
	return f.appts, f.err
}

func (f *fakeApptService) GetByID(ctx context.Context, id int64) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, f.err
}

func (f *fakeApptService) Create(ctx context.Context, input apptdomain.AppointmentInput) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, f.err
}

func (f *fakeApptService) Replace(ctx context.Context, id int64, input apptdomain.AppointmentInput) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, f.err
}

func (f *fakeApptService) Delete(ctx context.Context, id int64) error {
	return f.err
}

func (f *fakeApptService) Complete(ctx context.Context, id int64) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, f.err
}

func (f *fakeApptService) Cancel(ctx context.Context, id int64) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, f.err
}

func (f *fakeApptService) Today(ctx context.Context) ([]apptdomain.Appointment, error) {
	return f.appts, f.err
}

func (f *fakeApptService) Pending(ctx context.Context) ([]apptdomain.Appointment, error) {
	return f.appts, f.err
}

func (f *fakeApptService) Schedule(ctx context.Context, vetID int64, day *time.Time) ([]apptdomain.Appointment, error) {
	return f.appts, f.err
}

func (f *fakeApptService) ListByVeterinarian(ctx context.Context, vetID int64) ([]apptdomain.Appointment, error) {
	return f.appts, f.err
}

func newTestServer(t *testing.T, vets *fakeVetService, appts *fakeApptService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	NewServer(ServerParams{
		Gin:     r,
		VetSvc:  vets,
		ApptSvc: appts,
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListVeterinariansEnvelope(t *testing.T) {
	vets := &fakeVetService{vets: []vetdomain.Veterinarian{
		{ID: 1, LicenseNumber: "VET-1", FirstName: "A", LastName: "B", Email: "a@b.example"},
	}}
	r := newTestServer(t, vets, &fakeApptService{})

	w := doRequest(t, r, http.MethodGet, "/veterinarians", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []vetdomain.Veterinarian `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "VET-1", resp.Data[0].LicenseNumber)
}

func TestGetVeterinarianInvalidID(t *testing.T) {
	r := newTestServer(t, &fakeVetService{}, &fakeApptService{})

	w := doRequest(t, r, http.MethodGet, "/veterinarians/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "invalid_id", resp.Error.Errors[0].Code)
}

func TestGetVeterinarianNotFound(t *testing.T) {
	r := newTestServer(t, &fakeVetService{}, &fakeApptService{})

	w := doRequest(t, r, http.MethodGet, "/veterinarians/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestDeleteVeterinarianGuardMapsToConflict(t *testing.T) {
	vets := &fakeVetService{err: vetdomain.ErrHasUpcomingAppointments}
	r := newTestServer(t, vets, &fakeApptService{})

	w := doRequest(t, r, http.MethodDelete, "/veterinarians/1", "")
	require.Equal(t, http.StatusConflict, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_state", resp.Error.Type)
}

func TestCreateVeterinarianValidationError(t *testing.T) {
	vets := &fakeVetService{err: vetdomain.ErrInvalidEmail}
	r := newTestServer(t, vets, &fakeApptService{})

	w := doRequest(t, r, http.MethodPost, "/veterinarians", `{"license_number":"VET-1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "invalid_email", resp.Error.Errors[0].Code)
}

func TestCompleteAlreadyCompletedMapsToConflict(t *testing.T) {
	appts := &fakeApptService{err: apptdomain.ErrAlreadyCompleted}
	r := newTestServer(t, &fakeVetService{}, appts)

	w := doRequest(t, r, http.MethodPut, "/appointments/7/complete", "")
	require.Equal(t, http.StatusConflict, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_state", resp.Error.Type)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	r := newTestServer(t, &fakeVetService{}, &fakeApptService{})

	w := doRequest(t, r, http.MethodPost, "/veterinarians", `{"license_number":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
