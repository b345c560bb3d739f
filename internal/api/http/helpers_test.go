package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genrent-backend/internal/repository"
	"genrent-backend/internal/repository/jsonfile"
	"genrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// noopEmail satisfies the notification interface without sending anything.
type noopEmail struct{}

func (noopEmail) SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error {
	return nil
}
func (noopEmail) SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error {
	return nil
}
func (noopEmail) SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error {
	return nil
}
func (noopEmail) SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error {
	return nil
}
func (noopEmail) SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error {
	return nil
}

type testAPI struct {
	router        *mux.Router
	svc           service.RentalService
	rentalRepo    repository.RentalRepository
	generatorRepo repository.GeneratorRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.GeneratorRepository.InitializeDefault(context.Background()))

	svc := service.NewRentalService(store.RentalRepository, store.GeneratorRepository, noopEmail{}, "admin@example.com", 9900)
	return &testAPI{
		router:        NewRouter(svc),
		svc:           svc,
		rentalRepo:    store.RentalRepository,
		generatorRepo: store.GeneratorRepository,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

const validCreateBody = `{
	"name": "Matti Meikäläinen",
	"email": "matti@example.com",
	"phone": "+358401234567",
	"startDate": "2026-06-01",
	"endDate": "2026-06-05",
	"delivery": "pickup"
}`

// createRental books a rental through the API and returns its id.
func (a *testAPI) createRental(t *testing.T) int64 {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/rentals", validCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decodeBody(t, rec)["id"].(float64))
}
