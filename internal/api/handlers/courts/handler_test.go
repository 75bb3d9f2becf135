package courts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]*domain.Court)
	return resp, args.Error(1)
}

func (m *mockService) CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*domain.Court, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.Court)
	return resp, args.Error(1)
}

func (m *mockService) UpdateCourt(ctx context.Context, id string, req *models.UpdateCourtRequest) (*domain.Court, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*domain.Court)
	return resp, args.Error(1)
}

func serve(svc *mockService, method, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/courts", h.List).Methods(http.MethodGet)
	r.HandleFunc("/courts", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/courts/{id}", h.Update).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestList(t *testing.T) {
	svc := new(mockService)
	svc.On("ListCourts", mock.Anything).Return([]*domain.Court{{ID: "c1", Name: "Court 1"}}, nil)

	rec := serve(svc, http.MethodGet, "/courts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"c1"`)
}

func TestCreate(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateCourt", mock.Anything, mock.MatchedBy(func(r *models.CreateCourtRequest) bool {
		return r.Name == "Court 5" && r.BaseRate != nil && *r.BaseRate == 30
	})).Return(&domain.Court{ID: "c-new", Name: "Court 5", Type: "indoor", BaseRate: 30, Status: domain.CourtStatusActive}, nil)

	rec := serve(svc, http.MethodPost, "/courts", `{"name":"Court 5","type":"indoor","baseRate":30}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"c-new"`)
}

func TestCreate_Invalid(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateCourt", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: baseRate is required", catalog.ErrInvalidInput))

	rec := serve(svc, http.MethodPost, "/courts", `{"name":"Court 5","type":"indoor"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"baseRate is required"}`, rec.Body.String())
}

func TestUpdate_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdateCourt", mock.Anything, "c9", mock.Anything).Return(nil, catalog.ErrCourtNotFound)

	rec := serve(svc, http.MethodPut, "/courts/c9", `{"status":"disabled"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Court not found"}`, rec.Body.String())
}

func TestUpdate_EmptyBodyIsNoopPatch(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdateCourt", mock.Anything, "c1", &models.UpdateCourtRequest{}).
		Return(&domain.Court{ID: "c1"}, nil)

	rec := serve(svc, http.MethodPut, "/courts/c1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
