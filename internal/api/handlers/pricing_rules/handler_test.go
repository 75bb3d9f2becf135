package pricing_rules

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

func (m *mockService) ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]*domain.PricingRule)
	return resp, args.Error(1)
}

func (m *mockService) CreatePricingRule(ctx context.Context, req *models.CreatePricingRuleRequest) (*domain.PricingRule, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.PricingRule)
	return resp, args.Error(1)
}

func (m *mockService) UpdatePricingRule(ctx context.Context, id string, req *models.UpdatePricingRuleRequest) (*domain.PricingRule, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*domain.PricingRule)
	return resp, args.Error(1)
}

func (m *mockService) DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*domain.PricingRule)
	return resp, args.Error(1)
}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/pricing-rules", h.List).Methods(http.MethodGet)
	r.HandleFunc("/pricing-rules", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/pricing-rules/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/pricing-rules/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func serve(svc *mockService, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreate_MissingFields(t *testing.T) {
	svc := new(mockService)
	svc.On("CreatePricingRule", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: name is required; type is required", catalog.ErrInvalidInput))

	rec := serve(svc, http.MethodPost, "/pricing-rules", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"name is required; type is required"}`, rec.Body.String())
}

func TestCreate_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("CreatePricingRule", mock.Anything, mock.MatchedBy(func(r *models.CreatePricingRuleRequest) bool {
		return r.Name == "Late" && r.Type == "time"
	})).Return(&domain.PricingRule{ID: "pr-1", Name: "Late", Type: domain.RuleTypeTime}, nil)

	rec := serve(svc, http.MethodPost, "/pricing-rules", `{"name":"Late","type":"time","criteria":{"startHour":21,"endHour":23}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pr-1"`)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdatePricingRule", mock.Anything, "nope", mock.Anything).Return(nil, catalog.ErrRuleNotFound)

	rec := serve(svc, http.MethodPut, "/pricing-rules/nope", `{"amount":0.5}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Rule not found"}`, rec.Body.String())
}

func TestDelete_ReturnsRemovedRule(t *testing.T) {
	svc := new(mockService)
	svc.On("DeletePricingRule", mock.Anything, "pr5").Return(&domain.PricingRule{ID: "pr5"}, nil)

	rec := serve(svc, http.MethodDelete, "/pricing-rules/pr5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pr5"`)
}

func TestDelete_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("DeletePricingRule", mock.Anything, "pr9").Return(nil, catalog.ErrRuleNotFound)

	rec := serve(svc, http.MethodDelete, "/pricing-rules/pr9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_InternalError(t *testing.T) {
	svc := new(mockService)
	svc.On("ListPricingRules", mock.Anything).Return(nil, fmt.Errorf("%w: db down", catalog.ErrInternal))

	rec := serve(svc, http.MethodGet, "/pricing-rules", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}
