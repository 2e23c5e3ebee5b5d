package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/server/http/handlers"
	"github.com/vitrinepdv/vitrine/internal/test/facades"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := facades.NewStoreFacadeStub()
	facade.OrderFacadeStub = facades.OrderFacadeStub{
		OrdersFn: func(context.Context, repository.OrderFilter) ([]model.Order, error) {
			return []model.Order{{ID: "o1", Number: 1, Status: model.OrderStatusPaid}}, nil
		},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for catalog, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"login": "staff", "password": "pass"})
	req = httptest.NewRequest(http.MethodPost, "/api/staff/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/reports/dashboard", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin dashboard, got %d", resp.Code)
	}
}

func TestSetupRoutesRoleGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := facades.NewStoreFacadeStub()
	facade.AuthFacadeStub = facades.AuthFacadeStub{ParseFn: func(string) (int64, model.StaffRole, error) {
		return 2, model.StaffRoleSeller, nil
	}}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports/profit", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for seller on reports, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for seller on orders, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = (*facades.StoreFacadeStub)(nil)
