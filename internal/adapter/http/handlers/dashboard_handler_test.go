package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"decora_festas/internal/dashboard"
	"decora_festas/internal/domain/entities"
	mock_interfaces "decora_festas/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func dashboardFixtures() []entities.Budget {
	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	return []entities.Budget{
		{
			ID:          "b-1",
			Client:      "Maria Silva",
			ServiceType: entities.ServiceBalloonArch,
			EventDate:   time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			Status:      entities.StatusPending,
			CreatedAt:   base,
		},
		{
			ID:          "b-2",
			Client:      "João Pereira",
			ServiceType: entities.ServiceFullDecoration,
			EventDate:   time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC),
			Status:      entities.StatusApproved,
			CreatedAt:   base.Add(time.Hour),
		},
		{
			ID:          "b-3",
			Client:      "Ana Costa",
			ServiceType: entities.ServicePicnic,
			EventDate:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			Status:      entities.StatusPending,
			CreatedAt:   base.Add(2 * time.Hour),
		},
	}
}

func dashboardRouter(records []entities.Budget, now time.Time) (*gin.Engine, *dashboard.Store) {
	store := dashboard.NewStore(nil)
	for _, b := range records {
		store.Upsert(b)
	}
	h := NewDashboardHandler(store)
	h.now = func() time.Time { return now }

	r := gin.New()
	r.GET("/v1/dashboard", h.GetDashboard)
	return r, store
}

func getDashboard(t *testing.T, r *gin.Engine, query string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	return resp
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 12, 17, 12, 0, 0, 0, time.UTC)

	t.Run("no query projects everything most recent first", func(t *testing.T) {
		r, _ := dashboardRouter(dashboardFixtures(), now)
		resp := getDashboard(t, r, "")

		list := resp["list"].([]interface{})
		if len(list) != 3 {
			t.Fatalf("expected 3 records, got %d", len(list))
		}
		if list[0].(map[string]interface{})["id"] != "b-3" {
			t.Fatalf("expected default desc order, got %v", list)
		}
		if _, ok := resp["target"]; ok {
			t.Fatalf("expected no target without a filter")
		}
	})

	t.Run("status filter and ascending sort", func(t *testing.T) {
		r, _ := dashboardRouter(dashboardFixtures(), now)
		resp := getDashboard(t, r, "?status=pending&sort=asc")

		list := resp["list"].([]interface{})
		if len(list) != 2 {
			t.Fatalf("expected 2 pending records, got %d", len(list))
		}
		if list[0].(map[string]interface{})["id"] != "b-1" {
			t.Fatalf("expected ascending order, got %v", list)
		}
	})

	t.Run("calendar view with date range selects a target", func(t *testing.T) {
		r, _ := dashboardRouter(dashboardFixtures(), now)
		resp := getDashboard(t, r, "?view=calendar&date_from=2024-12-16&date_to=2024-12-31")

		target, ok := resp["target"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected a target, got %v", resp)
		}
		if target["id"] != "b-2" {
			t.Fatalf("expected closest-to-now b-2, got %v", target["id"])
		}
		highlight, ok := resp["highlight"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected a highlight plan")
		}
		if highlight["target_id"] != "b-2" {
			t.Fatalf("expected highlight for b-2, got %v", highlight["target_id"])
		}
	})

	t.Run("no matches raises the overlay with reset", func(t *testing.T) {
		r, _ := dashboardRouter(dashboardFixtures(), now)
		resp := getDashboard(t, r, "?view=calendar&client=nobody")

		if resp["no_matches"] != true || resp["reset_filter"] != true {
			t.Fatalf("expected no-matches overlay, got %v", resp)
		}
	})

	t.Run("malformed query values degrade to no predicate", func(t *testing.T) {
		r, _ := dashboardRouter(dashboardFixtures(), now)
		resp := getDashboard(t, r, "?status=bogus&date_from=not-a-date&sort=sideways&view=hologram")

		list := resp["list"].([]interface{})
		if len(list) != 3 {
			t.Fatalf("expected full projection, got %d records", len(list))
		}
	})
}

func TestDashboardHandler_Reload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reload success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		store := dashboard.NewStore(repo)
		h := NewDashboardHandler(store)

		r := gin.New()
		r.POST("/v1/dashboard/reload", h.Reload)

		repo.EXPECT().List(gomock.Any()).Return(dashboardFixtures(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/reload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		records, degraded := store.Snapshot()
		if degraded || len(records) != 3 {
			t.Fatalf("expected 3 loaded records, got %d degraded=%t", len(records), degraded)
		}
	})

	t.Run("initial failure serves the sample dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		store := dashboard.NewStore(repo)
		h := NewDashboardHandler(store)

		r := gin.New()
		r.POST("/v1/dashboard/reload", h.Reload)
		r.GET("/v1/dashboard", h.GetDashboard)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/reload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 fallback, got %d", w.Code)
		}

		resp := getDashboard(t, r, "")
		if resp["degraded"] != true {
			t.Fatalf("expected degraded dashboard, got %v", resp)
		}
	})

	t.Run("reload failure after a successful load maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		store := dashboard.NewStore(repo)
		h := NewDashboardHandler(store)

		r := gin.New()
		r.POST("/v1/dashboard/reload", h.Reload)

		gomock.InOrder(
			repo.EXPECT().List(gomock.Any()).Return(dashboardFixtures(), nil),
			repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb down")),
		)

		for i, want := range []int{http.StatusNoContent, http.StatusBadGateway} {
			req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/reload", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != want {
				t.Fatalf("request %d: expected %d, got %d", i, want, w.Code)
			}
		}
	})
}
