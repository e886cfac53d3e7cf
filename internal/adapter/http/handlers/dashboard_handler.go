package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	response "decora_festas/internal/adapter/http/dto/response"
	"decora_festas/internal/dashboard"
	"decora_festas/internal/domain/entities"
	"decora_festas/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler produces the rendering-layer interface: the filtered and
// sorted sequence, the calendar projection, and the target/highlight payload.
//
// Query parameters map 1:1 to the filter spec; malformed values degrade to
// "no predicate" instead of failing, so the pipeline never errors on input.

type DashboardHandler struct {
	store *dashboard.Store
	now   func() time.Time
}

func NewDashboardHandler(store *dashboard.Store) *DashboardHandler {
	return &DashboardHandler{store: store, now: time.Now}
}

// GetDashboard runs the whole pipeline for the requested view state.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	view := dashboard.View{
		Filter: parseFilterSpec(c),
		Sort:   parseSort(c.Query("sort")),
		Active: parseActiveView(c.Query("view")),
	}

	res := dashboard.Refresh(h.store, view, h.now())
	c.JSON(http.StatusOK, response.FromDashboardResult(res))
}

// Reload re-fetches the canonical collection from the persistence
// collaborator.
func (h *DashboardHandler) Reload(c *gin.Context) {
	if err := h.store.Load(c.Request.Context()); err != nil {
		log.Printf("[dashboard][handler] reload failed err=%v", err)
		appErr := pkg.NewDomainError("RELOAD_FAILED", "Could not reload budgets", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func parseFilterSpec(c *gin.Context) dashboard.FilterSpec {
	spec := dashboard.FilterSpec{
		ClientQuery: c.Query("client"),
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		if s, err := entities.ParseBudgetStatus(raw); err == nil {
			spec.Status = &s
		}
	}
	if d, ok := parseDate(c.Query("date_from")); ok {
		spec.DateFrom = &d
	}
	if d, ok := parseDate(c.Query("date_to")); ok {
		spec.DateTo = &d
	}
	return spec
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		// Malformed bounds degrade to unbounded.
		return time.Time{}, false
	}
	return d, true
}

func parseSort(raw string) dashboard.SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(dashboard.SortAsc)) {
		return dashboard.SortAsc
	}
	return dashboard.DefaultSort
}

func parseActiveView(raw string) dashboard.ActiveView {
	if strings.EqualFold(strings.TrimSpace(raw), string(dashboard.ViewCalendar)) {
		return dashboard.ViewCalendar
	}
	return dashboard.ViewList
}
