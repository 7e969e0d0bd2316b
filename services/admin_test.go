package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/roamly/roamly/core"
)

// Requirement: block/unblock PATCHes the block flag to the moderation route.
func TestAdminService_SetBlocked(t *testing.T) {
	tests := []struct {
		name     string
		blocked  bool
		wantBody string
	}{
		{name: "block", blocked: true, wantBody: `{"block":true}`},
		{name: "unblock", blocked: false, wantBody: `{"block":false}`},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			backend := newFakeBackend()
			defer backend.Close()

			backend.respond(http.MethodPatch, "/admin/users/u7/block", http.StatusOK,
				core.Envelope{Success: true})

			transport, _ := newTestTransport(t, backend, nil)
			service := NewAdminService(transport)

			if err := service.SetBlocked(context.Background(), "u7", test.blocked); err != nil {
				t.Fatalf("SetBlocked failed: %v", err)
			}

			got := backend.lastRequest()
			if got.Method != http.MethodPatch || got.Path != "/admin/users/u7/block" {
				t.Errorf("request = %s %s, want PATCH /admin/users/u7/block", got.Method, got.Path)
			}
			if strings.TrimSpace(got.Body) != test.wantBody {
				t.Errorf("body = %s, want %s", got.Body, test.wantBody)
			}
		})
	}
}

// Requirement: stats and analytics decode the dashboard payloads; the
// analytics range rides as a query parameter.
func TestAdminService_StatsAndAnalytics(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respondData(http.MethodGet, "/admin/stats", core.AdminStats{
		TotalUsers: 120, BlockedUsers: 3, TotalPlans: 80, TotalReviews: 240,
	})
	backend.respondData(http.MethodGet, "/admin/analytics", []core.AnalyticsPoint{
		{Date: "2026-08-01", NewUsers: 4, NewPlans: 2},
	})

	transport, _ := newTestTransport(t, backend, nil)
	service := NewAdminService(transport)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalUsers != 120 || stats.BlockedUsers != 3 {
		t.Errorf("Stats = %+v, want dashboard summary", stats)
	}

	points, err := service.Analytics(context.Background(), "30d")
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if len(points) != 1 || points[0].NewUsers != 4 {
		t.Errorf("Analytics = %+v, want one point", points)
	}
	if got := backend.lastRequest().Query; !strings.Contains(got, "range=30d") {
		t.Errorf("query %q missing range", got)
	}
}

// Requirement: a non-admin caller's 403 surfaces as an APIError and does
// not clear the session.
func TestAdminService_ForbiddenKeepsSession(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respond(http.MethodGet, "/admin/users", http.StatusForbidden,
		core.Envelope{Success: false, Message: "admin access required"})

	transport, store := newTestTransport(t, backend, nil)
	store.Set(authenticatedSession())
	service := NewAdminService(transport)

	_, err := service.Users(context.Background())
	if status := statusOf(err); status != http.StatusForbidden {
		t.Fatalf("Users error = %v, want 403 APIError", err)
	}
	if store.Current() == nil {
		t.Error("a 403 is an authorization failure, not expiry; session must survive")
	}
}

// Requirement: plan moderation lists and deletes through the admin routes.
func TestAdminService_TravelPlans(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respondData(http.MethodGet, "/admin/travel-plans", []core.TravelPlan{{ID: "p1"}})
	backend.respond(http.MethodDelete, "/admin/travel-plans/p1", http.StatusOK, core.Envelope{Success: true})

	transport, _ := newTestTransport(t, backend, nil)
	service := NewAdminService(transport)

	plans, err := service.TravelPlans(context.Background())
	if err != nil || len(plans) != 1 {
		t.Fatalf("TravelPlans = (%v, %v), want one plan", plans, err)
	}

	if err := service.DeleteTravelPlan(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteTravelPlan failed: %v", err)
	}
	if got := backend.lastRequest().Path; got != "/admin/travel-plans/p1" {
		t.Errorf("delete path = %q, want /admin/travel-plans/p1", got)
	}
}
