package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/roamly/roamly/core"
)

// AdminService drives the moderation surface. Authorization is enforced
// server-side; non-admin callers get 403s.
type AdminService struct {
	transport *Transport
}

func NewAdminService(transport *Transport) *AdminService {
	return &AdminService{transport: transport}
}

// Users lists every registered traveler for moderation.
func (s *AdminService) Users(ctx context.Context) ([]core.Traveler, error) {
	var users []core.Traveler
	if err := s.transport.Do(ctx, http.MethodGet, pathAdminUsers, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetBlocked blocks or unblocks a traveler.
func (s *AdminService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	body := map[string]bool{"block": blocked}
	return s.transport.Do(ctx, http.MethodPatch, pathAdminUserBlock(userID), nil, body, nil)
}

// Stats returns the moderation dashboard summary.
func (s *AdminService) Stats(ctx context.Context) (*core.AdminStats, error) {
	var stats core.AdminStats
	if err := s.transport.Do(ctx, http.MethodGet, pathAdminStats, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Analytics returns the signup/plan series for a range such as "7d" or "30d".
func (s *AdminService) Analytics(ctx context.Context, rng string) ([]core.AnalyticsPoint, error) {
	query := url.Values{}
	if rng != "" {
		query.Set("range", rng)
	}

	var points []core.AnalyticsPoint
	if err := s.transport.Do(ctx, http.MethodGet, pathAdminAnalytics, query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// TravelPlans lists every plan, including private ones, for moderation.
func (s *AdminService) TravelPlans(ctx context.Context) ([]core.TravelPlan, error) {
	var plans []core.TravelPlan
	if err := s.transport.Do(ctx, http.MethodGet, pathAdminTravelPlans, nil, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteTravelPlan removes a plan as a moderation action.
func (s *AdminService) DeleteTravelPlan(ctx context.Context, id string) error {
	return s.transport.Do(ctx, http.MethodDelete, pathAdminTravelPlan(id), nil, nil, nil)
}
