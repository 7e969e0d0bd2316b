package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roamly/roamly/core"
)

// TravelPlansService fetches and mutates travel plans.
type TravelPlansService struct {
	transport *Transport
}

func NewTravelPlansService(transport *Transport) *TravelPlansService {
	return &TravelPlansService{transport: transport}
}

// Public lists publicly visible plans, optionally filtered. Responses are
// served from the client-side cache when fresh.
func (s *TravelPlansService) Public(ctx context.Context, filter core.PlanFilter) ([]core.TravelPlan, error) {
	query := url.Values{}
	if filter.Destination != "" {
		query.Set("destination", filter.Destination)
	}
	if filter.TravelType != "" {
		query.Set("travelType", string(filter.TravelType))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var plans []core.TravelPlan
	if err := s.transport.GetCached(ctx, pathTravelPlansPublic, query, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Mine lists the authenticated traveler's own plans, public or not.
func (s *TravelPlansService) Mine(ctx context.Context) ([]core.TravelPlan, error) {
	var plans []core.TravelPlan
	if err := s.transport.Do(ctx, http.MethodGet, pathTravelPlansMine, nil, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Get returns one plan by ID.
func (s *TravelPlansService) Get(ctx context.Context, id string) (*core.TravelPlan, error) {
	var plan core.TravelPlan
	if err := s.transport.Do(ctx, http.MethodGet, pathTravelPlan(id), nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create publishes a new travel plan.
func (s *TravelPlansService) Create(ctx context.Context, input core.TravelPlanInput) (*core.TravelPlan, error) {
	var plan core.TravelPlan
	if err := s.transport.Do(ctx, http.MethodPost, pathTravelPlans, nil, input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update edits an existing plan. Ownership is enforced server-side.
func (s *TravelPlansService) Update(ctx context.Context, id string, input core.TravelPlanInput) (*core.TravelPlan, error) {
	var plan core.TravelPlan
	if err := s.transport.Do(ctx, http.MethodPatch, pathTravelPlan(id), nil, input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete removes a plan.
func (s *TravelPlansService) Delete(ctx context.Context, id string) error {
	return s.transport.Do(ctx, http.MethodDelete, pathTravelPlan(id), nil, nil, nil)
}
