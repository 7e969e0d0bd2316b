package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roamly/roamly/core"
)

// UsersService fetches traveler profiles.
type UsersService struct {
	transport *Transport
}

func NewUsersService(transport *Transport) *UsersService {
	return &UsersService{transport: transport}
}

// List returns the public traveler directory. Responses are served from
// the client-side cache when fresh.
func (s *UsersService) List(ctx context.Context, filter core.TravelerFilter) ([]core.Traveler, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var travelers []core.Traveler
	if err := s.transport.GetCached(ctx, pathUsers, query, &travelers); err != nil {
		return nil, err
	}
	return travelers, nil
}

// Get returns one traveler's full profile.
func (s *UsersService) Get(ctx context.Context, id string) (*core.Traveler, error) {
	var traveler core.Traveler
	if err := s.transport.Do(ctx, http.MethodGet, pathUser(id), nil, nil, &traveler); err != nil {
		return nil, err
	}
	return &traveler, nil
}

// UpdateProfile patches the caller's own profile. Ownership is enforced
// server-side; the client just forwards the payload.
func (s *UsersService) UpdateProfile(ctx context.Context, id string, update core.ProfileUpdate) (*core.Traveler, error) {
	var traveler core.Traveler
	if err := s.transport.Do(ctx, http.MethodPatch, pathUser(id), nil, update, &traveler); err != nil {
		return nil, err
	}
	return &traveler, nil
}
