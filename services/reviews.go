package services

import (
	"context"
	"net/http"

	"github.com/roamly/roamly/core"
)

// ReviewsService fetches and mutates traveler reviews.
type ReviewsService struct {
	transport *Transport
}

func NewReviewsService(transport *Transport) *ReviewsService {
	return &ReviewsService{transport: transport}
}

// ForUser lists the reviews left on a traveler.
func (s *ReviewsService) ForUser(ctx context.Context, userID string) ([]core.Review, error) {
	var reviews []core.Review
	if err := s.transport.Do(ctx, http.MethodGet, pathUserReviews(userID), nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Stats returns a traveler's aggregated rating. Aggregation itself is
// server-side; this is display data.
func (s *ReviewsService) Stats(ctx context.Context, userID string) (*core.RatingStats, error) {
	var stats core.RatingStats
	if err := s.transport.Do(ctx, http.MethodGet, pathUserRatingStats(userID), nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Create leaves a review on another traveler.
func (s *ReviewsService) Create(ctx context.Context, input core.ReviewInput) (*core.Review, error) {
	var review core.Review
	if err := s.transport.Do(ctx, http.MethodPost, pathReviews, nil, input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Update edits a review the caller authored.
func (s *ReviewsService) Update(ctx context.Context, id string, input core.ReviewInput) (*core.Review, error) {
	var review core.Review
	if err := s.transport.Do(ctx, http.MethodPatch, pathReview(id), nil, input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review the caller authored.
func (s *ReviewsService) Delete(ctx context.Context, id string) error {
	return s.transport.Do(ctx, http.MethodDelete, pathReview(id), nil, nil, nil)
}
