package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/roamly/roamly/core"
)

// Requirement: reviews and rating stats for a traveler come from the
// per-user review routes.
func TestReviewsService_ForUserAndStats(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respondData(http.MethodGet, "/reviews/user/u2", []core.Review{
		{ID: "r1", ReviewerID: "u1", ReviewedUserID: "u2", Rating: 5, Comment: "great travel buddy"},
	})
	backend.respondData(http.MethodGet, "/reviews/user/u2/average", core.RatingStats{
		UserID:             "u2",
		AverageRating:      4.5,
		TotalReviews:       12,
		RatingDistribution: map[string]int{"5": 8, "4": 3, "3": 1},
	})

	transport, _ := newTestTransport(t, backend, nil)
	service := NewReviewsService(transport)

	reviews, err := service.ForUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Errorf("ForUser = %+v, want one 5-star review", reviews)
	}

	stats, err := service.Stats(context.Background(), "u2")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.AverageRating != 4.5 || stats.RatingDistribution["5"] != 8 {
		t.Errorf("Stats = %+v, want average 4.5 with distribution", stats)
	}
}

// Requirement: creating a review posts the rating payload; server-side
// validation messages surface verbatim.
func TestReviewsService_Create(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respondData(http.MethodPost, "/reviews", core.Review{ID: "r9", Rating: 4})

	transport, _ := newTestTransport(t, backend, nil)
	service := NewReviewsService(transport)

	review, err := service.Create(context.Background(), core.ReviewInput{
		ReviewedUserID: "u2",
		Rating:         4,
		Comment:        "reliable and fun",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if review.ID != "r9" {
		t.Errorf("Create = %+v, want review r9", review)
	}

	body := backend.lastRequest().Body
	if !strings.Contains(body, `"reviewedUserId":"u2"`) || !strings.Contains(body, `"rating":4`) {
		t.Errorf("body %s missing review fields", body)
	}
}

// Requirement: update and delete address the review by ID.
func TestReviewsService_UpdateAndDelete(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()

	backend.respondData(http.MethodPatch, "/reviews/r1", core.Review{ID: "r1", Rating: 3})
	backend.respond(http.MethodDelete, "/reviews/r1", http.StatusOK, core.Envelope{Success: true})

	transport, _ := newTestTransport(t, backend, nil)
	service := NewReviewsService(transport)

	if _, err := service.Update(context.Background(), "r1", core.ReviewInput{Rating: 3}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := service.Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := backend.lastRequest(); got.Method != http.MethodDelete || got.Path != "/reviews/r1" {
		t.Errorf("delete request = %s %s, want DELETE /reviews/r1", got.Method, got.Path)
	}
}
