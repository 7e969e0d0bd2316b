package core

import (
	"encoding/json"
	"strings"
	"time"
)

// Role classifies a session's access level.
//
// The backend has historically been sloppy about casing ("admin" vs "ADMIN"),
// so every role read off the wire goes through ParseRole before it is compared.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole canonicalizes a role value to its uppercase form.
// Unrecognized values are returned uppercased but will not match any
// known role constant.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// Known reports whether the role is one of the closed set of roles
// the platform defines.
func (r Role) Known() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session is the client's in-memory view of the authenticated identity.
//
// A session is either fully populated or absent; Complete guards the
// required fields and the SessionStore refuses to expose anything partial.
type Session struct {
	ID           string  `json:"id"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	ProfileImage *string `json:"profileImage,omitempty"`
	IsBlocked    bool    `json:"isBlocked"`
	IsVerified   *bool   `json:"isVerified,omitempty"`
}

// Complete reports whether every required identity field is populated.
func (s *Session) Complete() bool {
	return s != nil && s.ID != "" && s.FullName != "" && s.Email != "" && s.Role != ""
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Envelope is the response wrapper every backend endpoint uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// StringList decodes either a JSON array of strings or a single
// comma-separated string. Older profile records store interests and
// visited countries as comma-joined text.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}

	var out []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// Traveler is a public traveler profile as returned by the backend.
type Traveler struct {
	ID               string     `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	ProfileImage     *string    `json:"profileImage,omitempty"`
	IsBlocked        bool       `json:"isBlocked"`
	IsVerified       *bool      `json:"isVerified,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	CurrentCity      string     `json:"currentCity,omitempty"`
	Interests        StringList `json:"interests,omitempty"`
	VisitedCountries StringList `json:"visitedCountries,omitempty"`
	CreatedAt        time.Time  `json:"createdAt,omitzero"`
}

// ProfileUpdate is the PATCH payload for a traveler's own profile.
// Nil fields are omitted and left unchanged server-side.
type ProfileUpdate struct {
	FullName         *string  `json:"fullName,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	CurrentCity      *string  `json:"currentCity,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	VisitedCountries []string `json:"visitedCountries,omitempty"`
	ProfileImage     *string  `json:"profileImage,omitempty"`
}

// TravelType categorizes who a plan is for.
type TravelType string

const (
	TravelSolo    TravelType = "SOLO"
	TravelFamily  TravelType = "FAMILY"
	TravelFriends TravelType = "FRIENDS"
)

// Visibility controls who can see a travel plan.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// TravelPlan is a published travel plan. The shape is server-defined;
// the client renders what it receives.
type TravelPlan struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Destination string     `json:"destination"`
	City        string     `json:"city,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	MinBudget   int        `json:"minBudget,omitempty"`
	MaxBudget   int        `json:"maxBudget,omitempty"`
	TravelType  TravelType `json:"travelType"`
	Description string     `json:"description,omitempty"`
	Visibility  Visibility `json:"visibility"`
	CreatedAt   time.Time  `json:"createdAt,omitzero"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
}

// TravelPlanInput is the create/update payload for a travel plan.
// Dates travel as "YYYY-MM-DD" strings, matching the backend's form contract.
type TravelPlanInput struct {
	Destination string     `json:"destination"`
	City        string     `json:"city,omitempty"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	MinBudget   int        `json:"minBudget,omitempty"`
	MaxBudget   int        `json:"maxBudget,omitempty"`
	TravelType  TravelType `json:"travelType"`
	Description string     `json:"description,omitempty"`
	Visibility  Visibility `json:"visibility,omitempty"`
}

// PlanFilter narrows the public travel plan listing.
type PlanFilter struct {
	Destination string
	TravelType  TravelType
	Page        int
	Limit       int
}

// TravelerFilter narrows the traveler listing.
type TravelerFilter struct {
	Search string
	Page   int
	Limit  int
}

// Review is a star rating and comment left on another traveler.
type Review struct {
	ID             string           `json:"id"`
	ReviewerID     string           `json:"reviewerId"`
	ReviewedUserID string           `json:"reviewedUserId"`
	Rating         int              `json:"rating"`
	Comment        string           `json:"comment,omitempty"`
	CreatedAt      time.Time        `json:"createdAt,omitzero"`
	UpdatedAt      time.Time        `json:"updatedAt,omitzero"`
	Reviewer       *ReviewerSummary `json:"reviewer,omitempty"`
}

// ReviewerSummary is the embedded reviewer card on a review.
type ReviewerSummary struct {
	ID           string  `json:"id"`
	FullName     string  `json:"fullName"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// ReviewInput is the create/update payload for a review.
type ReviewInput struct {
	ReviewedUserID string `json:"reviewedUserId,omitempty"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
}

// RatingStats aggregates a traveler's received ratings.
type RatingStats struct {
	UserID             string         `json:"userId"`
	AverageRating      float64        `json:"averageRating"`
	TotalReviews       int            `json:"totalReviews"`
	RatingDistribution map[string]int `json:"ratingDistribution,omitempty"`
}

// AdminStats is the moderation dashboard summary.
type AdminStats struct {
	TotalUsers   int `json:"totalUsers"`
	BlockedUsers int `json:"blockedUsers"`
	TotalPlans   int `json:"totalPlans"`
	TotalReviews int `json:"totalReviews"`
}

// AnalyticsPoint is one bucket of the admin analytics series.
type AnalyticsPoint struct {
	Date     string `json:"date"`
	NewUsers int    `json:"newUsers"`
	NewPlans int    `json:"newPlans"`
}

// SubscriptionPlan is a paid tier billing period.
type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "MONTHLY"
	PlanYearly  SubscriptionPlan = "YEARLY"
)

// CheckoutSession is the hosted payment page handle returned by the
// payment processor via the backend.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentVerification is the result of verifying a completed checkout.
type PaymentVerification struct {
	SessionID     string           `json:"sessionId"`
	PaymentStatus string           `json:"paymentStatus"`
	Plan          SubscriptionPlan `json:"plan,omitempty"`
	Verified      bool             `json:"verified"`
}

// UploadResult is the image host's response to a successful upload.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id,omitempty"`
}
