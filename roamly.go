package roamly

import (
	"net/http"
	"time"

	"github.com/roamly/roamly/core"
	"github.com/roamly/roamly/services"
)

// interfaces
type (
	ResponseCache  = core.ResponseCache
	CacheWithStats = core.CacheWithStats
)

// structs
type (
	Config      = core.Config
	CacheConfig = core.CacheConfig
	CacheStats  = core.CacheStats

	SessionStore = core.SessionStore
)

type (
	Session          = core.Session
	Credentials      = core.Credentials
	Role             = core.Role
	Route            = core.Route
	Traveler         = core.Traveler
	ProfileUpdate    = core.ProfileUpdate
	TravelPlan       = core.TravelPlan
	TravelPlanInput  = core.TravelPlanInput
	PlanFilter       = core.PlanFilter
	TravelerFilter   = core.TravelerFilter
	Review           = core.Review
	ReviewInput      = core.ReviewInput
	RatingStats      = core.RatingStats
	AdminStats       = core.AdminStats
	AnalyticsPoint   = core.AnalyticsPoint
	SubscriptionPlan = core.SubscriptionPlan
	CheckoutSession  = core.CheckoutSession
	UploadResult     = core.UploadResult
	APIError         = core.APIError
)

const (
	RoleUser  = core.RoleUser
	RoleAdmin = core.RoleAdmin

	RouteLanding        = core.RouteLanding
	RouteLogin          = core.RouteLogin
	RouteExplore        = core.RouteExplore
	RouteAdminDashboard = core.RouteAdminDashboard

	PlanMonthly = core.PlanMonthly
	PlanYearly  = core.PlanYearly
)

const defaultUserAgent = "roamly-go/1.0"

// Constructors & helpers (convenience re-exports)
var (
	NewSessionStore    = core.NewSessionStore
	NewInMemoryCache   = core.NewInMemoryCache
	ParseRole          = core.ParseRole
	DecideLandingRoute = core.DecideLandingRoute
)

var (
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrSessionExpired     = core.ErrSessionExpired
	ErrSessionIncomplete  = core.ErrSessionIncomplete
	ErrNetwork            = core.ErrNetwork
	ErrCacheMiss          = core.ErrCacheMiss
)

var (
	ErrBaseURLRequired      = core.ErrBaseURLRequired
	ErrUploadsNotConfigured = core.ErrUploadsNotConfigured
)

// Client bundles the session store with every domain service behind a
// single backend connection.
type Client struct {
	Store *core.SessionStore

	Auth     *services.AuthGateway
	Users    *services.UsersService
	Plans    *services.TravelPlansService
	Reviews  *services.ReviewsService
	Admin    *services.AdminService
	Payments *services.PaymentsService
	Uploads  *services.UploadsService

	transport *services.Transport
	cache     core.ResponseCache
}

// CacheStats reports read-cache counters when the configured cache tracks
// them, and nil otherwise.
func (c *Client) CacheStats() *CacheStats {
	if tracked, ok := c.cache.(core.CacheWithStats); ok {
		stats := tracked.Stats()
		return &stats
	}
	return nil
}

func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	// Set Defaults

	cache := config.Cache
	if cache == nil && !config.DisableCache {
		cacheConfig := core.CacheConfig{
			TTL:     time.Minute,
			MaxSize: 200,
		}
		if config.CacheConfig != nil {
			cacheConfig = *config.CacheConfig
		}
		cache = core.NewInMemoryCache(cacheConfig)
	}

	httpClient := config.HTTPClient
	if config.Timeout > 0 {
		if httpClient == nil {
			httpClient = &http.Client{}
		}
		httpClient.Timeout = config.Timeout
	}

	store := core.NewSessionStore()

	transport, err := services.NewTransport(config.BaseURL, httpClient, store, cache)
	if err != nil {
		return nil, err
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	transport.SetUserAgent(userAgent)

	return &Client{
		Store:     store,
		Auth:      services.NewAuthGateway(transport),
		Users:     services.NewUsersService(transport),
		Plans:     services.NewTravelPlansService(transport),
		Reviews:   services.NewReviewsService(transport),
		Admin:     services.NewAdminService(transport),
		Payments:  services.NewPaymentsService(transport),
		Uploads:   services.NewUploadsService(config.UploadURL, config.UploadPreset, config.HTTPClient),
		transport: transport,
		cache:     cache,
	}, nil
}
