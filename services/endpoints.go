package services

import "net/url"

// Backend endpoint paths, kept in one place so every fetcher goes through
// the same route table.
const (
	pathLogin        = "/auth/login"
	pathLogout       = "/auth/logout"
	pathSessionProbe = "/auth/session"

	pathUsers = "/users"

	pathTravelPlans       = "/travel-plans"
	pathTravelPlansPublic = "/travel-plans/public"
	pathTravelPlansMine   = "/travel-plans/me"

	pathReviews = "/reviews"

	pathAdminUsers       = "/admin/users"
	pathAdminStats       = "/admin/stats"
	pathAdminAnalytics   = "/admin/analytics"
	pathAdminTravelPlans = "/admin/travel-plans"

	pathCreateCheckoutSession = "/payments/create-checkout-session"
	pathVerifySession         = "/payments/verify-session"
)

func pathUser(id string) string {
	return pathUsers + "/" + url.PathEscape(id)
}

func pathTravelPlan(id string) string {
	return pathTravelPlans + "/" + url.PathEscape(id)
}

func pathReview(id string) string {
	return pathReviews + "/" + url.PathEscape(id)
}

func pathUserReviews(userID string) string {
	return pathReviews + "/user/" + url.PathEscape(userID)
}

func pathUserRatingStats(userID string) string {
	return pathUserReviews(userID) + "/average"
}

func pathAdminUserBlock(userID string) string {
	return pathAdminUsers + "/" + url.PathEscape(userID) + "/block"
}

func pathAdminTravelPlan(id string) string {
	return pathAdminTravelPlans + "/" + url.PathEscape(id)
}
