package core

// Route is a client-side navigation destination.
type Route string

const (
	RouteLanding        Route = "/"
	RouteLogin          Route = "/login"
	RouteExplore        Route = "/explore"
	RouteAdminDashboard Route = "/admin/dashboard"
)

// DecideLandingRoute maps the current session to the post-authentication
// landing destination. It is total: every input, including unknown role
// values, resolves to a route.
//
// A blocked session routes as if unauthenticated while the session itself
// stays populated, so the account-blocked notice can still render.
func DecideLandingRoute(session *Session) Route {
	if session == nil || session.IsBlocked {
		return RouteLanding
	}

	switch ParseRole(string(session.Role)) {
	case RoleAdmin:
		return RouteAdminDashboard
	case RoleUser:
		return RouteExplore
	default:
		return RouteLanding
	}
}
