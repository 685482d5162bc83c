// Package api implements the HTTP client for the Coach Assistant backend.
//
// # Gateway Client
//
// [Client] is the single choke point for all HTTP calls. It attaches the bearer
// token from a [TokenSource], throttles with a [rate.Limiter], and normalizes
// every response through the backend's JSON envelope:
//
//	{ "success": bool, "data": ..., "message": "..." }
//
// Responses whose body is not the expected envelope (HTML error pages, proxy
// crashes) surface as an [*APIError] carrying the status code and a truncated
// snippet of the raw body.
//
// # Domain Services
//
// One stateless service per resource family (AuthService, AthleteService,
// AttendanceService, PlanningService, SessionService, ExerciseService,
// MedicalService, VideoService, UserService, DashboardService) maps
// application operations onto gateway calls. Every method follows the same
// discipline: (ctx, ...) (T, error). No service retries; retry policy belongs
// to callers.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotAuthenticated] : 401 from the backend (absent or expired token)
//   - [shared.ErrNotFound] : 404 from the backend
//   - [shared.ErrMalformedResponse] : non-JSON body where the envelope was expected
//   - [shared.ErrAPIRequest] : transport failure
package api
