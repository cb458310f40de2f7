package httpapi

import (
	"encoding/json"
	"net/http"
)

// Problem types for RFC 7807 responses.
const (
	problemTypeNotFound    = "https://brewmatch.dev/problems/not-found"
	problemTypeBadRequest  = "https://brewmatch.dev/problems/bad-request"
	problemTypeInternal    = "https://brewmatch.dev/problems/internal-error"
	problemTypeUnavailable = "https://brewmatch.dev/problems/unavailable"
	problemTypeRateLimited = "https://brewmatch.dev/problems/rate-limited"
)

// Problem is an RFC 7807 Problem Details body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func writeProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func notFound(w http.ResponseWriter, r *http.Request, detail string) {
	writeProblem(w, Problem{
		Type:     problemTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: r.URL.Path,
	})
}

func badRequest(w http.ResponseWriter, r *http.Request, detail string) {
	writeProblem(w, Problem{
		Type:     problemTypeBadRequest,
		Title:    "Bad Request",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: r.URL.Path,
	})
}

func internalError(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, Problem{
		Type:     problemTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Instance: r.URL.Path,
	})
}

func storeUnavailable(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, Problem{
		Type:     problemTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   "equipment store is not configured",
		Instance: r.URL.Path,
	})
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	writeProblem(w, Problem{
		Type:     problemTypeRateLimited,
		Title:    "Too Many Requests",
		Status:   http.StatusTooManyRequests,
		Instance: r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
