package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/nkondratev/doctasks/internal/adapter/utils"
	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/handlers"
)

var apiAuthToken string

// SetAuthToken installs the bearer token checked by Authenticate. An empty
// token disables authentication (local development).
func SetAuthToken(token string) {
	apiAuthToken = token
}

// InjectTrace propagates the caller's X-Trace-Id or mints a new one, putting
// it on the request context and echoing it back on the response.
func InjectTrace(rr requestResponseStruct) (requestResponseStruct, bool) {
	traceId := rr.request.Header.Get("X-Trace-Id")
	if traceId == "" {
		traceId = utils.GetNewUUID()
	}

	ctx := context.WithValue(rr.request.Context(), config.TRACE_ID_KEY, traceId)
	rr.request = rr.request.WithContext(ctx)
	rr.writer.Header().Set("X-Trace-Id", traceId)
	return rr, true
}

// Authenticate enforces a constant-time bearer token check.
func Authenticate(rr requestResponseStruct) (requestResponseStruct, bool) {
	if apiAuthToken == "" {
		return rr, true
	}

	header := rr.request.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		logMW.Warn("Missing bearer token", "path", rr.request.URL.Path)
		handlers.WriteErrorResponse(rr.writer, http.StatusUnauthorized, "", "missing bearer token")
		return rr, false
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(apiAuthToken)) != 1 {
		logMW.Warn("Invalid bearer token", "path", rr.request.URL.Path)
		handlers.WriteErrorResponse(rr.writer, http.StatusUnauthorized, "", "invalid bearer token")
		return rr, false
	}
	return rr, true
}

// RateLimit rejects callers that exceed the per-IP request budget.
func RateLimit(rr requestResponseStruct) (requestResponseStruct, bool) {
	limiter := getIPRateLimiter().getLimiter(clientIP(rr.request))
	if !limiter.Allow() {
		logMW.Warn("Rate limit exceeded", "ip", clientIP(rr.request))
		handlers.WriteErrorResponse(rr.writer, http.StatusTooManyRequests, "", "rate limit exceeded")
		return rr, false
	}
	return rr, true
}
