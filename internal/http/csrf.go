package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFTokenHeader carries the token both ways: every response exposes a
// fresh one, and unsafe requests must send it back.
const CSRFTokenHeader = "X-CSRF-Token"

// CSRFMiddleware protects unsafe methods with gorilla/csrf. Safe methods
// (GET, HEAD, OPTIONS, TRACE) pass and receive the token in CSRFTokenHeader.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.RequestHeader(CSRFTokenHeader),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Header(CSRFTokenHeader, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		req := c.Request
		if !secure {
			// Plain HTTP requests skip the Origin/Referer check.
			req = csrf.PlaintextHTTPRequest(req)
		}
		handler.ServeHTTP(c.Writer, req)

		if !passed {
			c.Abort()
		}
	}
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing","code":"csrf_failed"}`))
}
