// Package auth implements the HTTP Basic credential gate. The gate is a
// middleware that decodes the Authorization header itself and delegates the
// actual check to a Verifier, so swapping the toy static store for a real
// one never touches the gate.
package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// Verifier decides whether a username/password pair is acceptable.
type Verifier interface {
	Verify(username, password string) bool
}

// VerifierFunc adapts a plain function to the Verifier interface.
type VerifierFunc func(username, password string) bool

func (f VerifierFunc) Verify(username, password string) bool { return f(username, password) }

// StaticCredentials accepts exactly one username/password pair, compared
// verbatim and case-sensitively. It is a toy: single user, no hashing, no
// timing-attack mitigation. Anything beyond a demo wants a real store behind
// the Verifier interface instead.
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Verify(username, password string) bool {
	return username == c.Username && password == c.Password
}

// Basic gates a handler behind HTTP Basic authentication. A request with no
// Authorization header, a non-Basic scheme, an undecodable payload, or
// credentials the verifier rejects is answered with 401 and a
// WWW-Authenticate challenge for realm; the wrapped handler never runs.
func Basic(realm string, verifier Verifier, logger *log.Logger) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := decodeBasic(r.Header.Get("Authorization"))
			if !ok {
				logger.Debug("credentials missing or malformed", "path", r.URL.Path)
				unauthorized(w, challenge)
				return
			}
			if !verifier.Verify(username, password) {
				logger.Debug("credentials rejected", "path", r.URL.Path, "username", username)
				unauthorized(w, challenge)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, challenge string) {
	w.Header().Set("WWW-Authenticate", challenge)
	w.WriteHeader(http.StatusUnauthorized)
}

// decodeBasic extracts the username and password from an Authorization
// header value. The scheme match is case-insensitive per RFC 7617; the
// credentials themselves are returned untouched.
func decodeBasic(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
