// Package hello serves GET /api/hello, the endpoint everything else in this
// repo exists to dispatch, parse for, and guard.
package hello

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/schanne-job/pure-go-rest-api/internal/querystring"
)

// DefaultName is used when the request carries no name parameter.
const DefaultName = "Anonymous"

// Handler greets the caller by the name query parameter, falling back to
// DefaultName. If the parameter repeats, the first value wins. Method
// filtering is the router's job; this handler assumes it only sees GET.
func Handler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := querystring.Parse(r.URL.RawQuery)
		name := params.GetDefault("name", DefaultName)

		logger.Debug("greeting", "name", name)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "Hello %s!", name)
	}
}
