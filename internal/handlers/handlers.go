// Package handlers contains the HTTP handlers of the redirect service.
package handlers

import (
	"net/http"

	"appredirect/internal/redirect"

	"go.uber.org/zap"
)

// Controller serves the redirect endpoint. Its destinations are read-only after construction.
type Controller struct {
	dest  redirect.Destinations
	sugar *zap.SugaredLogger
}

// NewController creates a Controller for the given destinations.
func NewController(dest redirect.Destinations, sugar *zap.SugaredLogger) *Controller {
	return &Controller{dest: dest, sugar: sugar}
}

// AppStoreRedirect sends the client to the store matching its User-Agent.
// A missing header is treated as an empty one and leads to the web destination.
func (con *Controller) AppStoreRedirect() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		platform, target := con.dest.Resolve(req.UserAgent())

		con.sugar.Debugw("redirect", "platform", platform, "location", target)

		http.Redirect(res, req, target, http.StatusFound)
	}
}

// PingHandler reports that the service is up.
func (con *Controller) PingHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain; charset=utf-8")
		res.WriteHeader(http.StatusOK)
		if _, err := res.Write([]byte("OK")); err != nil {
			con.sugar.Errorf("ping write error: %v", err)
		}
	}
}
