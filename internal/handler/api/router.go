package api

import (
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"

	"github.com/labstack/echo/v4"
)

// Router bundles the individual handlers into one route registrar for the
// server wrapper.
type Router struct {
	handlers []xhttp.Handler
}

func NewRouter(handlers ...xhttp.Handler) *Router {
	return &Router{handlers: handlers}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
