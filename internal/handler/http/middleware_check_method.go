package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is known but the method is not. That
// response confirms the path exists, which is more than an anonymous
// caller probing /api/capsules with the wrong verb needs to know, so
// unsupported methods are answered with a plain 404 instead. Requests
// whose method is actually registered fall through to the router.
//
// Only routes whose pattern equals the raw request path are inspected;
// a parameterised pattern never matches here, and those requests get
// the 404 as well.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
