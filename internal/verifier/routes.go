// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package verifier

import (
	"net/http"
)

// register provided routes to http.ServerMux
func registerRoutes(
	mux *http.ServeMux,
	routes map[string]http.Handler,
) {
	for route, handler := range routes {
		mux.Handle(route, handler)
	}
}

func (v *Verifier) addRoutes() map[string]http.Handler {
	routes := make(map[string]http.Handler)

	routes["POST /verify-turnstile"] = http.HandlerFunc(v.verify)
	routes["OPTIONS /verify-turnstile"] = http.HandlerFunc(preflight)
	routes["GET /health"] = http.HandlerFunc(health)

	return routes
}

// withCORS adds the permissive headers browsers need to call the
// service from any origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		next.ServeHTTP(w, r)
	})
}
