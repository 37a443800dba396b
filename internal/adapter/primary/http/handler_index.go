package http

import "net/http"

// IndexHandler handles GET / with a route listing. Because the root pattern
// matches every path the mux knows nothing else about, it also produces the
// 404 for unknown paths.
type IndexHandler struct{}

// NewIndexHandler creates the root route handler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// ServeHTTP describes the available routes.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondJSON(w, http.StatusNotFound, ErrorResponse{
			Error: "not found",
			Code:  "NOT_FOUND",
		})
		return
	}

	respondJSON(w, http.StatusOK, RoutesResponse{
		Service: "tiktok-server",
		Routes: map[string]string{
			"POST /webhooks/shopify/orders-create": "receive Shopify order webhooks",
			"GET /health":                          "process and configuration status",
			"GET /metrics":                         "prometheus metrics",
		},
	})
}
