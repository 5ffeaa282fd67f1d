package venues

import (
	"eventfinder_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the venue lookup endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Lookup handles GET /api/v1/venues?name=...
// A 200 with a null body means the name matched no venue.
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	_ = c.ShouldBindQuery(&req)

	info, err := h.svc.Find(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, info)
}
