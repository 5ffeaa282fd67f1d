package events

import (
	"eventfinder_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the event search, detail and suggest endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/events/search?keyword=&distance=&category=&lat=&lng=
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	_ = c.ShouldBindQuery(&req)

	rows, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, rows)
}

// Detail handles GET /api/v1/events/:id
func (h *Handler) Detail(c *gin.Context) {
	detail, err := h.svc.GetDetail(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, detail)
}

// Suggest handles GET /api/v1/events/suggest?keyword=
func (h *Handler) Suggest(c *gin.Context) {
	suggestions, err := h.svc.Suggest(c.Request.Context(), c.Query("keyword"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, suggestions)
}
