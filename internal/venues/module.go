package venues

import (
	apphttp "eventfinder_backend/internal/http"
	"eventfinder_backend/platform/logger"
	"eventfinder_backend/platform/validator"
)

// Module wires the venue lookup HTTP route.
type Module struct {
	handler *Handler
}

func NewModule(api VenueAPI, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(api, val, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "venues"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/venues", m.handler.Lookup)
}

var _ apphttp.Module = (*Module)(nil)
