package events

import (
	apphttp "eventfinder_backend/internal/http"
	"eventfinder_backend/platform/logger"
	"eventfinder_backend/platform/validator"
)

// Module wires the event search, detail and suggest HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(api DiscoveryAPI, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(api, val, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "events"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/events")
	group.GET("/search", m.handler.Search)
	group.GET("/suggest", m.handler.Suggest)
	group.GET("/:id", m.handler.Detail)
}

var _ apphttp.Module = (*Module)(nil)
