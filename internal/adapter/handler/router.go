package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/followupdev/meeting-followup/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	meetingHandler    *Meeting
	actionItemHandler *ActionItem
	briefHandler      *Brief
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, actionItemHandler *ActionItem, briefHandler *Brief) *Router {
	return &Router{
		cfg:               cfg,
		meetingHandler:    meetingHandler,
		actionItemHandler: actionItemHandler,
		briefHandler:      briefHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", Health)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupActionItemRoutes(v1)
	rt.setupBriefRoutes(v1)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.POST("/sync", rt.meetingHandler.Sync)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.PATCH("/:id/status", rt.meetingHandler.UpdateStatus)
	meetingGroup.POST("/:id/process", rt.meetingHandler.Process)
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	itemGroup := g.Group("/action-items")

	itemGroup.GET("", rt.actionItemHandler.List)
	itemGroup.POST("", rt.actionItemHandler.Create)
	itemGroup.GET("/:id", rt.actionItemHandler.Get)
	itemGroup.PATCH("/:id", rt.actionItemHandler.Update)
	itemGroup.DELETE("/:id", rt.actionItemHandler.Reject)
	itemGroup.POST("/:id/confirm", rt.actionItemHandler.Confirm)
	itemGroup.POST("/:id/execute", rt.actionItemHandler.Execute)
}

// setupBriefRoutes configures the daily brief route
func (rt *Router) setupBriefRoutes(g *echo.Group) {
	g.GET("/brief", rt.briefHandler.Get)
}
