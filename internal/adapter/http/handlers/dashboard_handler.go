package handlers

import (
	"net/http"
	response "painel_pedidos/internal/adapter/http/dto/response"
	"painel_pedidos/internal/dashboard"
	"painel_pedidos/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	controller    dashboard.IController
	notifications dashboard.NotificationLog
}

func NewDashboardHandler(controller dashboard.IController, notifications dashboard.NotificationLog) *DashboardHandler {
	return &DashboardHandler{controller: controller, notifications: notifications}
}

// GetDashboard godoc
// @Summary  Dashboard view
// @Tags     dashboard
// @Produce  json
// @Param    status  query     string  false  "producao, pronto, enviado or todos"
// @Success  200     {object}  response.DashboardResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	filter, ok := statusFilter(c)
	if !ok {
		abortWith(c, errInvalidStatusFilter)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(h.controller.Snapshot(filter)))
}

// Reload godoc
// @Summary  Reload every collection from the store
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /dashboard/reload [post]
func (h *DashboardHandler) Reload(c *gin.Context) {
	if err := h.controller.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(h.controller.Snapshot(entities.OrderStatusAll)))
}

// ListNotifications godoc
// @Summary  Recent notifications, newest first
// @Tags     dashboard
// @Produce  json
// @Success  200  {array}  response.NotificationResponse
// @Router   /notifications [get]
func (h *DashboardHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromNotifications(h.notifications.Recent()))
}
