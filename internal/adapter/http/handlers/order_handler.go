package handlers

import (
	"net/http"
	request "painel_pedidos/internal/adapter/http/dto/request"
	response "painel_pedidos/internal/adapter/http/dto/response"
	"painel_pedidos/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// OrderHandler drives the order form of the dashboard.
//
// Orders are read from the loaded session. Writes go through the
// controller, which persists first and then updates its collections.

type OrderHandler struct {
	controller dashboard.IController
}

func NewOrderHandler(controller dashboard.IController) *OrderHandler {
	return &OrderHandler{controller: controller}
}

// ListOrders godoc
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "producao, pronto, enviado or todos"
// @Success      200     {array}   response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, ok := statusFilter(c)
	if !ok {
		abortWith(c, errInvalidStatusFilter)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(dashboard.FilterByStatus(h.controller.Orders(), filter)))
}

// SubmitOrder godoc
// @Summary      Submit the order form
// @Description  Creates an order, or updates the one being edited.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OrderResponse
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidOrderPayload)
		return
	}

	order, created, err := h.controller.SubmitOrder(c.Request.Context(), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOrder(order))
}

// EditOrder godoc
// @Summary      Open an order for editing
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/edit [post]
func (h *OrderHandler) EditOrder(c *gin.Context) {
	order, err := h.controller.EditOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelEdit godoc
// @Summary      Leave edit mode
// @Tags         orders
// @Success      204
// @Router       /orders/edit [delete]
func (h *OrderHandler) CancelEdit(c *gin.Context) {
	h.controller.CancelOrderEdit()
	c.Status(http.StatusNoContent)
}

// UpdateOrder godoc
// @Summary      Edit and save an order
// @Description  Replaces every mutable field. An omitted status is rejected with 400, an omitted total is saved as zero and omitted observacao or codigo_rastreamento are cleared.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Order ID"
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidOrderPayload)
		return
	}

	order, err := h.controller.UpdateOrder(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary      Delete an order
// @Description  Saved e-mails and line items are removed first. Their failures are reported as warnings.
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.DeleteOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	report, err := h.controller.RemoveOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeleteReport(report))
}
