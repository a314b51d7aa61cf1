package handlers

import (
	"net/http"
	request "painel_pedidos/internal/adapter/http/dto/request"
	response "painel_pedidos/internal/adapter/http/dto/response"
	"painel_pedidos/internal/dashboard"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	controller dashboard.IController
}

func NewTransactionHandler(controller dashboard.IController) *TransactionHandler {
	return &TransactionHandler{controller: controller}
}

// ListTransactions godoc
// @Summary  List ledger entries
// @Tags     transactions
// @Produce  json
// @Success  200  {array}  response.TransactionResponse
// @Router   /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTransactions(h.controller.Transactions()))
}

// Totals godoc
// @Summary  Income, expense and profit
// @Tags     transactions
// @Produce  json
// @Success  200  {object}  response.TotalsResponse
// @Router   /transactions/totals [get]
func (h *TransactionHandler) Totals(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTotals(dashboard.ComputeTotals(h.controller.Transactions())))
}

// CreateTransaction godoc
// @Summary  Add a ledger entry
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    transaction  body      request.TransactionRequest  true  "Transaction"
// @Success  201          {object}  response.TransactionResponse
// @Failure  400          {object}  pkg.HTTPError
// @Failure  502          {object}  pkg.HTTPError
// @Router   /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}
	fields, err := payload.ToFields()
	if err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}

	tx, err := h.controller.AddTransaction(c.Request.Context(), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// UpdateTransaction godoc
// @Summary      Update a ledger entry
// @Description  Only the fields present in the body are written. The stored date is kept when data is omitted.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id           path      string                            true  "Transaction ID"
// @Param        transaction  body      request.TransactionUpdateRequest  true  "Changed fields"
// @Success      200          {object}  response.TransactionResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var payload request.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}

	tx, err := h.controller.UpdateTransaction(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// DeleteTransaction godoc
// @Summary  Remove a ledger entry
// @Tags     transactions
// @Param    id  path  string  true  "Transaction ID"
// @Success  204
// @Failure  502  {object}  pkg.HTTPError
// @Router   /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.controller.RemoveTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
