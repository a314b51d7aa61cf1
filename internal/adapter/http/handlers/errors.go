package handlers

import (
	"errors"
	"net/http"
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"
	"painel_pedidos/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload       = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)
	errInvalidContactPayload     = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)
	errInvalidSavedEmailPayload  = pkg.NewDomainErrorSimple("INVALID_SAVED_EMAIL_INPUT", "Invalid saved e-mail payload", http.StatusBadRequest)
	errInvalidStatusFilter       = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Invalid status filter", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondError(c *gin.Context, err error) {
	abortWith(c, mapError(err))
}

func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", verr.Reason, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyResult):
		return pkg.NewDomainError("EMPTY_STORE_RESULT", "The store returned no data", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrStore):
		return pkg.NewDomainError("STORE_ERROR", "The store rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// statusFilter reads ?status=. Empty means every status.
func statusFilter(c *gin.Context) (entities.OrderStatus, bool) {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" || raw == entities.OrderStatusAll {
		return entities.OrderStatusAll, true
	}
	s := entities.OrderStatus(raw)
	return s, s.Valid()
}
