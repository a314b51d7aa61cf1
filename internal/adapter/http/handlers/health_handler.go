package handlers

import (
	"net/http"
	"painel_pedidos/internal/usecase/interfaces"
	"painel_pedidos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	store  interfaces.IStoreHealth
	logger *zap.Logger
}

func NewHealthHandler(store interfaces.IStoreHealth, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{store: store, logger: logger.Named("health")}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health godoc
// @Summary  Store connectivity check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  pkg.HTTPError
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("store ping failed", zap.Error(err))
		abortWith(c, pkg.NewDomainError("STORE_UNAVAILABLE", "Store is unreachable", err, http.StatusServiceUnavailable))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
