package handlers

import (
	"os"
	"testing"

	request "painel_pedidos/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
