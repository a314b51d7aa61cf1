package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"painel_pedidos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSQLiteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Log:      config.LogConfig{SQLLevel: "silent"},
		Store:    config.StoreConfig{Driver: config.DriverSQLite, AutoMigrate: true},
		Database: config.DatabaseConfig{Path: ":memory:"},
	}
	st, err := OpenStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	router, err := NewRouter(context.Background(), st, zap.NewNop())
	require.NoError(t, err)
	return router
}

func call(t *testing.T, r *gin.Engine, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}}, zap.NewNop())
	assert.Error(t, err)
}

func TestRouter_Health(t *testing.T) {
	r := newSQLiteRouter(t)

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/ping", "", nil))
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/health", "", nil))
}

func TestRouter_OrderLifecycle(t *testing.T) {
	r := newSQLiteRouter(t)

	var created map[string]any
	code := call(t, r, http.MethodPost, "/v1/orders", `{"nome":"Ana","email":"ana@x.com","telefone":"11999990000","total":120.5,"descricoes":["caneca"]}`, &created)
	require.Equal(t, http.StatusCreated, code)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "producao", created["status"])

	var contacts []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/contacts", "", &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "ana@x.com", contacts[0]["email"])
	assert.Equal(t, "Contato criado a partir do pedido", contacts[0]["mensagem"])

	var emails []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/saved-emails", "", &emails))
	require.Len(t, emails, 1)
	assert.Equal(t, id, emails[0]["pedido_id"])

	var edited map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPut, "/v1/orders/"+id, `{"nome":"Ana","email":"ana@x.com","telefone":"11999990000","status":"enviado","total":120.5,"codigo_rastreamento":"BR1"}`, &edited))
	assert.Equal(t, "enviado", edited["status"])

	var board struct {
		EmAndamento []map[string]any `json:"em_andamento"`
		Concluidos  []map[string]any `json:"concluidos"`
		Formulario  struct {
			Modo string `json:"modo"`
		} `json:"formulario"`
	}
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/dashboard", "", &board))
	assert.Empty(t, board.EmAndamento)
	assert.Len(t, board.Concluidos, 1)
	assert.Equal(t, "creating", board.Formulario.Modo)

	var report struct {
		Mensagem string `json:"mensagem"`
	}
	require.Equal(t, http.StatusOK, call(t, r, http.MethodDelete, "/v1/orders/"+id, "", &report))
	assert.Equal(t, `Pedido "Ana" excluído com sucesso`, report.Mensagem)

	emails = nil
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/saved-emails", "", &emails))
	assert.Empty(t, emails)

	var notifications []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/notifications", "", &notifications))
	require.NotEmpty(t, notifications)
	assert.Equal(t, "Pedido excluído", notifications[0]["titulo"])
}

func TestRouter_Transactions(t *testing.T) {
	r := newSQLiteRouter(t)

	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/transactions", `{"tipo":"receita","valor":300,"data":"2024-05-01","descricao":"venda"}`, nil))
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/transactions", `{"tipo":"despesa","valor":"120","data":"2024-05-02","descricao":"insumos","categoria":"material"}`, nil))

	var totals map[string]float64
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/transactions/totals", "", &totals))
	assert.Equal(t, 300.0, totals["receitas"])
	assert.Equal(t, 120.0, totals["despesas"])
	assert.Equal(t, 180.0, totals["lucro"])

	var txs []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/transactions", "", &txs))
	require.Len(t, txs, 2)
	assert.Equal(t, "receita", txs[0]["tipo"])
	assert.Equal(t, "geral", txs[0]["categoria"])
	assert.Equal(t, "material", txs[1]["categoria"])

	id, _ := txs[0]["id"].(string)
	date := txs[0]["data"]
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPut, "/v1/transactions/"+id, `{"descricao":"venda corrigida"}`, nil))

	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/transactions", "", &txs))
	require.Len(t, txs, 2)
	assert.Equal(t, "venda corrigida", txs[0]["descricao"])
	assert.Equal(t, date, txs[0]["data"])
	assert.Equal(t, 300.0, txs[0]["valor"])
	assert.Equal(t, "receita", txs[0]["tipo"])
}

func TestRouter_OrderUpdateReplacesMutableFields(t *testing.T) {
	r := newSQLiteRouter(t)

	var created map[string]any
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/orders", `{"nome":"Ana","email":"ana@x.com","telefone":"111","total":80,"codigo_rastreamento":"BR1"}`, &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	var body map[string]any
	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPut, "/v1/orders/"+id, `{"nome":"Ana","email":"ana@x.com","telefone":"111","total":80}`, &body))
	assert.Equal(t, "status inválido", body["message"])

	var edited map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPut, "/v1/orders/"+id, `{"nome":"Ana","email":"ana@x.com","telefone":"111","status":"pronto"}`, &edited))
	assert.Equal(t, "pronto", edited["status"])
	assert.Equal(t, 0.0, edited["total"])
	assert.Nil(t, edited["codigo_rastreamento"])
}

func TestRouter_OrderValidation(t *testing.T) {
	r := newSQLiteRouter(t)

	var body map[string]any
	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPost, "/v1/orders", `{"nome":"Ana"}`, &body))
	assert.Equal(t, "Nome, email e telefone são campos obrigatórios", body["message"])
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodPost, "/v1/orders/nope/edit", "", nil))
}
