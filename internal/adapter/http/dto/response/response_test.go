package response

import (
	"errors"
	"testing"
	"time"

	"painel_pedidos/internal/dashboard"
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	note := "frágil"
	o := entities.Order{
		ID:        "p-1",
		CreatedAt: now,
		Name:      "Ana",
		Email:     "ana@x.com",
		Phone:     "111",
		Status:    entities.OrderStatusPronto,
		Total:     decimal.RequireFromString("149.90"),
		Note:      &note,
	}

	res := FromOrder(o)
	if res.ID != "p-1" || res.Nome != "Ana" || res.Telefone != "111" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "pronto" || res.Total != 149.9 {
		t.Fatalf("unexpected status/total: %+v", res)
	}
	if res.Observacao == nil || *res.Observacao != note || res.CodigoRastreamento != nil {
		t.Fatalf("unexpected optional fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %v", res.CreatedAt)
	}
}

func TestFromDeleteReport(t *testing.T) {
	r := usecase.DeleteReport{
		OrderID:   "p-1",
		OrderName: "Ana",
		Steps: []usecase.DeleteStep{
			{Name: usecase.StepDeleteSavedEmails, Err: errors.New("timeout")},
			{Name: usecase.StepDeleteOrderItems},
		},
	}

	res := FromDeleteReport(r)
	if res.ID != "p-1" || res.Mensagem != `Pedido "Ana" excluído com sucesso` {
		t.Fatalf("unexpected report: %+v", res)
	}
	if len(res.Etapas) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(res.Etapas))
	}
	if res.Etapas[0].OK || res.Etapas[0].Erro != "timeout" {
		t.Fatalf("unexpected failed step: %+v", res.Etapas[0])
	}
	if !res.Etapas[1].OK || res.Etapas[1].Erro != "" {
		t.Fatalf("unexpected ok step: %+v", res.Etapas[1])
	}
}

func TestFromSnapshot(t *testing.T) {
	s := dashboard.Snapshot{
		Filter:     entities.OrderStatusAll,
		InProgress: []entities.Order{{ID: "p-1", Status: entities.OrderStatusProducao}},
		Completed:  []entities.Order{{ID: "p-2", Status: entities.OrderStatusEnviado}},
		Totals: dashboard.Totals{
			Income:  decimal.NewFromInt(300),
			Expense: decimal.NewFromInt(120),
			Profit:  decimal.NewFromInt(180),
		},
		Mode: dashboard.Editing("p-1"),
	}

	res := FromSnapshot(s)
	if res.Filtro != "todos" || len(res.EmAndamento) != 1 || len(res.Concluidos) != 1 {
		t.Fatalf("unexpected snapshot: %+v", res)
	}
	if res.Totais.Receitas != 300 || res.Totais.Despesas != 120 || res.Totais.Lucro != 180 {
		t.Fatalf("unexpected totals: %+v", res.Totais)
	}
	if res.Formulario.Modo != "editing" || res.Formulario.PedidoID != "p-1" {
		t.Fatalf("unexpected mode: %+v", res.Formulario)
	}
	if res.Transacoes == nil || res.Contatos == nil {
		t.Fatalf("empty collections must encode as arrays: %+v", res)
	}
}

func TestFromMode_Creating(t *testing.T) {
	res := FromMode(dashboard.Creating())
	if res.Modo != "creating" || res.PedidoID != "" {
		t.Fatalf("unexpected mode: %+v", res)
	}
}

func TestFromSavedEmail(t *testing.T) {
	orderID := "p-1"
	res := FromSavedEmail(entities.SavedEmail{ID: "e-1", Email: "a@x.com", Origin: entities.SavedEmailOriginPedido, OrderID: &orderID})
	if res.Origem != "pedido" || res.PedidoID == nil || *res.PedidoID != "p-1" || res.ContatoID != nil {
		t.Fatalf("unexpected saved email: %+v", res)
	}
}

func TestFromNotifications(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := FromNotifications([]dashboard.Notification{{Title: "Erro", Message: "falhou", Variant: dashboard.VariantDestructive, At: at}})
	if len(res) != 1 || res[0].Titulo != "Erro" || res[0].Variante != "destructive" || !res[0].Em.Equal(at) {
		t.Fatalf("unexpected notifications: %+v", res)
	}
}
