package repository

import (
	"painel_pedidos/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// Row models for the relational store. Column names follow the hosted
// schema (pedidos, financeiro, contatos, emails_salvos, itens_pedido).

type orderModel struct {
	ID                 string          `gorm:"column:id;primaryKey"`
	CreatedAt          time.Time       `gorm:"column:created_at;index"`
	Nome               string          `gorm:"column:nome;not null"`
	Email              string          `gorm:"column:email;not null"`
	Telefone           string          `gorm:"column:telefone;not null"`
	Status             string          `gorm:"column:status;not null;default:producao"`
	Total              decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null;default:0"`
	Observacao         *string         `gorm:"column:observacao"`
	CodigoRastreamento *string         `gorm:"column:codigo_rastreamento"`
	Endereco           *string         `gorm:"column:endereco"`
	Descricoes         []string        `gorm:"column:descricoes;serializer:json"`
}

func (orderModel) TableName() string { return "pedidos" }

type orderItemModel struct {
	ID            string          `gorm:"column:id;primaryKey"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	PedidoID      string          `gorm:"column:pedido_id;index"`
	ProdutoID     string          `gorm:"column:produto_id"`
	Quantidade    int             `gorm:"column:quantidade"`
	PrecoUnitario decimal.Decimal `gorm:"column:preco_unitario;type:numeric(12,2)"`
	Total         decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
}

func (orderItemModel) TableName() string { return "itens_pedido" }

type transactionModel struct {
	ID        string          `gorm:"column:id;primaryKey"`
	CreatedAt time.Time       `gorm:"column:created_at;index"`
	Tipo      string          `gorm:"column:tipo;not null"`
	Valor     decimal.Decimal `gorm:"column:valor;type:numeric(12,2);not null;default:0"`
	Data      time.Time       `gorm:"column:data"`
	Descricao string          `gorm:"column:descricao"`
	Categoria *string         `gorm:"column:categoria"`
}

func (transactionModel) TableName() string { return "financeiro" }

type contactModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	Nome      string    `gorm:"column:nome"`
	Email     string    `gorm:"column:email;index"`
	Telefone  string    `gorm:"column:telefone"`
	Mensagem  string    `gorm:"column:mensagem"`
}

func (contactModel) TableName() string { return "contatos" }

type savedEmailModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	Email     string    `gorm:"column:email;not null"`
	Nome      string    `gorm:"column:nome"`
	Origem    string    `gorm:"column:origem;not null"`
	PedidoID  *string   `gorm:"column:pedido_id;index"`
	ContatoID *string   `gorm:"column:contato_id"`
}

func (savedEmailModel) TableName() string { return "emails_salvos" }

// Models lists every row model, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{&orderModel{}, &orderItemModel{}, &transactionModel{}, &contactModel{}, &savedEmailModel{}}
}

func toOrderModel(o entities.Order) orderModel {
	return orderModel{
		ID:                 o.ID,
		CreatedAt:          o.CreatedAt,
		Nome:               o.Name,
		Email:              o.Email,
		Telefone:           o.Phone,
		Status:             string(o.Status),
		Total:              o.Total,
		Observacao:         o.Note,
		CodigoRastreamento: o.TrackingCode,
		Endereco:           o.Address,
		Descricoes:         o.Descriptions,
	}
}

func fromOrderModel(m orderModel) entities.Order {
	return entities.Order{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt,
		Name:         m.Nome,
		Email:        m.Email,
		Phone:        m.Telefone,
		Status:       entities.OrderStatus(m.Status),
		Total:        m.Total,
		Note:         m.Observacao,
		TrackingCode: m.CodigoRastreamento,
		Address:      m.Endereco,
		Descriptions: m.Descricoes,
	}
}

func toTransactionModel(t entities.Transaction) transactionModel {
	return transactionModel{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Tipo:      string(t.Type),
		Valor:     t.Amount,
		Data:      t.Date,
		Descricao: t.Description,
		Categoria: t.Category,
	}
}

func fromTransactionModel(m transactionModel) entities.Transaction {
	return entities.Transaction{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Type:        entities.TransactionType(m.Tipo),
		Amount:      m.Valor,
		Date:        m.Data,
		Description: m.Descricao,
		Category:    m.Categoria,
	}
}

func toContactModel(c entities.Contact) contactModel {
	return contactModel{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		Mensagem:  c.Message,
	}
}

func fromContactModel(m contactModel) entities.Contact {
	return entities.Contact{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Name:      m.Nome,
		Email:     m.Email,
		Phone:     m.Telefone,
		Message:   m.Mensagem,
	}
}

func toSavedEmailModel(e entities.SavedEmail) savedEmailModel {
	return savedEmailModel{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Email:     e.Email,
		Nome:      e.Name,
		Origem:    string(e.Origin),
		PedidoID:  e.OrderID,
		ContatoID: e.ContactID,
	}
}

func fromSavedEmailModel(m savedEmailModel) entities.SavedEmail {
	return entities.SavedEmail{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Email:     m.Email,
		Name:      m.Nome,
		Origin:    entities.SavedEmailOrigin(m.Origem),
		OrderID:   m.PedidoID,
		ContactID: m.ContatoID,
	}
}
