package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"
	mock_usecase "painel_pedidos/internal/usecase/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type controllerFixture struct {
	orders       *mock_usecase.MockIOrderUseCase
	transactions *mock_usecase.MockITransactionUseCase
	contacts     *mock_usecase.MockIContactUseCase
	feed         *Feed
	controller   *Controller
}

func newFixture(t *testing.T) *controllerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &controllerFixture{
		orders:       mock_usecase.NewMockIOrderUseCase(ctrl),
		transactions: mock_usecase.NewMockITransactionUseCase(ctrl),
		contacts:     mock_usecase.NewMockIContactUseCase(ctrl),
		feed:         NewFeed(10, nil),
	}
	f.controller = NewController(f.orders, f.transactions, f.contacts, f.feed, nil)
	return f
}

// load seeds the controller through a successful Load.
func (f *controllerFixture) load(t *testing.T, orders []entities.Order, txs []entities.Transaction, contacts []entities.Contact) {
	t.Helper()
	f.orders.EXPECT().List(gomock.Any()).Return(orders, nil)
	f.transactions.EXPECT().List(gomock.Any()).Return(txs, nil)
	f.contacts.EXPECT().List(gomock.Any()).Return(contacts, nil)
	require.NoError(t, f.controller.Load(context.Background()))
}

func (f *controllerFixture) lastNotification(t *testing.T) Notification {
	t.Helper()
	recent := f.feed.Recent()
	require.NotEmpty(t, recent)
	return recent[0]
}

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func order(id, name, email string, status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID: id, CreatedAt: created, Name: name, Email: email, Phone: "111",
		Status: status, Total: decimal.NewFromInt(50),
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestController_Load(t *testing.T) {
	t.Run("populates the three collections", func(t *testing.T) {
		f := newFixture(t)
		f.load(t,
			[]entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)},
			[]entities.Transaction{{ID: "t1"}},
			[]entities.Contact{{ID: "c1"}, {ID: "c2"}},
		)

		assert.Len(t, f.controller.Orders(), 1)
		assert.Len(t, f.controller.Transactions(), 1)
		assert.Len(t, f.controller.Contacts(), 2)
	})

	t.Run("one failure leaves everything empty", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("old", "Old", "o@x.com", entities.OrderStatusPronto)}, nil, nil)

		f.orders.EXPECT().List(gomock.Any()).Return([]entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)}, nil)
		f.transactions.EXPECT().List(gomock.Any()).Return(nil, &usecase.StoreError{Op: "list financeiro", Err: errors.New("timeout")})
		f.contacts.EXPECT().List(gomock.Any()).Return([]entities.Contact{{ID: "c1"}}, nil)

		err := f.controller.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrStore))
		assert.Empty(t, f.controller.Orders())
		assert.Empty(t, f.controller.Transactions())
		assert.Empty(t, f.controller.Contacts())

		n := f.lastNotification(t)
		assert.Equal(t, "Erro", n.Title)
		assert.Equal(t, "Não foi possível carregar os dados do banco de dados.", n.Message)
		assert.Equal(t, VariantDestructive, n.Variant)
	})
}

func TestController_SubmitOrder_Create(t *testing.T) {
	t.Run("prepends the order and links a contact", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("p0", "Bia", "bia@x.com", entities.OrderStatusPronto)}, nil,
			[]entities.Contact{{ID: "c0", Email: "bia@x.com"}})

		fields := entities.OrderFields{Name: "Ana", Email: "ana@x.com", Phone: "111", Total: dec("50")}
		saved := order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)
		f.orders.EXPECT().Create(gomock.Any(), fields).Return(saved, nil)
		f.contacts.EXPECT().Create(gomock.Any(), entities.ContactFields{
			Name: "Ana", Email: "ana@x.com", Phone: "111", Message: entities.DefaultContactMessage,
		}).Return(entities.Contact{ID: "c1", Name: "Ana", Email: "ana@x.com"}, nil)

		got, createdNew, err := f.controller.SubmitOrder(context.Background(), fields)
		require.NoError(t, err)
		assert.True(t, createdNew)
		assert.Equal(t, entities.OrderStatusProducao, got.Status)
		assert.True(t, got.Total.Equal(decimal.NewFromInt(50)))

		orders := f.controller.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, "p1", orders[0].ID)
		contacts := f.controller.Contacts()
		require.Len(t, contacts, 2)
		assert.Equal(t, "c1", contacts[1].ID)
		assert.False(t, f.controller.OrderMode().IsEditing())
		assert.Equal(t, "Pedido criado com sucesso!", f.lastNotification(t).Message)
	})

	t.Run("known e-mail does not create a contact", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, nil, nil, []entities.Contact{{ID: "c0", Email: "ana@x.com"}})

		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao), nil)
		f.contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := f.controller.SubmitOrder(context.Background(), entities.OrderFields{Name: "Ana", Email: "ana@x.com", Phone: "1"})
		require.NoError(t, err)
		assert.Len(t, f.controller.Contacts(), 1)
	})

	t.Run("linker failure is not surfaced", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, nil, nil, nil)

		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao), nil)
		f.contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{}, errors.New("insert failed"))

		_, _, err := f.controller.SubmitOrder(context.Background(), entities.OrderFields{Name: "Ana", Email: "ana@x.com", Phone: "1"})
		require.NoError(t, err)
		assert.Len(t, f.controller.Orders(), 1)
		assert.Empty(t, f.controller.Contacts())
		assert.Equal(t, "Sucesso", f.lastNotification(t).Title)
	})

	t.Run("gateway failure leaves state unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("p0", "Bia", "bia@x.com", entities.OrderStatusPronto)}, nil, nil)

		verr := &usecase.ValidationError{Entity: "pedido", Reason: "Nome, email e telefone são campos obrigatórios", Fields: []string{"nome"}}
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, verr)

		_, _, err := f.controller.SubmitOrder(context.Background(), entities.OrderFields{Email: "x@x.com", Phone: "1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrValidation))
		assert.Len(t, f.controller.Orders(), 1)

		n := f.lastNotification(t)
		assert.Equal(t, "Erro", n.Title)
		assert.Equal(t, "Nome, email e telefone são campos obrigatórios", n.Message)
	})
}

func TestController_SubmitOrder_Edit(t *testing.T) {
	t.Run("replaces in place and keeps id and created_at", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{
			order("p2", "Caio", "caio@x.com", entities.OrderStatusProducao),
			order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao),
		}, nil, []entities.Contact{{ID: "c1", Email: "ana@x.com"}})

		editing, err := f.controller.EditOrder("p1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", editing.Name)
		id, ok := f.controller.OrderMode().OrderID()
		require.True(t, ok)
		assert.Equal(t, "p1", id)

		fields := entities.OrderFields{Name: "Ana Maria", Email: "ana@x.com", Phone: "111", Status: entities.OrderStatusEnviado, Total: dec("75")}
		updated := order("p1", "Ana Maria", "ana@x.com", entities.OrderStatusEnviado)
		updated.Total = decimal.NewFromInt(75)
		f.orders.EXPECT().Update(gomock.Any(), "p1", fields.Update()).Return(updated, nil)

		got, createdNew, err := f.controller.SubmitOrder(context.Background(), fields)
		require.NoError(t, err)
		assert.False(t, createdNew)
		assert.Equal(t, "p1", got.ID)
		assert.True(t, got.CreatedAt.Equal(created))

		orders := f.controller.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, "p2", orders[0].ID)
		assert.Equal(t, "Ana Maria", orders[1].Name)
		assert.False(t, f.controller.OrderMode().IsEditing())
		assert.Equal(t, "Pedido atualizado com sucesso!", f.lastNotification(t).Message)
	})

	t.Run("edit of an unknown id is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, nil, nil, nil)

		_, err := f.controller.EditOrder("ghost")
		assert.True(t, errors.Is(err, usecase.ErrNotFound))
		assert.False(t, f.controller.OrderMode().IsEditing())
	})

	t.Run("failed update keeps editing mode", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)}, nil, nil)

		_, err := f.controller.EditOrder("p1")
		require.NoError(t, err)
		f.orders.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).Return(entities.Order{}, &usecase.EmptyResultError{Op: "update pedido"})

		_, _, err = f.controller.SubmitOrder(context.Background(), entities.OrderFields{Name: "A", Email: "a@x.com", Phone: "1", Status: entities.OrderStatusPronto})
		require.Error(t, err)
		assert.True(t, f.controller.OrderMode().IsEditing())
		assert.Equal(t, "Ana", f.controller.Orders()[0].Name)
		assert.Equal(t, "Erro ao salvar pedido. Tente novamente.", f.lastNotification(t).Message)

		f.controller.CancelOrderEdit()
		assert.False(t, f.controller.OrderMode().IsEditing())
	})
}

func TestController_UpdateOrder(t *testing.T) {
	t.Run("unknown id never reaches the gateway", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, nil, nil, nil)

		_, err := f.controller.UpdateOrder(context.Background(), "ghost", entities.OrderFields{})
		assert.True(t, errors.Is(err, usecase.ErrNotFound))
	})

	t.Run("failure restores the previous mode", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)}, nil, nil)

		f.orders.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).Return(entities.Order{}, &usecase.StoreError{Op: "update pedido", Err: errors.New("down")})
		_, err := f.controller.UpdateOrder(context.Background(), "p1", entities.OrderFields{Name: "A", Email: "ana@x.com", Phone: "1", Status: entities.OrderStatusPronto})
		require.Error(t, err)
		assert.False(t, f.controller.OrderMode().IsEditing())
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)},
			nil, []entities.Contact{{ID: "c1", Email: "ana@x.com"}})

		updated := order("p1", "Ana", "ana@x.com", entities.OrderStatusPronto)
		f.orders.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).Return(updated, nil)

		got, err := f.controller.UpdateOrder(context.Background(), "p1", entities.OrderFields{Name: "Ana", Email: "ana@x.com", Phone: "111", Status: entities.OrderStatusPronto})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPronto, got.Status)
		assert.Equal(t, entities.OrderStatusPronto, f.controller.Orders()[0].Status)
	})
}

func TestController_RemoveOrder(t *testing.T) {
	t.Run("missing order leaves the collection untouched", func(t *testing.T) {
		f := newFixture(t)
		seed := []entities.Order{
			order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao),
			order("p2", "Bia", "bia@x.com", entities.OrderStatusEnviado),
		}
		f.load(t, seed, nil, nil)
		before := f.controller.Orders()

		f.orders.EXPECT().Delete(gomock.Any(), "ghost").Return(usecase.DeleteReport{}, &usecase.NotFoundError{Entity: "pedido", ID: "ghost"})

		_, err := f.controller.RemoveOrder(context.Background(), "ghost")
		require.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrNotFound))
		assert.Equal(t, before, f.controller.Orders())
		assert.Equal(t, "Não foi possível excluir o pedido. Tente novamente.", f.lastNotification(t).Message)
	})

	t.Run("removes the order and reports cascade warnings", func(t *testing.T) {
		f := newFixture(t)
		f.load(t, []entities.Order{
			order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao),
			order("p2", "Bia", "bia@x.com", entities.OrderStatusEnviado),
		}, nil, nil)
		_, err := f.controller.EditOrder("p1")
		require.NoError(t, err)

		report := usecase.DeleteReport{OrderID: "p1", OrderName: "Ana", Steps: []usecase.DeleteStep{
			{Name: usecase.StepDeleteSavedEmails},
			{Name: usecase.StepDeleteOrderItems, Err: errors.New("permission denied")},
		}}
		f.orders.EXPECT().Delete(gomock.Any(), "p1").Return(report, nil)

		got, err := f.controller.RemoveOrder(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, got.Warnings(), 1)
		assert.Equal(t, usecase.StepDeleteOrderItems, got.Warnings()[0].Name)

		orders := f.controller.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, "p2", orders[0].ID)
		assert.False(t, f.controller.OrderMode().IsEditing())

		n := f.lastNotification(t)
		assert.Equal(t, "Pedido excluído", n.Title)
		assert.Equal(t, `Pedido "Ana" excluído com sucesso`, n.Message)
	})
}

func TestController_Transactions(t *testing.T) {
	f := newFixture(t)
	f.load(t, nil, []entities.Transaction{{ID: "t0", Type: entities.TransactionTypeReceita, Amount: decimal.NewFromInt(100)}}, nil)
	ctx := context.Background()

	fields := entities.TransactionFields{Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(40), Description: "frete"}
	f.transactions.EXPECT().Create(gomock.Any(), fields).
		Return(entities.Transaction{ID: "t1", Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(40), Description: "frete"}, nil)

	_, err := f.controller.AddTransaction(ctx, fields)
	require.NoError(t, err)
	txs := f.controller.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "t1", txs[1].ID)
	assert.Equal(t, "Despesa adicionada", f.lastNotification(t).Title)
	assert.Equal(t, "frete foi registrada com sucesso.", f.lastNotification(t).Message)

	f.transactions.EXPECT().Update(gomock.Any(), "t1", gomock.Any()).
		Return(entities.Transaction{ID: "t1", Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(30), Description: "frete"}, nil)
	amount := decimal.NewFromInt(30)
	_, err = f.controller.UpdateTransaction(ctx, "t1", entities.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, f.controller.Transactions()[1].Amount.Equal(decimal.NewFromInt(30)))

	f.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("boom"))
	_, err = f.controller.AddTransaction(ctx, fields)
	require.Error(t, err)
	assert.Len(t, f.controller.Transactions(), 2)
	assert.Equal(t, "Não foi possível adicionar a transação.", f.lastNotification(t).Message)

	f.transactions.EXPECT().Delete(gomock.Any(), "t0").Return(errors.New("boom"))
	require.Error(t, f.controller.RemoveTransaction(ctx, "t0"))
	assert.Len(t, f.controller.Transactions(), 2)

	f.transactions.EXPECT().Delete(gomock.Any(), "t0").Return(nil)
	require.NoError(t, f.controller.RemoveTransaction(ctx, "t0"))
	txs = f.controller.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, "Transação excluída", f.lastNotification(t).Title)
}

func TestController_Contacts(t *testing.T) {
	f := newFixture(t)
	f.load(t, nil, nil, []entities.Contact{{ID: "c0", Name: "Bia"}})
	ctx := context.Background()

	f.contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{ID: "c1", Name: "Ana"}, nil)
	_, err := f.controller.AddContact(ctx, entities.ContactFields{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana foi adicionado com sucesso.", f.lastNotification(t).Message)

	f.contacts.EXPECT().Update(gomock.Any(), "c0", gomock.Any()).Return(entities.Contact{}, errors.New("boom"))
	_, err = f.controller.UpdateContact(ctx, "c0", entities.ContactFields{Name: "Bia", Email: "b@x.com"})
	require.Error(t, err)
	assert.Equal(t, "Bia", f.controller.Contacts()[0].Name)
	assert.Equal(t, "Não foi possível atualizar o contato.", f.lastNotification(t).Message)

	f.contacts.EXPECT().Update(gomock.Any(), "c0", gomock.Any()).Return(entities.Contact{ID: "c0", Name: "Beatriz"}, nil)
	_, err = f.controller.UpdateContact(ctx, "c0", entities.ContactFields{Name: "Beatriz", Email: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Beatriz", f.controller.Contacts()[0].Name)

	f.contacts.EXPECT().Delete(gomock.Any(), "c1").Return(nil)
	require.NoError(t, f.controller.RemoveContact(ctx, "c1"))
	assert.Len(t, f.controller.Contacts(), 1)
	assert.Equal(t, "Contato excluído", f.lastNotification(t).Title)
}

func TestController_Snapshot(t *testing.T) {
	f := newFixture(t)
	f.load(t,
		[]entities.Order{
			order("p1", "Ana", "a@x.com", entities.OrderStatusProducao),
			order("p2", "Bia", "b@x.com", entities.OrderStatusEnviado),
			order("p3", "Caio", "c@x.com", entities.OrderStatusPronto),
		},
		[]entities.Transaction{
			{ID: "t1", Type: entities.TransactionTypeReceita, Amount: decimal.NewFromInt(100)},
			{ID: "t2", Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(40)},
		},
		[]entities.Contact{{ID: "c1"}},
	)

	all := f.controller.Snapshot("")
	assert.Equal(t, entities.OrderStatus(entities.OrderStatusAll), all.Filter)
	assert.Len(t, all.InProgress, 2)
	assert.Len(t, all.Completed, 1)
	assert.True(t, all.Totals.Profit.Equal(decimal.NewFromInt(60)))
	assert.Len(t, all.Contacts, 1)

	ready := f.controller.Snapshot(entities.OrderStatusPronto)
	require.Len(t, ready.InProgress, 1)
	assert.Equal(t, "p3", ready.InProgress[0].ID)
	assert.Empty(t, ready.Completed)
}

func TestController_AccessorsReturnCopies(t *testing.T) {
	f := newFixture(t)
	o := order("p1", "Ana", "a@x.com", entities.OrderStatusProducao)
	o.Descriptions = []string{"caneca"}
	f.load(t, []entities.Order{o}, nil, nil)

	got := f.controller.Orders()
	got[0].Name = "changed"
	got[0].Descriptions[0] = "changed"

	again := f.controller.Orders()
	assert.Equal(t, "Ana", again[0].Name)
	assert.Equal(t, []string{"caneca"}, again[0].Descriptions)
}

func TestController_PendingActionDoesNotBlockReads(t *testing.T) {
	f := newFixture(t)
	f.load(t, []entities.Order{order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao)}, nil, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.contacts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.ContactFields) (entities.Contact, error) {
			close(entered)
			<-release
			return entities.Contact{ID: "c1", Name: "Bia"}, nil
		},
	)

	done := make(chan error, 1)
	go func() {
		_, err := f.controller.AddContact(context.Background(), entities.ContactFields{Name: "Bia"})
		done <- err
	}()
	<-entered

	snapshots := make(chan Snapshot, 1)
	go func() { snapshots <- f.controller.Snapshot(entities.OrderStatusAll) }()
	select {
	case snap := <-snapshots:
		assert.Len(t, snap.InProgress, 1)
		assert.Empty(t, snap.Contacts)
	case <-time.After(time.Second):
		close(release)
		t.Fatal("snapshot waited on the pending contact insert")
	}

	_, err := f.controller.EditOrder("p1")
	require.NoError(t, err)
	assert.Len(t, f.controller.Orders(), 1)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, f.controller.Contacts(), 1)
	assert.Equal(t, "Contato adicionado", f.lastNotification(t).Title)
}

func TestController_SubmitOrder_KeepsModeChangedWhilePending(t *testing.T) {
	f := newFixture(t)
	f.load(t, []entities.Order{order("p0", "Bia", "bia@x.com", entities.OrderStatusPronto)}, nil,
		[]entities.Contact{{ID: "c1", Email: "ana@x.com"}})

	entered := make(chan struct{})
	release := make(chan struct{})
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.OrderFields) (entities.Order, error) {
			close(entered)
			<-release
			return order("p1", "Ana", "ana@x.com", entities.OrderStatusProducao), nil
		},
	)

	done := make(chan bool, 1)
	go func() {
		_, createdNew, err := f.controller.SubmitOrder(context.Background(), entities.OrderFields{Name: "Ana", Email: "ana@x.com", Phone: "1"})
		assert.NoError(t, err)
		done <- createdNew
	}()
	<-entered

	_, err := f.controller.EditOrder("p0")
	require.NoError(t, err)
	close(release)

	assert.True(t, <-done)
	id, ok := f.controller.OrderMode().OrderID()
	require.True(t, ok)
	assert.Equal(t, "p0", id)
	assert.Len(t, f.controller.Orders(), 2)
}
