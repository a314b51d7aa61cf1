package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IController is the dashboard surface used by the HTTP layer.
type IController interface {
	Load(ctx context.Context) error
	NewOrder()
	EditOrder(id string) (entities.Order, error)
	CancelOrderEdit()
	SubmitOrder(ctx context.Context, f entities.OrderFields) (entities.Order, bool, error)
	UpdateOrder(ctx context.Context, id string, f entities.OrderFields) (entities.Order, error)
	RemoveOrder(ctx context.Context, id string) (usecase.DeleteReport, error)
	AddTransaction(ctx context.Context, f entities.TransactionFields) (entities.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error)
	RemoveTransaction(ctx context.Context, id string) error
	AddContact(ctx context.Context, f entities.ContactFields) (entities.Contact, error)
	UpdateContact(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error)
	RemoveContact(ctx context.Context, id string) error
	Orders() []entities.Order
	Transactions() []entities.Transaction
	Contacts() []entities.Contact
	OrderMode() Mode
	Snapshot(filter entities.OrderStatus) Snapshot
}

// Controller owns the dashboard session state: the loaded orders,
// transactions and contacts plus the order form mode. Collections change
// only after the gateway confirms an action.
//
// action serializes intents. mu guards the state and is never held
// across a gateway call, so a slow store only delays the action waiting
// on it while reads and form mode changes go through.
type Controller struct {
	action sync.Mutex

	mu           sync.RWMutex
	orders       []entities.Order
	transactions []entities.Transaction
	contacts     []entities.Contact
	mode         Mode

	orderUC       usecase.IOrderUseCase
	transactionUC usecase.ITransactionUseCase
	contactUC     usecase.IContactUseCase
	linker        *ContactLinker
	notifier      Notifier
	logger        *zap.Logger
}

var _ IController = (*Controller)(nil)

func NewController(
	orders usecase.IOrderUseCase,
	transactions usecase.ITransactionUseCase,
	contacts usecase.IContactUseCase,
	notifier Notifier,
	logger *zap.Logger,
) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewFeed(0, logger)
	}
	return &Controller{
		orderUC:       orders,
		transactionUC: transactions,
		contactUC:     contacts,
		linker:        NewContactLinker(contacts, logger),
		notifier:      notifier,
		logger:        logger.Named("dashboard"),
	}
}

// Load fetches the three collections concurrently. If any load fails all
// three collections are left empty.
func (c *Controller) Load(ctx context.Context) error {
	c.action.Lock()
	defer c.action.Unlock()

	var (
		orders       []entities.Order
		transactions []entities.Transaction
		contacts     []entities.Contact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = c.orderUC.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = c.transactionUC.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = c.contactUC.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		c.mu.Lock()
		c.orders, c.transactions, c.contacts = nil, nil, nil
		c.mu.Unlock()
		c.logger.Error("initial load failed", zap.Error(err))
		c.notifier.Notify(failure("Não foi possível carregar os dados do banco de dados."))
		return err
	}

	c.mu.Lock()
	c.orders, c.transactions, c.contacts = orders, transactions, contacts
	c.mu.Unlock()
	c.logger.Info("dashboard loaded",
		zap.Int("orders", len(orders)),
		zap.Int("transactions", len(transactions)),
		zap.Int("contacts", len(contacts)),
	)
	return nil
}

// NewOrder opens the form for a new order.
func (c *Controller) NewOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = Creating()
}

// EditOrder opens the form on a loaded order and returns it.
func (c *Controller) EditOrder(id string) (entities.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := indexOfOrder(c.orders, id)
	if i < 0 {
		return entities.Order{}, &usecase.NotFoundError{Entity: "pedido", ID: id}
	}
	c.mode = Editing(id)
	return cloneOrder(c.orders[i]), nil
}

func (c *Controller) CancelOrderEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = Creating()
}

// SubmitOrder saves the order form: update while editing, create
// otherwise. created reports which of the two ran. On success the mode
// returns to Creating unless the form was switched meanwhile.
func (c *Controller) SubmitOrder(ctx context.Context, f entities.OrderFields) (saved entities.Order, created bool, err error) {
	c.action.Lock()
	defer c.action.Unlock()
	return c.submitOrder(ctx, c.OrderMode(), f)
}

// UpdateOrder edits and submits a loaded order in one action. A failed
// submit restores the previous mode.
func (c *Controller) UpdateOrder(ctx context.Context, id string, f entities.OrderFields) (entities.Order, error) {
	c.action.Lock()
	defer c.action.Unlock()

	c.mu.Lock()
	if indexOfOrder(c.orders, id) < 0 {
		c.mu.Unlock()
		return entities.Order{}, &usecase.NotFoundError{Entity: "pedido", ID: id}
	}
	prev := c.mode
	c.mode = Editing(id)
	c.mu.Unlock()

	o, _, err := c.submitOrder(ctx, Editing(id), f)
	if err != nil {
		c.mu.Lock()
		if c.mode == Editing(id) {
			c.mode = prev
		}
		c.mu.Unlock()
	}
	return o, err
}

func (c *Controller) submitOrder(ctx context.Context, mode Mode, f entities.OrderFields) (entities.Order, bool, error) {
	var (
		saved   entities.Order
		err     error
		message string
	)
	id, editing := mode.OrderID()
	if editing {
		saved, err = c.orderUC.Update(ctx, id, f.Update())
		message = "Pedido atualizado com sucesso!"
	} else {
		saved, err = c.orderUC.Create(ctx, f)
		message = "Pedido criado com sucesso!"
	}
	if err != nil {
		c.notifier.Notify(failure(userMessage(err, "Erro ao salvar pedido. Tente novamente.")))
		return entities.Order{}, false, err
	}

	c.mu.Lock()
	if i := indexOfOrder(c.orders, saved.ID); i >= 0 {
		c.orders[i] = saved
	} else {
		c.orders = append([]entities.Order{saved}, c.orders...)
	}
	if c.mode == mode {
		c.mode = Creating()
	}
	known := append([]entities.Contact(nil), c.contacts...)
	c.mu.Unlock()

	if contact, created := c.linker.Ensure(ctx, known, saved); created {
		c.mu.Lock()
		c.contacts = append(c.contacts, contact)
		c.mu.Unlock()
	}

	c.notifier.Notify(info(titleSuccess, message))
	return cloneOrder(saved), !editing, nil
}

// RemoveOrder deletes an order and its dependents. The report lists the
// cascade steps that only produced warnings.
func (c *Controller) RemoveOrder(ctx context.Context, id string) (usecase.DeleteReport, error) {
	c.action.Lock()
	defer c.action.Unlock()

	c.notifier.Notify(info("Excluindo pedido", "Aguarde enquanto o pedido é excluído..."))
	report, err := c.orderUC.Delete(ctx, id)
	if err != nil {
		c.notifier.Notify(failure("Não foi possível excluir o pedido. Tente novamente."))
		return usecase.DeleteReport{}, err
	}

	c.mu.Lock()
	c.orders = removeByID(c.orders, id, func(o entities.Order) string { return o.ID })
	if editing, ok := c.mode.OrderID(); ok && editing == id {
		c.mode = Creating()
	}
	c.mu.Unlock()

	for _, w := range report.Warnings() {
		c.logger.Warn("order deleted with warning", zap.String("order_id", id), zap.String("step", w.Name), zap.Error(w.Err))
	}
	c.notifier.Notify(info("Pedido excluído", report.Message()))
	return report, nil
}

func (c *Controller) AddTransaction(ctx context.Context, f entities.TransactionFields) (entities.Transaction, error) {
	c.action.Lock()
	defer c.action.Unlock()

	t, err := c.transactionUC.Create(ctx, f)
	if err != nil {
		c.notifier.Notify(failure("Não foi possível adicionar a transação."))
		return entities.Transaction{}, err
	}
	c.mu.Lock()
	c.transactions = append(c.transactions, t)
	c.mu.Unlock()

	title := "Despesa adicionada"
	if t.Type == entities.TransactionTypeReceita {
		title = "Receita adicionada"
	}
	c.notifier.Notify(info(title, fmt.Sprintf("%s foi registrada com sucesso.", t.Description)))
	return t, nil
}

// UpdateTransaction writes only the fields set in u.
func (c *Controller) UpdateTransaction(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error) {
	c.action.Lock()
	defer c.action.Unlock()

	t, err := c.transactionUC.Update(ctx, id, u)
	if err != nil {
		c.notifier.Notify(failure("Não foi possível editar a transação."))
		return entities.Transaction{}, err
	}
	c.mu.Lock()
	if i := indexOf(c.transactions, id, func(t entities.Transaction) string { return t.ID }); i >= 0 {
		c.transactions[i] = t
	}
	c.mu.Unlock()
	c.notifier.Notify(info("Transação atualizada", "A transação foi atualizada com sucesso."))
	return t, nil
}

func (c *Controller) RemoveTransaction(ctx context.Context, id string) error {
	c.action.Lock()
	defer c.action.Unlock()

	if err := c.transactionUC.Delete(ctx, id); err != nil {
		c.notifier.Notify(failure("Não foi possível excluir a transação."))
		return err
	}
	c.mu.Lock()
	c.transactions = removeByID(c.transactions, id, func(t entities.Transaction) string { return t.ID })
	c.mu.Unlock()
	c.notifier.Notify(info("Transação excluída", "A transação foi excluída com sucesso."))
	return nil
}

func (c *Controller) AddContact(ctx context.Context, f entities.ContactFields) (entities.Contact, error) {
	c.action.Lock()
	defer c.action.Unlock()

	contact, err := c.contactUC.Create(ctx, f)
	if err != nil {
		c.notifier.Notify(failure("Não foi possível adicionar o contato."))
		return entities.Contact{}, err
	}
	c.mu.Lock()
	c.contacts = append(c.contacts, contact)
	c.mu.Unlock()
	c.notifier.Notify(info("Contato adicionado", fmt.Sprintf("%s foi adicionado com sucesso.", contact.Name)))
	return contact, nil
}

func (c *Controller) UpdateContact(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error) {
	c.action.Lock()
	defer c.action.Unlock()

	contact, err := c.contactUC.Update(ctx, id, f)
	if err != nil {
		c.notifier.Notify(failure("Não foi possível atualizar o contato."))
		return entities.Contact{}, err
	}
	c.mu.Lock()
	if i := indexOf(c.contacts, id, func(c entities.Contact) string { return c.ID }); i >= 0 {
		c.contacts[i] = contact
	}
	c.mu.Unlock()
	c.notifier.Notify(info("Contato atualizado", "O contato foi atualizado com sucesso."))
	return contact, nil
}

func (c *Controller) RemoveContact(ctx context.Context, id string) error {
	c.action.Lock()
	defer c.action.Unlock()

	if err := c.contactUC.Delete(ctx, id); err != nil {
		c.notifier.Notify(failure("Não foi possível excluir o contato."))
		return err
	}
	c.mu.Lock()
	c.contacts = removeByID(c.contacts, id, func(c entities.Contact) string { return c.ID })
	c.mu.Unlock()
	c.notifier.Notify(info("Contato excluído", "O contato foi excluído com sucesso."))
	return nil
}

func (c *Controller) Orders() []entities.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneOrders(c.orders)
}

func (c *Controller) Transactions() []entities.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entities.Transaction(nil), c.transactions...)
}

func (c *Controller) Contacts() []entities.Contact {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entities.Contact(nil), c.contacts...)
}

func (c *Controller) OrderMode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Snapshot is everything the dashboard renders at once.
type Snapshot struct {
	Filter       entities.OrderStatus
	InProgress   []entities.Order
	Completed    []entities.Order
	Transactions []entities.Transaction
	Totals       Totals
	Contacts     []entities.Contact
	Mode         Mode
}

// Snapshot computes the views from the current collections.
func (c *Controller) Snapshot(filter entities.OrderStatus) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if filter == "" {
		filter = entities.OrderStatusAll
	}
	inProgress, completed := PartitionOrders(FilterByStatus(cloneOrders(c.orders), filter))
	return Snapshot{
		Filter:       filter,
		InProgress:   inProgress,
		Completed:    completed,
		Transactions: append([]entities.Transaction(nil), c.transactions...),
		Totals:       ComputeTotals(c.transactions),
		Contacts:     append([]entities.Contact(nil), c.contacts...),
		Mode:         c.mode,
	}
}

// userMessage returns the validation reason when there is one.
func userMessage(err error, fallback string) string {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) && verr.Reason != "" {
		return verr.Reason
	}
	return fallback
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

func indexOfOrder(orders []entities.Order, id string) int {
	return indexOf(orders, id, func(o entities.Order) string { return o.ID })
}

// removeByID returns a new slice without the element matching id.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func cloneOrder(o entities.Order) entities.Order {
	if o.Descriptions != nil {
		o.Descriptions = append([]string(nil), o.Descriptions...)
	}
	return o
}

func cloneOrders(orders []entities.Order) []entities.Order {
	if orders == nil {
		return nil
	}
	out := make([]entities.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}
