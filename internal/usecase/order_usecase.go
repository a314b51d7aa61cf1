package usecase

import (
	"context"
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const entityOrder = "pedido"

// Cascade step names reported by Delete.
const (
	StepDeleteSavedEmails = "emails_salvos"
	StepDeleteOrderItems  = "itens_pedido"
)

// IOrderUseCase is the order gateway used by the dashboard.
//
//   - Create validates required fields, fills defaults and records the
//     customer e-mail as a side effect.
//   - Update replaces the mutable fields only.
//   - Delete cascades best-effort to saved e-mails and line items.

type IOrderUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, f entities.OrderFields) (entities.Order, error)
	Update(ctx context.Context, id string, u entities.OrderUpdate) (entities.Order, error)
	Delete(ctx context.Context, id string) (DeleteReport, error)
}

// DeleteStep is the outcome of one cascade step. A non-nil Err is a
// warning: it never aborts the deletion.
type DeleteStep struct {
	Name string
	Err  error
}

func (s DeleteStep) OK() bool { return s.Err == nil }

// DeleteReport aggregates the cascade outcome of an order deletion.
type DeleteReport struct {
	OrderID   string
	OrderName string
	Steps     []DeleteStep
}

func (r DeleteReport) Warnings() []DeleteStep {
	var out []DeleteStep
	for _, s := range r.Steps {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

func (r DeleteReport) Message() string {
	return `Pedido "` + r.OrderName + `" excluído com sucesso`
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	items      interfaces.IOrderItemRepository
	emails     interfaces.ISavedEmailRepository
	logger     *zap.Logger
	now        func() time.Time
	generateID func() string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	items interfaces.IOrderItemRepository,
	emails interfaces.ISavedEmailRepository,
	logger *zap.Logger,
) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		repo:       repo,
		items:      items,
		emails:     emails,
		logger:     logger.Named("order"),
		now:        func() time.Time { return time.Now().UTC() },
		generateID: uuid.NewString,
	}
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list orders failed", zap.Error(err))
		return nil, wrapStore("list pedidos", err)
	}
	return orders, nil
}

func (u *OrderUseCase) Create(ctx context.Context, f entities.OrderFields) (entities.Order, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	if missing := missingFields("nome", f.Name, "email", f.Email, "telefone", f.Phone); len(missing) > 0 {
		return entities.Order{}, newValidationError(entityOrder, "Nome, email e telefone são campos obrigatórios", missing...)
	}
	if f.Status == "" {
		f.Status = entities.OrderStatusProducao
	}
	if !f.Status.Valid() {
		return entities.Order{}, newValidationError(entityOrder, "status inválido", "status")
	}
	total := decimal.Zero
	if f.Total != nil {
		total = *f.Total
	}
	if total.IsNegative() {
		return entities.Order{}, newValidationError(entityOrder, "total não pode ser negativo", "total")
	}

	o := entities.Order{
		ID:           u.generateID(),
		CreatedAt:    u.now(),
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Status:       f.Status,
		Total:        total,
		Note:         nonEmpty(f.Note),
		TrackingCode: nonEmpty(f.TrackingCode),
		Address:      nonEmpty(f.Address),
		Descriptions: f.Descriptions,
	}
	u.logger.Info("creating order", zap.String("order_id", o.ID), zap.String("email", o.Email))

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.logger.Error("create order failed", zap.String("order_id", o.ID), zap.Error(err))
		return entities.Order{}, wrapStore("create pedido", err)
	}
	if created.ID == "" {
		u.logger.Error("create order returned no row", zap.String("order_id", o.ID))
		return entities.Order{}, &EmptyResultError{Op: "create pedido"}
	}

	u.saveOrderEmail(ctx, created)
	return created, nil
}

// saveOrderEmail records the customer e-mail. Failures are logged and never
// block order creation.
func (u *OrderUseCase) saveOrderEmail(ctx context.Context, o entities.Order) {
	if u.emails == nil || o.Email == "" {
		return
	}
	orderID := o.ID
	_, err := u.emails.Create(ctx, entities.SavedEmail{
		ID:        u.generateID(),
		CreatedAt: u.now(),
		Email:     o.Email,
		Name:      o.Name,
		Origin:    entities.SavedEmailOriginPedido,
		OrderID:   &orderID,
	})
	if err != nil {
		u.logger.Warn("save order e-mail failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (u *OrderUseCase) Update(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidID
	}
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Email = strings.TrimSpace(upd.Email)
	upd.Phone = strings.TrimSpace(upd.Phone)
	if missing := missingFields("nome", upd.Name, "email", upd.Email, "telefone", upd.Phone); len(missing) > 0 {
		return entities.Order{}, newValidationError(entityOrder, "Nome, email e telefone são campos obrigatórios", missing...)
	}
	if !upd.Status.Valid() {
		return entities.Order{}, newValidationError(entityOrder, "status inválido", "status")
	}
	if upd.Total.IsNegative() {
		return entities.Order{}, newValidationError(entityOrder, "total não pode ser negativo", "total")
	}
	upd.Note = nonEmpty(upd.Note)
	upd.TrackingCode = nonEmpty(upd.TrackingCode)

	u.logger.Info("updating order", zap.String("order_id", id))
	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		u.logger.Error("update order failed", zap.String("order_id", id), zap.Error(err))
		return entities.Order{}, wrapStore("update pedido", err)
	}
	if updated.ID == "" {
		u.logger.Error("update order returned no row", zap.String("order_id", id))
		return entities.Order{}, &EmptyResultError{Op: "update pedido"}
	}
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) (DeleteReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DeleteReport{}, ErrInvalidID
	}
	u.logger.Info("deleting order", zap.String("order_id", id))

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("lookup order failed", zap.String("order_id", id), zap.Error(err))
		return DeleteReport{}, wrapStore("get pedido", err)
	}
	if existing.ID == "" {
		return DeleteReport{}, &NotFoundError{Entity: entityOrder, ID: id}
	}

	report := DeleteReport{OrderID: existing.ID, OrderName: existing.Name}
	report.Steps = append(report.Steps, u.cascade(StepDeleteSavedEmails, id, func() error {
		if u.emails == nil {
			return nil
		}
		return u.emails.DeleteByOrderID(ctx, id)
	}))
	report.Steps = append(report.Steps, u.cascade(StepDeleteOrderItems, id, func() error {
		if u.items == nil {
			return nil
		}
		return u.items.DeleteByOrderID(ctx, id)
	}))

	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete order failed", zap.String("order_id", id), zap.Error(err))
		return DeleteReport{}, wrapStore("delete pedido", err)
	}
	u.logger.Info("order deleted", zap.String("order_id", id), zap.Int("warnings", len(report.Warnings())))
	return report, nil
}

func (u *OrderUseCase) cascade(step, orderID string, fn func() error) DeleteStep {
	err := fn()
	if err != nil {
		u.logger.Warn("cascade step failed", zap.String("step", step), zap.String("order_id", orderID), zap.Error(err))
	}
	return DeleteStep{Name: step, Err: err}
}

// missingFields takes name/value pairs and returns the names whose value
// is empty.
func missingFields(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
