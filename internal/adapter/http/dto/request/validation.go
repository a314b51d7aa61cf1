package request

import (
	"sync"

	"painel_pedidos/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain enum rules to gin's validator. It is
// safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		rules := map[string]validator.Func{
			"order_status": func(fl validator.FieldLevel) bool {
				return entities.OrderStatus(fl.Field().String()).Valid()
			},
			"transaction_type": func(fl validator.FieldLevel) bool {
				return entities.TransactionType(fl.Field().String()).Valid()
			},
			"email_origin": func(fl validator.FieldLevel) bool {
				return entities.SavedEmailOrigin(fl.Field().String()).Valid()
			},
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}
