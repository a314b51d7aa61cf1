package dashboard

import (
	"context"
	"errors"
	"testing"

	"painel_pedidos/internal/domain/entities"
	mock_usecase "painel_pedidos/internal/usecase/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactLinker_Ensure(t *testing.T) {
	o := entities.Order{ID: "p1", Name: "Ana", Email: "ana@x.com", Phone: "111"}

	t.Run("creates the contact with the default message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mock_usecase.NewMockIContactUseCase(ctrl)
		contacts.EXPECT().Create(gomock.Any(), entities.ContactFields{
			Name: "Ana", Email: "ana@x.com", Phone: "111", Message: "Contato criado a partir do pedido",
		}).Return(entities.Contact{ID: "c1", Email: "ana@x.com"}, nil)

		c, created := NewContactLinker(contacts, nil).Ensure(context.Background(), []entities.Contact{{Email: "ANA@x.com"}}, o)
		assert.True(t, created)
		assert.Equal(t, "c1", c.ID)
	})

	t.Run("exact match skips creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mock_usecase.NewMockIContactUseCase(ctrl)

		_, created := NewContactLinker(contacts, nil).Ensure(context.Background(), []entities.Contact{{Email: "ana@x.com"}}, o)
		assert.False(t, created)
	})

	t.Run("order without e-mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mock_usecase.NewMockIContactUseCase(ctrl)

		_, created := NewContactLinker(contacts, nil).Ensure(context.Background(), nil, entities.Order{ID: "p2"})
		assert.False(t, created)
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mock_usecase.NewMockIContactUseCase(ctrl)
		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{}, errors.New("insert failed"))

		_, created := NewContactLinker(contacts, nil).Ensure(context.Background(), nil, o)
		assert.False(t, created)
	})
}
