package usecase

import (
	"context"
	"errors"
	"testing"

	"painel_pedidos/internal/domain/entities"
	mock_interfaces "painel_pedidos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContactUseCase(t *testing.T) {
	t.Run("create requires name and email", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.ContactFields{Phone: "111"})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 2 {
			t.Fatalf("expected validation error on nome and email, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) { return c, nil },
		)

		c, err := uc.Create(context.Background(), entities.ContactFields{Name: "Ana", Email: "ana@x.com", Message: "oi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" || c.CreatedAt.IsZero() {
			t.Fatalf("expected generated identity, got %+v", c)
		}
	})

	t.Run("list store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.List(context.Background()); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})

	t.Run("update no row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Contact{}, nil)

		_, err := uc.Update(context.Background(), "c-1", entities.ContactFields{Name: "Ana", Email: "ana@x.com"})
		if !errors.Is(err, ErrEmptyResult) {
			t.Fatalf("expected ErrEmptyResult, got %v", err)
		}
	})
}

func TestSavedEmailUseCase(t *testing.T) {
	t.Run("rejects unknown origin", func(t *testing.T) {
		uc := NewSavedEmailUseCase(nil, nil)
		_, err := uc.Save(context.Background(), entities.SavedEmailFields{Email: "a@x.com", Origin: "site"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("save drops blank back-references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEmailRepository(ctrl)
		uc := NewSavedEmailUseCase(repo, nil)
		blank := " "
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SavedEmail{})).DoAndReturn(
			func(_ context.Context, e entities.SavedEmail) (entities.SavedEmail, error) {
				if e.OrderID != nil || e.ContactID != nil {
					t.Fatalf("expected nil back-references, got %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.Save(context.Background(), entities.SavedEmailFields{Email: "a@x.com", Origin: entities.SavedEmailOriginContato, OrderID: &blank})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEmailRepository(ctrl)
		uc := NewSavedEmailUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), "e-1").Return(errors.New("db"))

		if err := uc.Delete(context.Background(), "e-1"); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}
