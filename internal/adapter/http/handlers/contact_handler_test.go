package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"painel_pedidos/internal/adapter/http/handlers/mocks"
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"
	mock_usecase "painel_pedidos/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContactHandler(t *testing.T) {
	build := func(t *testing.T) (*gin.Engine, *mocks.MockIController) {
		ctrl := gomock.NewController(t)
		dc := mocks.NewMockIController(ctrl)
		h := NewContactHandler(dc)
		r := gin.New()
		r.GET("/v1/contacts", h.ListContacts)
		r.POST("/v1/contacts", h.CreateContact)
		r.PUT("/v1/contacts/:id", h.UpdateContact)
		r.DELETE("/v1/contacts/:id", h.DeleteContact)
		return r, dc
	}

	t.Run("list", func(t *testing.T) {
		r, dc := build(t)
		dc.EXPECT().Contacts().Return([]entities.Contact{{ID: "c-1", Name: "Ana"}})

		w := doJSON(r, http.MethodGet, "/v1/contacts", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 1 || body[0]["nome"] != "Ana" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create bad email", func(t *testing.T) {
		r, _ := build(t)
		w := doJSON(r, http.MethodPost, "/v1/contacts", `{"nome":"Ana","email":"sem-arroba"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, dc := build(t)
		dc.EXPECT().AddContact(gomock.Any(), entities.ContactFields{Name: "Ana", Email: "ana@x.com", Phone: "111", Message: "oi"}).
			Return(entities.Contact{ID: "c-1", Name: "Ana", Email: "ana@x.com"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/contacts", `{"nome":"Ana","email":"ana@x.com","telefone":"111","mensagem":"oi"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create validation error", func(t *testing.T) {
		r, dc := build(t)
		dc.EXPECT().AddContact(gomock.Any(), gomock.Any()).Return(entities.Contact{}, &usecase.ValidationError{Entity: "contato", Reason: "Nome é obrigatório", Fields: []string{"nome"}})

		w := doJSON(r, http.MethodPost, "/v1/contacts", `{"email":"ana@x.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, dc := build(t)
		dc.EXPECT().UpdateContact(gomock.Any(), "c-1", gomock.Any()).Return(entities.Contact{ID: "c-1"}, nil)

		w := doJSON(r, http.MethodPut, "/v1/contacts/c-1", `{"nome":"Ana"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete store error", func(t *testing.T) {
		r, dc := build(t)
		dc.EXPECT().RemoveContact(gomock.Any(), "c-1").Return(&usecase.StoreError{Op: "delete contatos", Err: errors.New("fk")})

		w := doJSON(r, http.MethodDelete, "/v1/contacts/c-1", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestSavedEmailHandler(t *testing.T) {
	build := func(t *testing.T) (*gin.Engine, *mock_usecase.MockISavedEmailUseCase) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockISavedEmailUseCase(ctrl)
		h := NewSavedEmailHandler(uc)
		r := gin.New()
		r.GET("/v1/saved-emails", h.ListSavedEmails)
		r.POST("/v1/saved-emails", h.CreateSavedEmail)
		r.PUT("/v1/saved-emails/:id", h.UpdateSavedEmail)
		r.DELETE("/v1/saved-emails/:id", h.DeleteSavedEmail)
		return r, uc
	}

	t.Run("list", func(t *testing.T) {
		r, uc := build(t)
		orderID := "p-1"
		uc.EXPECT().List(gomock.Any()).Return([]entities.SavedEmail{{ID: "e-1", Email: "a@x.com", Origin: entities.SavedEmailOriginPedido, OrderID: &orderID}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/saved-emails", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 1 || body[0]["pedido_id"] != "p-1" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list store error", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, &usecase.StoreError{Op: "list emails_salvos", Err: errors.New("down")})

		w := doJSON(r, http.MethodGet, "/v1/saved-emails", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("create bad origin", func(t *testing.T) {
		r, _ := build(t)
		w := doJSON(r, http.MethodPost, "/v1/saved-emails", `{"email":"a@x.com","origem":"site"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.SavedEmail{ID: "e-1", Email: "a@x.com", Origin: entities.SavedEmailOriginContato}, nil)

		w := doJSON(r, http.MethodPost, "/v1/saved-emails", `{"email":"a@x.com","origem":"contato"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Update(gomock.Any(), "e-9", gomock.Any()).Return(entities.SavedEmail{}, &usecase.NotFoundError{Entity: "email salvo", ID: "e-9"})

		w := doJSON(r, http.MethodPut, "/v1/saved-emails/e-9", `{"email":"a@x.com","origem":"contato"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/saved-emails/e-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
