package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Pedido não encontrado" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("STORE_ERROR", "Falha no banco de dados", cause, http.StatusBadGateway)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if e.ToHTTPError().Details != "connection refused" {
			t.Fatalf("unexpected details: %+v", e.ToHTTPError())
		}
		if e.HTTPStatus != http.StatusBadGateway {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})
}
