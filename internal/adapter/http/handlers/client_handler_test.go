package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"erp_vendas/internal/adapter/http/handlers/mocks"
	"erp_vendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)
	r := gin.New()
	r.GET("/clientes", h.List)
	r.GET("/clientes/:id", h.Get)
	r.POST("/clientes", h.Create)
	r.PUT("/clientes/:id", h.Update)
	r.DELETE("/clientes/:id", h.Delete)
	return r, uc
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("cnpj required", func(t *testing.T) {
		r, _ := newClientRouter(t)
		if w := perform(r, http.MethodPost, "/clientes", `{"nome":"Embalagens Sul"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reference comes back", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.Client{Name: "Embalagens Sul", TaxID: "12.345.678/0001-90", State: "RS"}).
			Return(entities.Client{ID: "c-1", Reference: "CLI-0001", Name: "Embalagens Sul"}, nil)

		w := perform(r, http.MethodPost, "/clientes", `{"nome":"Embalagens Sul","cnpj":"12.345.678/0001-90","estado":"RS"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeJSON(t, w, &body)
		if body["referencia"] != "CLI-0001" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("cnpj taken", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, fmt.Errorf("cnpj: %w", entities.ErrConflict))
		if w := perform(r, http.MethodPost, "/clientes", `{"nome":"x","cnpj":"1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestClientHandler_UpdateMissing(t *testing.T) {
	r, uc := newClientRouter(t)
	uc.EXPECT().Update(gomock.Any(), "c-9", gomock.Any()).Return(entities.Client{}, fmt.Errorf("client c-9: %w", entities.ErrNotFound))

	if w := perform(r, http.MethodPut, "/clientes/c-9", `{"nome":"x","cnpj":"1"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
