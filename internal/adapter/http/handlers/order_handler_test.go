package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"erp_vendas/internal/adapter/http/handlers/mocks"
	"erp_vendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)
	r := gin.New()
	r.GET("/pedidos", h.List)
	r.GET("/pedidos/:id", h.Get)
	r.POST("/pedidos", h.Create)
	r.PUT("/pedidos/:id", h.Update)
	r.DELETE("/pedidos/:id", h.Delete)
	return r, uc
}

func TestOrderHandler_Create(t *testing.T) {
	t.Run("bad delivery date", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPost, "/pedidos", `{"cliente_id":"c-1","item_nome":"x","data_entrega":"amanha"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ClientID != "c-1" || entities.FormatDate(o.DeliveryDate) != "2025-02-28" {
					t.Fatalf("unexpected order %+v", o)
				}
				o.ID = "o-1"
				o.Status = entities.OrderStatusPendente
				return o, nil
			})

		w := perform(r, http.MethodPost, "/pedidos",
			`{"cliente_id":"c-1","material_id":"m-1","quantidade":900,"valor_total":4500,"data_entrega":"2025-02-28"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeJSON(t, w, &body)
		if body["status"] != "PENDENTE" || body["data_entrega"] != "2025-02-28" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateInvoicedOrder(t *testing.T) {
	r, uc := newOrderRouter(t)
	uc.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).
		Return(entities.Order{}, fmt.Errorf("order o-1 is FATURADO: %w", entities.ErrInvalidOrderState))

	w := perform(r, http.MethodPut, "/pedidos/o-1", `{"cliente_id":"c-1","item_nome":"x"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "INVALID_ORDER_STATE" {
		t.Fatalf("unexpected code %q", body.Code)
	}
}

func TestOrderHandler_ListAndDelete(t *testing.T) {
	r, uc := newOrderRouter(t)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "o-2"}, {ID: "o-1"}}, nil)
	uc.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)

	w := perform(r, http.MethodGet, "/pedidos", "")
	var body []map[string]any
	decodeJSON(t, w, &body)
	if len(body) != 2 || body[0]["id"] != "o-2" {
		t.Fatalf("order not preserved: %s", w.Body.String())
	}
	if w := perform(r, http.MethodDelete, "/pedidos/o-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
