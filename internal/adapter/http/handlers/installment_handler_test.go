package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"erp_vendas/internal/adapter/http/handlers/mocks"
	"erp_vendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInstallmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIInstallmentUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInstallmentUseCase(ctrl)
	h := NewInstallmentHandler(uc)
	r := gin.New()
	r.GET("/vencimentos", h.List)
	r.PUT("/vencimentos/:id", h.MarkPaid)
	return r, uc
}

func TestInstallmentHandler_MarkPaid(t *testing.T) {
	t.Run("only Pago is accepted", func(t *testing.T) {
		r, _ := newInstallmentRouter(t)
		w := perform(r, http.MethodPut, "/vencimentos/v-1", `{"status":"Pendente"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment date means today", func(t *testing.T) {
		r, uc := newInstallmentRouter(t)
		uc.EXPECT().MarkPaid(gomock.Any(), "v-1", gomock.Nil()).
			Return(entities.Installment{ID: "v-1", Status: entities.InstallmentStatusPago}, nil)

		w := perform(r, http.MethodPut, "/vencimentos/v-1", `{"status":"Pago"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("ISO timestamp is reduced to its date", func(t *testing.T) {
		r, uc := newInstallmentRouter(t)
		uc.EXPECT().MarkPaid(gomock.Any(), "v-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, paidOn *time.Time) (entities.Installment, error) {
				if paidOn == nil || entities.FormatDate(*paidOn) != "2025-01-20" {
					t.Fatalf("unexpected payment date %v", paidOn)
				}
				return entities.Installment{ID: "v-1", Status: entities.InstallmentStatusPago, PaymentDate: paidOn}, nil
			})

		w := perform(r, http.MethodPut, "/vencimentos/v-1", `{"status":"Pago","data_pagamento":"2025-01-20T13:45:00.000Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("paying twice is a conflict", func(t *testing.T) {
		r, uc := newInstallmentRouter(t)
		uc.EXPECT().MarkPaid(gomock.Any(), "v-1", gomock.Any()).
			Return(entities.Installment{}, fmt.Errorf("v-1: %w", entities.ErrAlreadySettled))

		w := perform(r, http.MethodPut, "/vencimentos/v-1", `{"status":"Pago"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ALREADY_SETTLED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("unknown installment", func(t *testing.T) {
		r, uc := newInstallmentRouter(t)
		uc.EXPECT().MarkPaid(gomock.Any(), "v-9", gomock.Any()).
			Return(entities.Installment{}, fmt.Errorf("installment v-9: %w", entities.ErrNotFound))

		w := perform(r, http.MethodPut, "/vencimentos/v-9", `{"status":"Pago"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInstallmentHandler_List(t *testing.T) {
	r, uc := newInstallmentRouter(t)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Installment{
		{ID: "v-1", Number: 1, TotalInstallments: 3, Status: entities.InstallmentStatusAtrasado},
	}, nil)

	w := perform(r, http.MethodGet, "/vencimentos", "")
	var body []map[string]any
	decodeJSON(t, w, &body)
	if len(body) != 1 || body[0]["status"] != "Atrasado" || body[0]["parcela_label"] != "1/3" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
