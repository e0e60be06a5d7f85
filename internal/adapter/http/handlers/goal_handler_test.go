package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"erp_vendas/internal/adapter/http/handlers/mocks"
	"erp_vendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newGoalRouter(t *testing.T) (*gin.Engine, *mocks.MockIGoalUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIGoalUseCase(ctrl)
	h := NewGoalHandler(uc)
	r := gin.New()
	r.GET("/metas", h.List)
	r.POST("/metas", h.Create)
	r.PUT("/metas/:id", h.Update)
	r.DELETE("/metas/:id", h.Delete)
	return r, uc
}

func TestGoalHandler(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, uc := newGoalRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Goal{ID: "g-1", ClientID: "c-1", Year: 2025, Month: 1, TargetTons: decimal.NewFromInt(10)}, nil)

		w := perform(r, http.MethodPost, "/metas", `{"cliente_id":"c-1","ano":2025,"mes":1,"valor_ton":10}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate month", func(t *testing.T) {
		r, uc := newGoalRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Goal{}, fmt.Errorf("goal: %w", entities.ErrConflict))

		if w := perform(r, http.MethodPost, "/metas", `{"cliente_id":"c-1","ano":2025,"mes":1,"valor_ton":10}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := newGoalRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "g-9").Return(fmt.Errorf("goal g-9: %w", entities.ErrNotFound))

		if w := perform(r, http.MethodDelete, "/metas/g-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
