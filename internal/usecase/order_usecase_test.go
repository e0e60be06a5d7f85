package usecase

import (
	"context"
	"errors"
	"testing"

	"erp_vendas/internal/domain/entities"
	mock_interfaces "erp_vendas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	repo      *mock_interfaces.MockIOrderRepository
	clients   *mock_interfaces.MockIClientRepository
	materials *mock_interfaces.MockIMaterialRepository
	invoices  *mock_interfaces.MockIInvoiceRepository
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderMocks) {
	ctrl := gomock.NewController(t)
	m := orderMocks{
		repo:      mock_interfaces.NewMockIOrderRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
		invoices:  mock_interfaces.NewMockIInvoiceRepository(ctrl),
	}
	return NewOrderUseCase(m.repo, m.clients, m.materials, m.invoices, fixedClock("2025-01-10T12:34:56Z")), m
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("cannot start invoiced", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.Create(context.Background(), entities.Order{ClientID: "c1", Status: entities.OrderStatusFaturado})
		expectKind(t, err, entities.KindInvalidOrderState)
	})

	t.Run("unknown client", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c9").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), entities.Order{ClientID: "c9", ItemName: "x"})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "cliente_id" {
			t.Fatalf("expected cliente_id validation error, got %v", err)
		}
	})

	t.Run("free text requires item name", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)

		_, err := uc.Create(context.Background(), entities.Order{ClientID: "c1"})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "item_nome" {
			t.Fatalf("expected item_nome validation error, got %v", err)
		}
	})

	t.Run("defaults and derived weight", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", Description: "Caixa parda", UnitWeight: d("0.45")}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusPendente || o.PurchaseOrderNo != "OC-20250110123456" {
					t.Fatalf("unexpected defaults: %+v", o)
				}
				if o.ItemName != "Caixa parda" || !o.TotalWeight.Equal(d("450")) {
					t.Fatalf("unexpected derived fields: %+v", o)
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Order{ClientID: "c1", MaterialID: "m1", Quantity: 1000, TotalValue: d("3200")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	t.Run("invoiced order keeps its status", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusFaturado}, nil)

		_, err := uc.Update(context.Background(), "o1", entities.Order{ClientID: "c1", ItemName: "x", Status: entities.OrderStatusPendente})
		if !errors.Is(err, ErrOrderInvoiced) {
			t.Fatalf("expected ErrOrderInvoiced, got %v", err)
		}
	})

	t.Run("cannot set FATURADO by hand", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusImplantado}, nil)

		_, err := uc.Update(context.Background(), "o1", entities.Order{ClientID: "c1", ItemName: "x", Status: entities.OrderStatusFaturado})
		if !errors.Is(err, ErrOrderStatusSet) {
			t.Fatalf("expected ErrOrderStatusSet, got %v", err)
		}
	})

	t.Run("implant order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		current := entities.Order{ID: "o1", ClientID: "c1", ItemName: "x", PurchaseOrderNo: "OC-1", Status: entities.OrderStatusPendente}
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.OrderStatusPendente).DoAndReturn(
			func(_ context.Context, o entities.Order, _ entities.OrderStatus) (entities.Order, error) {
				if o.PurchaseOrderNo != "OC-1" || o.Status != entities.OrderStatusImplantado {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)

		got, err := uc.Update(context.Background(), "o1", entities.Order{ClientID: "c1", ItemName: "x", Status: entities.OrderStatusImplantado})
		if err != nil || got.Status != entities.OrderStatusImplantado {
			t.Fatalf("unexpected result: %+v (%v)", got, err)
		}
	})

	t.Run("invoiced order keeps material and value", func(t *testing.T) {
		current := entities.Order{
			ID: "o1", ClientID: "c1", MaterialID: "m1", ItemName: "Caixa",
			TotalValue: d("1000"), Status: entities.OrderStatusFaturado,
		}
		edits := []struct {
			name string
			in   entities.Order
		}{
			{"material", entities.Order{ClientID: "c1", MaterialID: "m2", ItemName: "Caixa", TotalValue: d("1000")}},
			{"unlinked material", entities.Order{ClientID: "c1", ItemName: "Caixa", TotalValue: d("1000")}},
			{"value", entities.Order{ClientID: "c1", MaterialID: "m1", ItemName: "Caixa", TotalValue: d("1500")}},
		}
		for _, tc := range edits {
			t.Run(tc.name, func(t *testing.T) {
				uc, m := newOrderUseCase(t)
				m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
				m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
				m.materials.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Material{ID: tc.in.MaterialID}, nil).AnyTimes()

				_, err := uc.Update(context.Background(), "o1", tc.in)
				if !errors.Is(err, ErrOrderTermsFixed) {
					t.Fatalf("expected ErrOrderTermsFixed, got %v", err)
				}
			})
		}
	})

	t.Run("invoiced order accepts other edits", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		current := entities.Order{
			ID: "o1", ClientID: "c1", MaterialID: "m1", ItemName: "Caixa", PurchaseOrderNo: "OC-1",
			TotalValue: d("1000"), Status: entities.OrderStatusFaturado,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.OrderStatusFaturado).DoAndReturn(
			func(_ context.Context, o entities.Order, _ entities.OrderStatus) (entities.Order, error) {
				return o, nil
			},
		)

		in := entities.Order{ClientID: "c1", MaterialID: "m1", ItemName: "Caixa", FactoryNumber: "F-9", TotalValue: d("1000.00")}
		got, err := uc.Update(context.Background(), "o1", in)
		if err != nil || got.FactoryNumber != "F-9" || got.Status != entities.OrderStatusFaturado {
			t.Fatalf("unexpected result: %+v (%v)", got, err)
		}
	})

	t.Run("invoiced concurrently", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		current := entities.Order{ID: "o1", ClientID: "c1", ItemName: "x", Status: entities.OrderStatusImplantado}
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(current, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.OrderStatusImplantado).Return(entities.Order{}, entities.ErrInvalidOrderState)

		_, err := uc.Update(context.Background(), "o1", entities.Order{ClientID: "c1", ItemName: "x", Status: entities.OrderStatusPendente})
		expectKind(t, err, entities.KindInvalidOrderState)
	})
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("invoiced orders are kept", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1"}, nil)
		m.invoices.EXPECT().ListByOrder(gomock.Any(), "o1").Return([]entities.Invoice{{ID: "nf-1"}}, nil)

		if err := uc.Delete(context.Background(), "o1"); !errors.Is(err, ErrOrderReferenced) {
			t.Fatalf("expected ErrOrderReferenced, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1"}, nil)
		m.invoices.EXPECT().ListByOrder(gomock.Any(), "o1").Return(nil, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "o1").Return(nil)

		if err := uc.Delete(context.Background(), "o1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
