package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"
	mock_interfaces "erp_vendas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type installmentMocks struct {
	repo      *mock_interfaces.MockIInstallmentRepository
	invoices  *mock_interfaces.MockIInvoiceRepository
	orders    *mock_interfaces.MockIOrderRepository
	materials *mock_interfaces.MockIMaterialRepository
}

func newInstallmentUseCase(t *testing.T) (*InstallmentUseCase, installmentMocks) {
	ctrl := gomock.NewController(t)
	m := installmentMocks{
		repo:      mock_interfaces.NewMockIInstallmentRepository(ctrl),
		invoices:  mock_interfaces.NewMockIInvoiceRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
	}
	uc := NewInstallmentUseCase(m.repo, m.invoices, m.orders, m.materials, fixedClock("2025-01-20T15:30:00Z"))
	return uc, m
}

func pendingInstallment() entities.Installment {
	return entities.Installment{
		ID:                "i1",
		InvoiceID:         "nf-1",
		Number:            1,
		TotalInstallments: 2,
		Value:             d("500"),
		DueDate:           date("2025-01-15"),
		Status:            entities.InstallmentStatusPendente,
		Commission:        d("25"),
		CommissionRate:    d("5"),
	}
}

func (m installmentMocks) expectRateChain(rate string) {
	m.invoices.EXPECT().GetByID(gomock.Any(), "nf-1").Return(entities.Invoice{ID: "nf-1", OrderID: "o1"}, nil)
	m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", MaterialID: "m1"}, nil)
	m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d(rate)}, nil)
}

func TestInstallmentUseCase_MarkPaid(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newInstallmentUseCase(t)
		_, err := uc.MarkPaid(context.Background(), " ", nil)
		expectKind(t, err, entities.KindValidation)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.Installment{}, nil)

		_, err := uc.MarkPaid(context.Background(), "i1", nil)
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})

	t.Run("already paid does not write", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		paid := pendingInstallment()
		paid.Status = entities.InstallmentStatusPago
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(paid, nil)

		_, err := uc.MarkPaid(context.Background(), "i1", nil)
		expectKind(t, err, entities.KindAlreadySettled)
	})

	t.Run("defaults to today and freezes current rate", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(pendingInstallment(), nil)
		m.expectRateChain("10")
		m.repo.EXPECT().MarkPaid(gomock.Any(), "i1", date("2025-01-20"), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, paidOn time.Time, c interfaces.CommissionUpdate, _ time.Time) (entities.Installment, error) {
				if !c.Amount.Equal(d("50")) || !c.Rate.Equal(d("10")) || c.RateUnknown {
					t.Fatalf("unexpected commission: %+v", c)
				}
				it := pendingInstallment()
				it.Status = entities.InstallmentStatusPago
				it.PaymentDate = &paidOn
				it.Commission = c.Amount
				it.CommissionRate = c.Rate
				return it, nil
			},
		)

		it, err := uc.MarkPaid(context.Background(), "i1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Status != entities.InstallmentStatusPago || it.PaymentDate == nil || !it.Commission.Equal(d("50")) {
			t.Fatalf("unexpected installment: %+v", it)
		}
	})

	t.Run("explicit payment date", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		paidOn := time.Date(2025, 1, 18, 22, 0, 0, 0, time.UTC)
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(pendingInstallment(), nil)
		m.expectRateChain("5")
		m.repo.EXPECT().MarkPaid(gomock.Any(), "i1", date("2025-01-18"), gomock.Any(), gomock.Any()).Return(entities.Installment{ID: "i1"}, nil)

		if _, err := uc.MarkPaid(context.Background(), "i1", &paidOn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("losing a concurrent payment", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(pendingInstallment(), nil)
		m.expectRateChain("5")
		m.repo.EXPECT().MarkPaid(gomock.Any(), "i1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Installment{}, entities.ErrAlreadySettled)

		_, err := uc.MarkPaid(context.Background(), "i1", nil)
		expectKind(t, err, entities.KindAlreadySettled)
	})
}

func TestInstallmentUseCase_RecomputeForMaterial(t *testing.T) {
	t.Run("rewrites unpaid rows only", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		paid := pendingInstallment()
		paid.ID = "i0"
		paid.Status = entities.InstallmentStatusPago
		unchanged := pendingInstallment()
		unchanged.ID = "i9"
		unchanged.Value = d("0")
		unchanged.Commission = d("0")
		unchanged.CommissionRate = d("8")

		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("8")}, nil)
		m.orders.EXPECT().ListByMaterial(gomock.Any(), "m1").Return([]entities.Order{{ID: "o1", MaterialID: "m1"}}, nil)
		m.invoices.EXPECT().ListByOrder(gomock.Any(), "o1").Return([]entities.Invoice{{ID: "nf-1"}}, nil)
		m.repo.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return([]entities.Installment{paid, pendingInstallment(), unchanged}, nil)
		m.repo.EXPECT().UpdateCommission(gomock.Any(), "i1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, c interfaces.CommissionUpdate, _ time.Time) (bool, error) {
				if !c.Amount.Equal(d("40")) || !c.Rate.Equal(d("8")) {
					t.Fatalf("unexpected commission: %+v", c)
				}
				return true, nil
			},
		)

		n, err := uc.RecomputeForMaterial(context.Background(), "m1")
		if err != nil || n != 1 {
			t.Fatalf("expected 1 update, got %d (%v)", n, err)
		}
	})

	t.Run("row paid meanwhile is not counted", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("8")}, nil)
		m.orders.EXPECT().ListByMaterial(gomock.Any(), "m1").Return([]entities.Order{{ID: "o1"}}, nil)
		m.invoices.EXPECT().ListByOrder(gomock.Any(), "o1").Return([]entities.Invoice{{ID: "nf-1"}}, nil)
		m.repo.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return([]entities.Installment{pendingInstallment()}, nil)
		m.repo.EXPECT().UpdateCommission(gomock.Any(), "i1", gomock.Any(), gomock.Any()).Return(false, nil)

		n, err := uc.RecomputeForMaterial(context.Background(), "m1")
		if err != nil || n != 0 {
			t.Fatalf("expected 0 updates, got %d (%v)", n, err)
		}
	})

	t.Run("storage failure stops", func(t *testing.T) {
		uc, m := newInstallmentUseCase(t)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("8")}, nil)
		m.orders.EXPECT().ListByMaterial(gomock.Any(), "m1").Return(nil, errDB)

		_, err := uc.RecomputeForMaterial(context.Background(), "m1")
		expectKind(t, err, entities.KindStorageFailure)
	})
}

func TestInstallmentUseCase_List(t *testing.T) {
	uc, m := newInstallmentUseCase(t)
	paidOn := date("2025-01-02")
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Installment{
		{ID: "late", DueDate: date("2025-01-19"), Status: entities.InstallmentStatusPendente},
		{ID: "paid", DueDate: date("2025-01-01"), Status: entities.InstallmentStatusPago, PaymentDate: &paidOn},
		{ID: "due-today", DueDate: date("2025-01-20"), Status: entities.InstallmentStatusPendente},
	}, nil)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]entities.InstallmentStatus{
		"late":      entities.InstallmentStatusAtrasado,
		"paid":      entities.InstallmentStatusPago,
		"due-today": entities.InstallmentStatusPendente,
	}
	for _, it := range items {
		if it.Status != want[it.ID] {
			t.Fatalf("%s: expected %s, got %s", it.ID, want[it.ID], it.Status)
		}
	}
}
