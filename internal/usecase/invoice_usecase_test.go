package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"erp_vendas/internal/domain/entities"
	mock_interfaces "erp_vendas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type invoiceMocks struct {
	repo         *mock_interfaces.MockIInvoiceRepository
	orders       *mock_interfaces.MockIOrderRepository
	materials    *mock_interfaces.MockIMaterialRepository
	installments *mock_interfaces.MockIInstallmentRepository
}

func newInvoiceUseCase(t *testing.T) (*InvoiceUseCase, invoiceMocks) {
	ctrl := gomock.NewController(t)
	m := invoiceMocks{
		repo:         mock_interfaces.NewMockIInvoiceRepository(ctrl),
		orders:       mock_interfaces.NewMockIOrderRepository(ctrl),
		materials:    mock_interfaces.NewMockIMaterialRepository(ctrl),
		installments: mock_interfaces.NewMockIInstallmentRepository(ctrl),
	}
	uc := NewInvoiceUseCase(m.repo, m.orders, m.materials, m.installments, fixedClock("2025-01-10T12:00:00Z"))
	return uc, m
}

func issueCmd() IssueInvoiceCommand {
	return IssueInvoiceCommand{
		OrderID:          "o1",
		InvoiceNumber:    " NF-1 ",
		TotalValue:       d("1000.00"),
		InstallmentCount: 2,
		FirstDueDate:     date("2025-01-15"),
	}
}

var implantedOrder = entities.Order{
	ID:         "o1",
	ClientID:   "c1",
	MaterialID: "m1",
	TotalValue: d("1000.00"),
	Status:     entities.OrderStatusImplantado,
}

func TestInvoiceUseCase_Issue(t *testing.T) {
	invalid := []struct {
		name  string
		cmd   func(c *IssueInvoiceCommand)
		field string
	}{
		{"empty number", func(c *IssueInvoiceCommand) { c.InvoiceNumber = "  " }, "numero_nf"},
		{"empty order", func(c *IssueInvoiceCommand) { c.OrderID = "" }, "pedido_id"},
		{"zero installments", func(c *IssueInvoiceCommand) { c.InstallmentCount = 0 }, "numero_parcelas"},
		{"too many installments", func(c *IssueInvoiceCommand) { c.InstallmentCount = 49 }, "numero_parcelas"},
		{"zero total", func(c *IssueInvoiceCommand) { c.TotalValue = d("0") }, "valor_total"},
		{"fractional cents", func(c *IssueInvoiceCommand) { c.TotalValue = d("10.001") }, "valor_total"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newInvoiceUseCase(t)
			cmd := issueCmd()
			tc.cmd(&cmd)
			_, _, err := uc.Issue(context.Background(), cmd)
			var ve *entities.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
		})
	}

	t.Run("order not found", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{}, nil)

		_, _, err := uc.Issue(context.Background(), issueCmd())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already invoiced", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		order := implantedOrder
		order.Status = entities.OrderStatusFaturado
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)

		_, _, err := uc.Issue(context.Background(), issueCmd())
		expectKind(t, err, entities.KindInvalidOrderState)
	})

	t.Run("split and commission", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(implantedOrder, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("5")}, nil)
		m.repo.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, items []entities.Installment, _ time.Time) error {
				if inv.Number != "NF-1" || inv.ClientID != "c1" || inv.OrderID != "o1" || inv.InstallmentCount != 2 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if !inv.IssueDate.Equal(date("2025-01-10")) {
					t.Fatalf("expected issue date to default to today, got %s", inv.IssueDate)
				}
				wantDue := []string{"2025-01-15", "2025-02-15"}
				for i, it := range items {
					if it.InvoiceID != inv.ID || it.Number != i+1 || it.TotalInstallments != 2 {
						t.Fatalf("unexpected installment: %+v", it)
					}
					if !it.Value.Equal(d("500")) || !it.Commission.Equal(d("25")) || !it.CommissionRate.Equal(d("5")) {
						t.Fatalf("unexpected amounts: %+v", it)
					}
					if !it.DueDate.Equal(date(wantDue[i])) || it.Status != entities.InstallmentStatusPendente {
						t.Fatalf("unexpected schedule: %+v", it)
					}
				}
				return nil
			},
		)

		inv, items, err := uc.Issue(context.Background(), issueCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" || len(items) != 2 {
			t.Fatalf("unexpected result: %+v %+v", inv, items)
		}
	})

	t.Run("free text order has unknown rate", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		order := implantedOrder
		order.MaterialID = ""
		order.ItemName = "Caixa sob medida"
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.repo.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, items, err := uc.Issue(context.Background(), issueCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, it := range items {
			if !it.CommissionRateUnknown || !it.Commission.IsZero() {
				t.Fatalf("expected unknown rate: %+v", it)
			}
		}
	})

	t.Run("explicit due dates", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(implantedOrder, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("5")}, nil)
		m.repo.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		cmd := issueCmd()
		cmd.FirstDueDate = time.Time{}
		cmd.DueDates = []time.Time{date("2025-03-01"), date("2025-03-20")}
		_, items, err := uc.Issue(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !items[1].DueDate.Equal(date("2025-03-20")) {
			t.Fatalf("expected explicit due date, got %s", items[1].DueDate)
		}
	})

	t.Run("duplicate number is rejected by the store", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(implantedOrder, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("5")}, nil)
		m.repo.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ErrDuplicateInvoiceNumber)

		_, _, err := uc.Issue(context.Background(), issueCmd())
		expectKind(t, err, entities.KindDuplicateInvoiceNumber)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{}, errDB)

		_, _, err := uc.Issue(context.Background(), issueCmd())
		expectKind(t, err, entities.KindStorageFailure)
	})
}

func TestInvoiceUseCase_Correct(t *testing.T) {
	invoice := entities.Invoice{ID: "nf-1", OrderID: "o1", Number: "NF-1", TotalValue: d("1000"), InstallmentCount: 2}
	cmd := CorrectInvoiceCommand{TotalValue: d("900"), InstallmentCount: 3, FirstDueDate: date("2025-02-10")}

	t.Run("not found", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "nf-x").Return(entities.Invoice{}, nil)

		_, _, err := uc.Correct(context.Background(), "nf-x", cmd)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("refused after a payment", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "nf-1").Return(invoice, nil)
		m.installments.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return([]entities.Installment{
			{ID: "i1", Status: entities.InstallmentStatusPago},
			{ID: "i2", Status: entities.InstallmentStatusPendente},
		}, nil)

		_, _, err := uc.Correct(context.Background(), "nf-1", cmd)
		expectKind(t, err, entities.KindAlreadySettled)
	})

	t.Run("regenerates schedule", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		previous := []entities.Installment{{ID: "i1"}, {ID: "i2"}}
		m.repo.EXPECT().GetByID(gomock.Any(), "nf-1").Return(invoice, nil)
		m.installments.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return(previous, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(implantedOrder, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("2")}, nil)
		m.repo.EXPECT().ReplaceInstallments(gomock.Any(), invoice, gomock.Any(), previous, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, inv entities.Invoice, _ []entities.Installment, items []entities.Installment) error {
				if !inv.TotalValue.Equal(d("900")) || inv.InstallmentCount != 3 || len(items) != 3 {
					t.Fatalf("unexpected corrected invoice: %+v", inv)
				}
				if !items[2].DueDate.Equal(date("2025-04-10")) || !items[0].Commission.Equal(d("6")) {
					t.Fatalf("unexpected installments: %+v", items)
				}
				return nil
			},
		)

		inv, items, err := uc.Correct(context.Background(), "nf-1", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Number != "NF-1" || len(items) != 3 {
			t.Fatalf("unexpected result: %+v", inv)
		}
	})

	t.Run("concurrent correction loses", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "nf-1").Return(invoice, nil)
		m.installments.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return([]entities.Installment{{ID: "i1"}}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(implantedOrder, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", CommissionRate: d("2")}, nil)
		m.repo.EXPECT().ReplaceInstallments(gomock.Any(), invoice, gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ErrConflict)

		_, _, err := uc.Correct(context.Background(), "nf-1", cmd)
		expectKind(t, err, entities.KindConflict)
	})
}

func TestInvoiceUseCase_Installments(t *testing.T) {
	uc, m := newInvoiceUseCase(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.repo.EXPECT().GetByID(gomock.Any(), "nf-1").Return(entities.Invoice{ID: "nf-1"}, nil)
	m.installments.EXPECT().ListByInvoice(gomock.Any(), "nf-1").Return([]entities.Installment{
		{ID: "b", InvoiceID: "nf-1", Number: 2, DueDate: date("2025-02-15"), Status: entities.InstallmentStatusPendente, CreatedAt: created},
		{ID: "a", InvoiceID: "nf-1", Number: 1, DueDate: date("2025-01-05"), Status: entities.InstallmentStatusPendente, CreatedAt: created},
	}, nil)

	items, err := uc.Installments(context.Background(), "nf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].ID != "a" || items[0].Status != entities.InstallmentStatusAtrasado || items[1].Status != entities.InstallmentStatusPendente {
		t.Fatalf("unexpected installments: %+v", items)
	}
}

func TestInvoiceUseCase_List(t *testing.T) {
	uc, m := newInvoiceUseCase(t)
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
		{ID: "old", CreatedAt: older},
		{ID: "new", CreatedAt: older.Add(time.Hour)},
	}, nil)

	items, err := uc.List(context.Background())
	if err != nil || items[0].ID != "new" {
		t.Fatalf("expected newest first, got %+v (%v)", items, err)
	}
}
