package interfaces

import "erp_vendas/internal/domain/reporting"

// ICommissionExporter renders a commission report as a downloadable file.
type ICommissionExporter interface {
	Export(report reporting.CommissionReport) (content []byte, contentType string, err error)
}
