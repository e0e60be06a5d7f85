package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathMaterials    = "/materiais"
	PathClients      = "/clientes"
	PathOrders       = "/pedidos"
	PathInvoices     = "/notas-fiscais"
	PathInstallments = "/vencimentos"
	PathGoals        = "/metas"
)

// addPingRoutes godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, h Handlers) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", h.Materials.List)
		materials.GET("/:id", h.Materials.Get)
		materials.POST("", admin, h.Materials.Create)
		materials.PUT("/:id", admin, h.Materials.Update)
		materials.DELETE("/:id", admin, h.Materials.Delete)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Clients.List)
		clients.GET("/:id", h.Clients.Get)
		clients.POST("", h.Clients.Create)
		clients.PUT("/:id", h.Clients.Update)
		clients.DELETE("/:id", admin, h.Clients.Delete)
	}
}

func addSalesRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, h Handlers) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.POST("", h.Orders.Create)
		orders.PUT("/:id", h.Orders.Update)
		orders.DELETE("/:id", admin, h.Orders.Delete)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.Invoices.List)
		invoices.GET("/:id", h.Invoices.Get)
		invoices.GET("/:id/vencimentos", h.Invoices.Installments)
		invoices.POST("", admin, h.Invoices.Issue)
		invoices.PUT("/:id", admin, h.Invoices.Correct)
	}

	installments := rg.Group(PathInstallments)
	{
		installments.GET("", h.Installments.List)
		installments.PUT("/:id", admin, h.Installments.MarkPaid)
	}
}

func addReportRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, h Handlers) {
	rg.GET("/dashboard/stats", h.Reports.Dashboard)
	rg.GET("/relatorios/comissoes", h.Reports.Commissions)
	rg.GET("/export/comissoes", admin, h.Reports.ExportCommissions)

	goals := rg.Group(PathGoals)
	{
		goals.GET("", h.Goals.List)
		goals.GET("/progresso", h.Reports.GoalProgress)
		goals.POST("", admin, h.Goals.Create)
		goals.PUT("/:id", admin, h.Goals.Update)
		goals.DELETE("/:id", admin, h.Goals.Delete)
	}
}
