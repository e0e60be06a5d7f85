package main

import (
	_ "erp_vendas/docs"
	"erp_vendas/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ERP Vendas API
// @version         1.0
// @description     Commission ledger for sales representatives: catalog, orders, invoices, installments and reports, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cli.Execute()
}
