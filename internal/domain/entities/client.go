package entities

import "time"

// Client is a customer company of the representative.
//
// Storage model (DynamoDB):
//   - PK: id
//   - unique key: cnpj
type Client struct {
	ID        string    `json:"id"`
	Reference string    `json:"referencia"`
	Name      string    `json:"nome"`
	TaxID     string    `json:"cnpj"`
	Address   string    `json:"endereco"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	Buyer     string    `json:"comprador"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
