package response

import (
	"time"

	"erp_vendas/internal/domain/entities"
)

type ClientResponse struct {
	ID         string    `json:"id"`
	Referencia string    `json:"referencia"`
	Nome       string    `json:"nome"`
	CNPJ       string    `json:"cnpj"`
	Endereco   string    `json:"endereco"`
	Cidade     string    `json:"cidade"`
	Estado     string    `json:"estado"`
	Comprador  string    `json:"comprador"`
	Telefone   string    `json:"telefone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Referencia: c.Reference,
		Nome:       c.Name,
		CNPJ:       c.TaxID,
		Endereco:   c.Address,
		Cidade:     c.City,
		Estado:     c.State,
		Comprador:  c.Buyer,
		Telefone:   c.Phone,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	return mapSlice(cs, FromClient)
}
