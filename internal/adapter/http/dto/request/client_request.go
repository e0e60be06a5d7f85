package request

import "erp_vendas/internal/domain/entities"

type ClientRequest struct {
	Nome      string `json:"nome" binding:"required"`
	CNPJ      string `json:"cnpj" binding:"required"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
	Comprador string `json:"comprador"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Nome,
		TaxID:   r.CNPJ,
		Address: r.Endereco,
		City:    r.Cidade,
		State:   r.Estado,
		Buyer:   r.Comprador,
		Phone:   r.Telefone,
		Email:   r.Email,
	}
}
