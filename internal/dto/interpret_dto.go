package dto

import "witt-interpreter-be/internal/entity"

type InterpretFrameworkRequest struct {
	Query     string            `json:"query" validate:"required"`
	Passages  []entity.Citation `json:"passages" validate:"required,min=1"`
	Framework string            `json:"framework" validate:"required"`
}

type InterpretFrameworkResponse struct {
	Interpretation    string                           `json:"interpretation"`
	Structured        *entity.StructuredInterpretation `json:"structuredInterpretation"`
	ReferencePassages []entity.Citation                `json:"referencePassages"`
	Framework         string                           `json:"framework"`
}

type InterpretTransactionRequest struct {
	Query         string            `json:"query" validate:"required"`
	WittPassages  []entity.Citation `json:"wittPassages" validate:"required,min=1"`
	TransPassages []entity.Citation `json:"transPassages"`
}

type InterpretTransactionResponse struct {
	Interpretation         string                           `json:"interpretation"`
	Structured             *entity.StructuredInterpretation `json:"structuredInterpretation"`
	WittReferencePassages  []entity.Citation                `json:"wittReferencePassages"`
	TransReferencePassages []entity.Citation                `json:"transReferencePassages"`
	Framework              string                           `json:"framework"`
}
