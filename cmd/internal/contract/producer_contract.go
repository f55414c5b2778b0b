package contract

type ProducerRequest struct {
	// TaxID accepts a CPF or CNPJ, with or without punctuation.
	TaxID string `json:"tax_id" validate:"required,notblank,max=20,taxid"`
	Name  string `json:"name" validate:"required,notblank,max=255"`
}

type UpdateProducerRequest struct {
	TaxID    *string `json:"tax_id" validate:"omitnil,notblank,max=20,taxid"`
	Name     *string `json:"name" validate:"omitnil,notblank,max=255"`
	IsActive *bool   `json:"is_active"`
}

type ProducerResponse struct {
	ID       int64  `json:"id"`
	TaxID    string `json:"tax_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`

	// Registration is only filled by the tax id lookup, for CNPJ producers.
	Registration *RegistrationResponse `json:"registration,omitempty"`
}

// RegistrationResponse is the federal registry record of a CNPJ.
type RegistrationResponse struct {
	CNPJ         string `json:"cnpj"`
	LegalName    string `json:"legal_name"`
	TradeName    string `json:"trade_name"`
	Status       string `json:"status"`
	StatusDate   string `json:"status_date"`
	MainActivity string `json:"main_activity"`
	City         string `json:"city"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	Cached       bool   `json:"cached"`
	CheckedAt    string `json:"checked_at"`
}
