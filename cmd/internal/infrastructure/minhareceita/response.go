package minhareceita

import (
	"strings"

	"brainagro/cmd/internal/domain/entity"
)

// registrationResponse holds the fields of a minhareceita answer the
// producer registry keeps. The payload has many more.
type registrationResponse struct {
	CNPJ         string `json:"cnpj"`
	LegalName    string `json:"razao_social"`
	TradeName    string `json:"nome_fantasia"`
	Status       string `json:"descricao_situacao_cadastral"`
	StatusDate   string `json:"data_situacao_cadastral"`
	MainActivity string `json:"cnae_fiscal_descricao"`
	City         string `json:"municipio"`
	State        string `json:"uf"`
}

func (r *registrationResponse) ToDomain() *entity.Registration {
	return &entity.Registration{
		CNPJ:         r.CNPJ,
		LegalName:    r.LegalName,
		TradeName:    r.TradeName,
		Status:       translateStatus(r.Status),
		StatusDate:   r.StatusDate,
		MainActivity: r.MainActivity,
		City:         r.City,
		State:        strings.ToUpper(r.State),
		Found:        true,
	}
}

func translateStatus(status string) entity.RegistrationStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "ATIVA":
		return entity.RegistrationActive
	case "BAIXADA":
		return entity.RegistrationClosed
	case "SUSPENSA":
		return entity.RegistrationSuspended
	case "INAPTA":
		return entity.RegistrationUnfit
	default:
		return entity.RegistrationUnknown
	}
}
