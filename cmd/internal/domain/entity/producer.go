package entity

type Producer struct {
	Model
	// TaxID holds a CPF or CNPJ, digits only.
	TaxID    string `gorm:"column:tax_id;size:20;not null;uniqueIndex:uq_producers_tax_id"`
	Name     string `gorm:"size:255;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Producer) TableName() string {
	return "producers"
}
