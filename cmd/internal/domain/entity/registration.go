package entity

import "time"

// RegistrationStatus is the standing of a CNPJ at the federal company registry.
type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "ACTIVE"
	RegistrationClosed    RegistrationStatus = "CLOSED"
	RegistrationSuspended RegistrationStatus = "SUSPENDED"
	RegistrationUnfit     RegistrationStatus = "UNFIT"
	RegistrationUnknown   RegistrationStatus = "UNKNOWN"
)

const (
	// RegistrationTTL is how long a registry answer about a known CNPJ is trusted.
	RegistrationTTL = 10 * time.Hour

	// MissingRegistrationTTL is shorter: a CNPJ opened today shows up in the registry soon.
	MissingRegistrationTTL = time.Hour
)

// Registration caches what the federal registry says about a producer's CNPJ.
//
// Rows with Found set to false record CNPJs the registry does not know, so
// they are not asked for again until MissingRegistrationTTL runs out.
type Registration struct {
	CNPJ         string             `gorm:"primaryKey;column:cnpj;size:14"`
	LegalName    string             `gorm:"size:255"`
	TradeName    string             `gorm:"size:255"`
	Status       RegistrationStatus `gorm:"size:20"`
	StatusDate   string             `gorm:"size:10"`
	MainActivity string             `gorm:"size:255"`
	City         string             `gorm:"size:100"`
	State        string             `gorm:"size:2"`
	Found        bool               `gorm:"not null"`
	CheckedAt    int64              `gorm:"not null;index"` // unix millis
}

func (Registration) TableName() string {
	return "producer_registrations"
}

// Active reports whether the registry knows the CNPJ and lists it as active.
func (r *Registration) Active() bool {
	return r.Found && r.Status == RegistrationActive
}

// ExpiresAt returns the unix millis after which the row must be refreshed.
func (r *Registration) ExpiresAt() int64 {
	ttl := RegistrationTTL
	if !r.Found {
		ttl = MissingRegistrationTTL
	}
	return r.CheckedAt + ttl.Milliseconds()
}
