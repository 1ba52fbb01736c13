package licensing

import "time"

// Status define los estados declarados en el esquema de licencias.
// Los workflows actuales solo escriben "active": expirado / por vencer se
// derivan de expiration_date al leer (ver IsExpired / IsExpiringSoon).
// @Enum active, expired, pending
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusPending Status = "pending"
)

// License es el permiso anual atado a un perro. La renovación sobreescribe
// este mismo registro (fechas, fee, vacunas, veterinario); no se guarda
// historial de renovaciones pasadas.
type License struct {
	ID            string
	LicenseNumber string

	DogID       string
	OwnerUserID string

	IssueDate      time.Time
	ExpirationDate time.Time
	Fee            int
	Status         Status

	RabiesVaccinationDate       time.Time
	RabiesVaccinationExpiration time.Time
	VeterinarianName            string
	VeterinarianPhone           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// expiringSoonWindow es la ventana de aviso antes del vencimiento.
const expiringSoonWindow = 30 * 24 * time.Hour

// IsExpired: la licencia venció (now > expiration).
func IsExpired(l License, now time.Time) bool {
	return now.After(l.ExpirationDate)
}

// IsExpiringSoon: vence dentro de los próximos 30 días (sin estar vencida).
func IsExpiringSoon(l License, now time.Time) bool {
	if !now.Before(l.ExpirationDate) {
		return false
	}
	return l.ExpirationDate.Before(now.Add(expiringSoonWindow))
}

// Renewable: la UI solo ofrece renovar cuando está vencida o por vencer.
func Renewable(l License, now time.Time) bool {
	return IsExpired(l, now) || IsExpiringSoon(l, now)
}
