package owners

import "time"

// Owner es el perfil del responsable de los perros registrados.
// Invariante: a lo más un Owner por identidad de usuario (UserID único);
// re-registrar actualiza el perfil existente en vez de duplicarlo.
type Owner struct {
	ID     string
	UserID string

	FirstName string
	LastName  string

	Address string
	City    string
	State   string
	ZipCode string
	Phone   string

	EmergencyContact string
	EmergencyPhone   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
