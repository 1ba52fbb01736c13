package dogs

import "time"

// Sex define el sexo del perro.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func ParseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), true
	default:
		return "", false
	}
}

// Dog es el registro del animal. LicenseID queda vacío hasta que la licencia
// existe (estado intermedio breve durante el alta).
type Dog struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string
	Color string

	Age    int     // años
	Weight float64 // libras
	Sex    Sex

	SpayedNeutered  bool
	MicrochipNumber string

	LicenseID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
