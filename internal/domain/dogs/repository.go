package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error)

	// SetLicense asigna la referencia a la licencia vigente (patch puntual,
	// no reescribe el resto del registro).
	SetLicense(ctx context.Context, dogID, licenseID string) error
}
