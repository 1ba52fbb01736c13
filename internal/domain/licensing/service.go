package licensing

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-licensing/internal/domain/dogs"
	"dog-licensing/internal/domain/owners"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound cubre también "la licencia es de otro usuario": el contrato
	// original no distingue not-found de not-owned hacia el caller.
	ErrNotFound = errors.New("license not found")
)

type Service struct {
	repo   Repository
	dogs   *dogs.Service
	owners *owners.Service
	fees   FeeSchedule
	now    func() time.Time
}

func NewService(repo Repository, dogsSvc *dogs.Service, ownersSvc *owners.Service, fees FeeSchedule) *Service {
	if fees.PeriodDays <= 0 {
		fees = DefaultFeeSchedule()
	}
	return &Service{
		repo:   repo,
		dogs:   dogsSvc,
		owners: ownersSvc,
		fees:   fees,
		now:    time.Now,
	}
}

type VaccinationInput struct {
	RabiesVaccinationDate       time.Time
	RabiesVaccinationExpiration time.Time
	VeterinarianName            string
	VeterinarianPhone           string
}

func (in VaccinationInput) validate() error {
	if in.RabiesVaccinationDate.IsZero() || in.RabiesVaccinationExpiration.IsZero() {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.VeterinarianName) == "" || strings.TrimSpace(in.VeterinarianPhone) == "" {
		return ErrInvalidInput
	}
	return nil
}

type RegisterInput struct {
	Dog         dogs.CreateInput
	Owner       owners.UpsertInput
	Vaccination VaccinationInput
}

type RegisterResult struct {
	DogID         string
	LicenseID     string
	LicenseNumber string
}

// Register ejecuta el alta completa: upsert del Owner, alta del Dog, emisión
// de la License y back-fill de la referencia en el Dog. La secuencia NO es
// atómica: un corte entre pasos deja un perro sin licencia, visible para los
// lectores como license ausente. Cada insert/patch individual sí lo es.
func (s *Service) Register(ctx context.Context, userID string, in RegisterInput) (RegisterResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return RegisterResult{}, ErrInvalidInput
	}
	if err := in.Vaccination.validate(); err != nil {
		return RegisterResult{}, err
	}

	// 1) Owner: actualizar si existe, crear si no. Nunca duplica.
	if _, err := s.owners.Upsert(ctx, userID, in.Owner); err != nil {
		return RegisterResult{}, err
	}

	// 2) Dog sin referencia a licencia todavía.
	dog, err := s.dogs.Create(ctx, userID, in.Dog)
	if err != nil {
		return RegisterResult{}, err
	}

	// 3) Emitir licencia con el fee vigente y número derivado del perro.
	q := s.fees.Quote(dog.SpayedNeutered, s.now())
	number := LicenseNumberFor(dog.ID, q.IssueDate)

	lic := License{
		ID:                          uuid.NewString(),
		LicenseNumber:               number,
		DogID:                       dog.ID,
		OwnerUserID:                 userID,
		IssueDate:                   q.IssueDate,
		ExpirationDate:              q.ExpirationDate,
		Fee:                         q.Fee,
		Status:                      StatusActive,
		RabiesVaccinationDate:       in.Vaccination.RabiesVaccinationDate,
		RabiesVaccinationExpiration: in.Vaccination.RabiesVaccinationExpiration,
		VeterinarianName:            strings.TrimSpace(in.Vaccination.VeterinarianName),
		VeterinarianPhone:           strings.TrimSpace(in.Vaccination.VeterinarianPhone),
		CreatedAt:                   q.IssueDate,
		UpdatedAt:                   q.IssueDate,
	}

	if err := s.repo.Create(ctx, lic); err != nil {
		return RegisterResult{}, err
	}

	// 4) Back-fill de la referencia en el perro.
	if err := s.dogs.AttachLicense(ctx, dog.ID, lic.ID); err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{
		DogID:         dog.ID,
		LicenseID:     lic.ID,
		LicenseNumber: number,
	}, nil
}

// Renew re-estampa la misma licencia: fechas, fee, status, vacunas y
// veterinario. El fee se recalcula con el flag castrado/esterilizado ACTUAL
// del perro, no con el del alta original. Precondiciones en orden; si alguna
// falla no se escribe nada.
func (s *Service) Renew(ctx context.Context, userID, licenseID string, in VaccinationInput) error {
	userID = strings.TrimSpace(userID)
	licenseID = strings.TrimSpace(licenseID)
	if userID == "" || licenseID == "" {
		return ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return err
	}

	lic, err := s.repo.GetByID(ctx, licenseID)
	if err != nil {
		return ErrNotFound
	}
	if lic.OwnerUserID != userID {
		return ErrNotFound
	}

	dog, err := s.dogs.GetByID(ctx, lic.DogID)
	if err != nil {
		return ErrNotFound
	}

	q := s.fees.Quote(dog.SpayedNeutered, s.now())

	lic.IssueDate = q.IssueDate
	lic.ExpirationDate = q.ExpirationDate
	lic.Fee = q.Fee
	lic.Status = StatusActive
	lic.RabiesVaccinationDate = in.RabiesVaccinationDate
	lic.RabiesVaccinationExpiration = in.RabiesVaccinationExpiration
	lic.VeterinarianName = strings.TrimSpace(in.VeterinarianName)
	lic.VeterinarianPhone = strings.TrimSpace(in.VeterinarianPhone)
	lic.UpdatedAt = q.IssueDate

	return s.repo.Update(ctx, lic)
}

// DogWithLicense es un Dog anotado con su licencia vigente (nil si el perro
// quedó sin licencia, p.ej. por un alta cortada a la mitad).
type DogWithLicense struct {
	Dog     dogs.Dog
	License *License
}

// ListMyDogs junta los perros del usuario con sus licencias. Sin identidad el
// handler responde lista vacía sin llegar acá.
func (s *Service) ListMyDogs(ctx context.Context, userID string) ([]DogWithLicense, error) {
	items, err := s.dogs.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DogWithLicense, 0, len(items))
	for _, d := range items {
		dwl := DogWithLicense{Dog: d}
		if d.LicenseID != "" {
			if lic, err := s.repo.GetByID(ctx, d.LicenseID); err == nil {
				dwl.License = &lic
			}
		}
		out = append(out, dwl)
	}
	return out, nil
}

// LookupByNumber busca una licencia por su número impreso en la chapita.
func (s *Service) LookupByNumber(ctx context.Context, licenseNumber string) (License, error) {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return License{}, ErrInvalidInput
	}
	lic, err := s.repo.GetByNumber(ctx, licenseNumber)
	if err != nil {
		return License{}, ErrNotFound
	}
	return lic, nil
}
