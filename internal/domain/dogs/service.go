package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name            string
	Breed           string
	Color           string
	Age             int
	Weight          float64
	Sex             string
	SpayedNeutered  bool
	MicrochipNumber string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Dog, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" || strings.TrimSpace(in.Color) == "" {
		return Dog{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight <= 0 {
		return Dog{}, ErrInvalidInput
	}
	sex, ok := ParseSex(strings.TrimSpace(in.Sex))
	if !ok {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            strings.TrimSpace(in.Name),
		Breed:           strings.TrimSpace(in.Breed),
		Color:           strings.TrimSpace(in.Color),
		Age:             in.Age,
		Weight:          in.Weight,
		Sex:             sex,
		SpayedNeutered:  in.SpayedNeutered,
		MicrochipNumber: strings.TrimSpace(in.MicrochipNumber),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrInvalidInput
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// AttachLicense deja apuntando al perro a su licencia vigente. Se llama recién
// cuando la licencia ya fue insertada.
func (s *Service) AttachLicense(ctx context.Context, dogID, licenseID string) error {
	dogID = strings.TrimSpace(dogID)
	licenseID = strings.TrimSpace(licenseID)
	if dogID == "" || licenseID == "" {
		return ErrInvalidInput
	}
	if err := s.repo.SetLicense(ctx, dogID, licenseID); err != nil {
		return ErrNotFound
	}
	return nil
}
