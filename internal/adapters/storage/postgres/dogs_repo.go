package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-licensing/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, owner_user_id,
			name, breed, color,
			age, weight, sex,
			spayed_neutered, microchip_number,
			license_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		d.ID,
		d.OwnerUserID,
		d.Name,
		d.Breed,
		d.Color,
		d.Age,
		d.Weight,
		string(d.Sex),
		d.SpayedNeutered,
		d.MicrochipNumber,
		toNullString(d.LicenseID),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, color,
			age, weight, sex,
			spayed_neutered, microchip_number,
			license_id,
			created_at, updated_at
		FROM dogs
		WHERE id = $1
	`, id)

	d, err := scanDog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogs.Dog, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, color,
			age, weight, sex,
			spayed_neutered, microchip_number,
			license_id,
			created_at, updated_at
		FROM dogs
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *DogsRepo) SetLicense(ctx context.Context, dogID, licenseID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET license_id = $2, updated_at = now()
		WHERE id = $1
	`, dogID, licenseID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var sex string
	var licenseID sql.NullString

	if err := row.Scan(
		&d.ID,
		&d.OwnerUserID,
		&d.Name,
		&d.Breed,
		&d.Color,
		&d.Age,
		&d.Weight,
		&sex,
		&d.SpayedNeutered,
		&d.MicrochipNumber,
		&licenseID,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}

	d.Sex = dogs.Sex(sex)
	if licenseID.Valid {
		d.LicenseID = licenseID.String
	}
	return d, nil
}

// license_id es nullable: vacío => NULL (perro aún sin licencia emitida)
func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
