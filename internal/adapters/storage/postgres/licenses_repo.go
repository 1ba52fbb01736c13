package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-licensing/internal/domain/licensing"
)

type LicensesRepo struct {
	db *sql.DB
}

func NewLicensesRepo(db *sql.DB) *LicensesRepo {
	return &LicensesRepo{db: db}
}

func (r *LicensesRepo) Create(ctx context.Context, l licensing.License) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO licenses (
			id, license_number,
			dog_id, owner_user_id,
			issue_date, expiration_date, fee, status,
			rabies_vaccination_date, rabies_vaccination_expiration,
			veterinarian_name, veterinarian_phone,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		l.ID,
		l.LicenseNumber,
		l.DogID,
		l.OwnerUserID,
		l.IssueDate,
		l.ExpirationDate,
		l.Fee,
		string(l.Status),
		l.RabiesVaccinationDate,
		l.RabiesVaccinationExpiration,
		l.VeterinarianName,
		l.VeterinarianPhone,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

// Update sobreescribe los campos que re-estampa una renovación. El número y
// las referencias dog/owner no cambian nunca.
func (r *LicensesRepo) Update(ctx context.Context, l licensing.License) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE licenses
		SET
			issue_date = $2,
			expiration_date = $3,
			fee = $4,
			status = $5,
			rabies_vaccination_date = $6,
			rabies_vaccination_expiration = $7,
			veterinarian_name = $8,
			veterinarian_phone = $9,
			updated_at = $10
		WHERE id = $1
	`,
		l.ID,
		l.IssueDate,
		l.ExpirationDate,
		l.Fee,
		string(l.Status),
		l.RabiesVaccinationDate,
		l.RabiesVaccinationExpiration,
		l.VeterinarianName,
		l.VeterinarianPhone,
		l.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LicensesRepo) GetByID(ctx context.Context, id string) (licensing.License, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return licensing.License{}, ErrNotFound
	}
	return r.getByField(ctx, "id", id)
}

func (r *LicensesRepo) GetByNumber(ctx context.Context, licenseNumber string) (licensing.License, error) {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return licensing.License{}, ErrNotFound
	}
	return r.getByField(ctx, "license_number", licenseNumber)
}

func (r *LicensesRepo) getByField(ctx context.Context, field, value string) (licensing.License, error) {
	// field viene de este mismo archivo, nunca del caller HTTP
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, license_number,
			dog_id, owner_user_id,
			issue_date, expiration_date, fee, status,
			rabies_vaccination_date, rabies_vaccination_expiration,
			veterinarian_name, veterinarian_phone,
			created_at, updated_at
		FROM licenses
		WHERE `+field+` = $1
	`, value)

	var l licensing.License
	var status string
	if err := row.Scan(
		&l.ID,
		&l.LicenseNumber,
		&l.DogID,
		&l.OwnerUserID,
		&l.IssueDate,
		&l.ExpirationDate,
		&l.Fee,
		&status,
		&l.RabiesVaccinationDate,
		&l.RabiesVaccinationExpiration,
		&l.VeterinarianName,
		&l.VeterinarianPhone,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return licensing.License{}, ErrNotFound
		}
		return licensing.License{}, err
	}

	l.Status = licensing.Status(status)
	return l, nil
}
