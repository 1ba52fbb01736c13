package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-licensing/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id, user_id,
			first_name, last_name,
			address, city, state, zip_code, phone,
			emergency_contact, emergency_phone,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		o.ID,
		o.UserID,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.State,
		o.ZipCode,
		o.Phone,
		o.EmergencyContact,
		o.EmergencyPhone,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			state = $6,
			zip_code = $7,
			phone = $8,
			emergency_contact = $9,
			emergency_phone = $10,
			updated_at = $11
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.State,
		o.ZipCode,
		o.Phone,
		o.EmergencyContact,
		o.EmergencyPhone,
		o.UpdatedAt,
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

func (r *OwnersRepo) GetByUserID(ctx context.Context, userID string) (owners.Owner, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return owners.Owner{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			first_name, last_name,
			address, city, state, zip_code, phone,
			emergency_contact, emergency_phone,
			created_at, updated_at
		FROM owners
		WHERE user_id = $1
	`, userID)

	var o owners.Owner
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.FirstName,
		&o.LastName,
		&o.Address,
		&o.City,
		&o.State,
		&o.ZipCode,
		&o.Phone,
		&o.EmergencyContact,
		&o.EmergencyPhone,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, ErrNotFound
		}
		return owners.Owner{}, err
	}

	return o, nil
}
