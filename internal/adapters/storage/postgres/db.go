package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
//
// Esquema esperado (tres colecciones + índices de lookup):
//
//	owners(id PK, user_id UNIQUE, first_name, last_name, address, city,
//	       state, zip_code, phone, emergency_contact, emergency_phone,
//	       created_at, updated_at)
//	dogs(id PK, owner_user_id, name, breed, color, age, weight, sex,
//	     spayed_neutered, microchip_number, license_id NULL,
//	     created_at, updated_at)
//	  índices: dogs(owner_user_id), dogs(license_id)
//	licenses(id PK, license_number UNIQUE, dog_id, owner_user_id,
//	         issue_date, expiration_date, fee, status,
//	         rabies_vaccination_date, rabies_vaccination_expiration,
//	         veterinarian_name, veterinarian_phone, created_at, updated_at)
//	  índices: licenses(dog_id), licenses(owner_user_id), licenses(status)
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para el tamaño de este servicio
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
