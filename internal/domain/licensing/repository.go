package licensing

import "context"

type Repository interface {
	Create(ctx context.Context, l License) error
	Update(ctx context.Context, l License) error
	GetByID(ctx context.Context, id string) (License, error)
	GetByNumber(ctx context.Context, licenseNumber string) (License, error)
}
