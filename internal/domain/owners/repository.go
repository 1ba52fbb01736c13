package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) error
	Update(ctx context.Context, o Owner) error
	GetByUserID(ctx context.Context, userID string) (Owner, error)
}
