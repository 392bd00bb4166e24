package role

import "context"

type RoleRepository interface {
	GetByName(ctx context.Context, name string) (Role, error)
	ListByUserID(ctx context.Context, userID string) ([]Role, error)
	AssignToUser(ctx context.Context, userID string, roleID string) error
}
