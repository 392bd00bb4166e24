package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/company"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	company.CompanyRepository
	role.RoleRepository
}

func NewUserService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	roleRepo role.RoleRepository,
) user.UserService {
	return &UserServiceImpl{
		db:                db,
		UserRepository:    userRepo,
		CompanyRepository: companyRepo,
		RoleRepository:    roleRepo,
	}
}

// Create implements user.UserService. New users start with the employee role.
func (u *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	companyExists, err := u.CompanyRepository.ExistsByID(ctx, req.CompanyID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check company existence: %w", err)
	}
	if !companyExists {
		return user.UserResponse{}, company.ErrCompanyNotFound
	}

	emailTaken, err := u.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailTaken {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, u.db, func(txCtx context.Context) error {
		created, err = u.UserRepository.Create(txCtx, user.User{
			ID:           uuid.New().String(),
			CompanyID:    req.CompanyID,
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}

		employeeRole, err := u.RoleRepository.GetByName(txCtx, role.Employee)
		if err != nil {
			return err
		}
		return u.RoleRepository.AssignToUser(txCtx, created.ID, employeeRole.ID)
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	created.Roles = []string{role.Employee}
	return toResponse(created), nil
}

// GetByID implements user.UserService.
func (u *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(found), nil
}

// List implements user.UserService.
func (u *UserServiceImpl) List(ctx context.Context, companyID string) ([]user.UserResponse, error) {
	users, err := u.UserRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, us := range users {
		responses = append(responses, toResponse(us))
	}
	return responses, nil
}

// Update implements user.UserService.
func (u *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	return u.UserRepository.Update(ctx, id, req)
}

// Delete implements user.UserService.
func (u *UserServiceImpl) Delete(ctx context.Context, id string) error {
	return u.UserRepository.Delete(ctx, id)
}

// AssignRole implements user.UserService.
func (u *UserServiceImpl) AssignRole(ctx context.Context, userID string, roleName string) error {
	exists, err := u.UserRepository.ExistsByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return user.ErrUserNotFound
	}

	ro, err := u.RoleRepository.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	return u.RoleRepository.AssignToUser(ctx, userID, ro.ID)
}

func toResponse(us user.User) user.UserResponse {
	return user.UserResponse{
		ID:        us.ID,
		CompanyID: us.CompanyID,
		Name:      us.Name,
		Email:     us.Email,
		Roles:     us.Roles,
		CreatedAt: us.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: us.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
