package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/company"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
)

const testCompanyID = "c0ffee00-1111-4222-8333-444455556666"

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, companyID string) ([]user.User, error) {
	result := make([]user.User, 0)
	for _, u := range f.users {
		if u.CompanyID == companyID {
			result = append(result, u)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, req user.UpdateUserRequest) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		u.PasswordHash = *req.Password
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCompanyRepo struct {
	ids map[string]bool
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ string) (company.Company, error) {
	return company.Company{}, company.ErrCompanyNotFound
}
func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	return c, nil
}
func (f *fakeCompanyRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}
func (f *fakeCompanyRepo) Update(_ context.Context, _ string, _ company.UpdateCompanyRequest) error {
	return nil
}
func (f *fakeCompanyRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeRoleRepo struct {
	assigned map[string][]string
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{assigned: make(map[string][]string)}
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (role.Role, error) {
	switch name {
	case role.Admin, role.Manager, role.Employee:
		return role.Role{ID: "role-" + name, Name: name}, nil
	}
	return role.Role{}, role.ErrRoleNotFound
}

func (f *fakeRoleRepo) ListByUserID(_ context.Context, userID string) ([]role.Role, error) {
	roles := make([]role.Role, 0)
	for _, name := range f.assigned[userID] {
		roles = append(roles, role.Role{ID: "role-" + name, Name: name})
	}
	return roles, nil
}

func (f *fakeRoleRepo) AssignToUser(_ context.Context, userID string, roleID string) error {
	f.assigned[userID] = append(f.assigned[userID], roleID)
	return nil
}

func newTestService() (user.UserService, *fakeUserRepo, *fakeRoleRepo) {
	userRepo := newFakeUserRepo()
	companyRepo := &fakeCompanyRepo{ids: map[string]bool{testCompanyID: true}}
	roleRepo := newFakeRoleRepo()
	return NewUserService(nil, userRepo, companyRepo, roleRepo), userRepo, roleRepo
}

func validCreateRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		CompanyID: testCompanyID,
		Name:      "Jordan Worker",
		Email:     "jordan@example.com",
		Password:  "a-strong-password",
	}
}

func TestCreateUserAssignsEmployeeRole(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, roleRepo := newTestService()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{role.Employee}, created.Roles)
	require.Len(t, roleRepo.assigned[created.ID], 1)
	assert.Equal(t, "role-"+role.Employee, roleRepo.assigned[created.ID][0])

	// The stored password is a hash, never the plaintext.
	stored := userRepo.users[created.ID]
	assert.NotEqual(t, "a-strong-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("a-strong-password")))
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestCreateUserUnknownCompany(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.CompanyID = "c0ffee00-9999-4888-8777-666655554444"

	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCreateUserShortPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.Password = "short"

	_, err := svc.Create(ctx, req)
	assert.Error(t, err)
}

func TestUpdateUserHashesNewPassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestService()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	newPassword := "another-strong-password"
	err = svc.Update(ctx, created.ID, user.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	stored := userRepo.users[created.ID]
	assert.NotEqual(t, newPassword, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPassword)))
}

func TestAssignRoleUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	err := svc.AssignRole(ctx, "c0ffee00-0000-4000-8000-000000000000", role.Manager)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
