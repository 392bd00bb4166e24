package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
)

const (
	testApprovalID = "a1b2c3d4-1111-4222-8333-444455556666"
	testManagerID  = "a1b2c3d4-aaaa-4bbb-8ccc-ddddeeeeffff"
	testEmployeeID = "a1b2c3d4-9999-4888-8777-666655554444"
	testEntryID    = "entry-1"
)

type fakeApprovalRepo struct {
	approvals map[string]approval.EntryApproval
}

func (f *fakeApprovalRepo) Create(_ context.Context, ap approval.EntryApproval) (approval.EntryApproval, error) {
	f.approvals[ap.ID] = ap
	return ap, nil
}

func (f *fakeApprovalRepo) GetByID(_ context.Context, id string) (approval.EntryApproval, error) {
	if ap, ok := f.approvals[id]; ok {
		return ap, nil
	}
	return approval.EntryApproval{}, approval.ErrApprovalNotFound
}

func (f *fakeApprovalRepo) Resolve(_ context.Context, id string, approvalUserID string, approvalDate time.Time, justificative string, onlyPending bool) error {
	ap, ok := f.approvals[id]
	if !ok {
		return approval.ErrApprovalNotFound
	}
	if onlyPending && ap.ApprovalDate != nil {
		return approval.ErrApprovalAlreadyResolved
	}
	ap.ApprovalUserID = &approvalUserID
	ap.ApprovalDate = &approvalDate
	ap.Justificative = &justificative
	f.approvals[id] = ap
	return nil
}

func (f *fakeApprovalRepo) ListPendingByCompany(_ context.Context, _ string) ([]approval.EntryApproval, error) {
	result := make([]approval.EntryApproval, 0)
	for _, ap := range f.approvals {
		if ap.ApprovalDate == nil {
			result = append(result, ap)
		}
	}
	return result, nil
}

type fakeEntryRepo struct {
	approved map[string]bool
}

func (f *fakeEntryRepo) Create(_ context.Context, e entry.Entry) (entry.Entry, error) { return e, nil }
func (f *fakeEntryRepo) GetByID(_ context.Context, _ string) (entry.Entry, error) {
	return entry.Entry{}, entry.ErrEntryNotFound
}
func (f *fakeEntryRepo) ExistsForUserBetween(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}
func (f *fakeEntryRepo) ListForUserBetween(_ context.Context, _ string, _, _ time.Time) ([]entry.Entry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) ListApprovedByWorkingDay(_ context.Context, _ string) ([]entry.Entry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) SetApproved(_ context.Context, id string) error {
	f.approved[id] = true
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(_ context.Context, _ string) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) ExistsByID(_ context.Context, _ string) (bool, error) { return true, nil }
func (f *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *fakeUserRepo) Update(_ context.Context, _ string, _ user.UpdateUserRequest) error {
	return nil
}
func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(allowReResolve bool) (approval.ApprovalService, *fakeApprovalRepo, *fakeEntryRepo) {
	approvalRepo := &fakeApprovalRepo{approvals: map[string]approval.EntryApproval{
		testApprovalID: {ID: testApprovalID, EntryID: testEntryID},
	}}
	entryRepo := &fakeEntryRepo{approved: make(map[string]bool)}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		testManagerID:  {ID: testManagerID, Roles: []string{role.Manager}},
		testEmployeeID: {ID: testEmployeeID, Roles: []string{role.Employee}},
	}}

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := NewApprovalService(nil, approvalRepo, entryRepo, userRepo, clock.Fixed{Time: now}, allowReResolve)
	return svc, approvalRepo, entryRepo
}

func TestResolveApprovalFlipsEntry(t *testing.T) {
	ctx := context.Background()
	svc, approvalRepo, entryRepo := newTestService(false)

	resp, err := svc.ResolveApproval(ctx, approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testManagerID,
		Justificative:  "Customer site visit",
	})
	require.NoError(t, err)

	assert.Equal(t, testEntryID, resp.EntryID)
	require.NotNil(t, resp.ApprovalUserID)
	assert.Equal(t, testManagerID, *resp.ApprovalUserID)
	assert.NotNil(t, resp.ApprovalDate)
	assert.True(t, entryRepo.approved[testEntryID])

	stored := approvalRepo.approvals[testApprovalID]
	assert.True(t, stored.Resolved())
}

func TestResolveApprovalRejectsSecondResolution(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(false)

	req := approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testManagerID,
		Justificative:  "Customer site visit",
	}

	_, err := svc.ResolveApproval(ctx, req)
	require.NoError(t, err)

	_, err = svc.ResolveApproval(ctx, req)
	assert.ErrorIs(t, err, approval.ErrApprovalAlreadyResolved)
}

func TestResolveApprovalCanOverwriteWhenEnabled(t *testing.T) {
	ctx := context.Background()
	svc, approvalRepo, _ := newTestService(true)

	_, err := svc.ResolveApproval(ctx, approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testManagerID,
		Justificative:  "First pass",
	})
	require.NoError(t, err)

	_, err = svc.ResolveApproval(ctx, approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testManagerID,
		Justificative:  "Corrected justification",
	})
	require.NoError(t, err)

	stored := approvalRepo.approvals[testApprovalID]
	require.NotNil(t, stored.Justificative)
	assert.Equal(t, "Corrected justification", *stored.Justificative)
}

func TestResolveApprovalRequiresManagerRole(t *testing.T) {
	ctx := context.Background()
	svc, approvalRepo, _ := newTestService(false)

	_, err := svc.ResolveApproval(ctx, approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testEmployeeID,
		Justificative:  "Trying anyway",
	})
	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	stored := approvalRepo.approvals[testApprovalID]
	assert.False(t, stored.Resolved())
}

func TestCreatePendingApprovalStartsUnresolved(t *testing.T) {
	ctx := context.Background()
	svc, approvalRepo, _ := newTestService(false)

	created, err := svc.CreatePendingApproval(ctx, "entry-2")
	require.NoError(t, err)

	assert.False(t, created.Resolved())
	assert.Nil(t, created.ApprovalUserID)
	assert.Contains(t, approvalRepo.approvals, created.ID)
}

func TestListPendingSkipsResolved(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(false)

	_, err := svc.ResolveApproval(ctx, approval.ResolveApprovalRequest{
		ID:             testApprovalID,
		ApprovalUserID: testManagerID,
		Justificative:  "Done",
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx, "company-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}
