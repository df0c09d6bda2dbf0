package setup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voiceconsole/manager/internal/apperrors"
	"github.com/voiceconsole/manager/internal/models"
	"github.com/voiceconsole/manager/internal/repository"
	"github.com/voiceconsole/manager/internal/validation"
)

type fakeUsers struct {
	users    []*models.User
	countErr error
}

func (f *fakeUsers) CountActiveAdmins(context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, u := range f.users {
		if u.Role == models.RoleAdmin && u.SuspendedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) Create(_ context.Context, username, fullName, passwordHash, role string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return nil, repository.ErrDuplicateKey
		}
	}
	u := &models.User{
		ID:           int64(len(f.users) + 1),
		Username:     username,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Role:         role,
	}
	f.users = append(f.users, u)
	return u, nil
}

func newTestService(users *fakeUsers) *Service {
	svc := NewService(users, validation.DefaultPasswordPolicy(8))
	svc.cost = bcrypt.MinCost
	return svc
}

func TestServiceStatus(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{users: []*models.User{{Username: "viewer", Role: models.RoleViewer}}}
	svc := newTestService(users)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.NeedsSetup)

	users.users = append(users.users, &models.User{Username: "root", Role: models.RoleAdmin})
	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.NeedsSetup)
}

func TestServiceStatusDatabaseError(t *testing.T) {
	svc := newTestService(&fakeUsers{countErr: errors.New("connection refused")})

	_, err := svc.Status(context.Background())
	assert.Equal(t, apperrors.CodeDatabase, apperrors.CodeOf(err))
}

func TestCreateInitialAdmin(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{}
	svc := newTestService(users)

	user, err := svc.CreateInitialAdmin(ctx, InitialAdmin{Username: " root ", FullName: "Root", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "root", user.Username)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123")))

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.NeedsSetup)

	_, err = svc.CreateInitialAdmin(ctx, InitialAdmin{Username: "second", Password: "Secret123"})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.Len(t, users.users, 1)
}

func TestCreateInitialAdminValidation(t *testing.T) {
	svc := newTestService(&fakeUsers{})

	_, err := svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "root", Password: "weak"})
	code := apperrors.CodeOf(err)
	assert.True(t, code == apperrors.CodeValidation || code == apperrors.CodeInvalidInput)

	_, err = svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "a", Password: "Secret123"})
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestCreateInitialAdminExistingUsername(t *testing.T) {
	users := &fakeUsers{users: []*models.User{{Username: "root", Role: models.RoleViewer}}}
	svc := newTestService(users)

	_, err := svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "root", Password: "Secret123"})
	assert.Equal(t, apperrors.CodeDuplicate, apperrors.CodeOf(err))
}

type recordingTx struct {
	calls int
	err   error
}

func (r *recordingTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return r.err
}

func TestCreateInitialAdminRunsInTransaction(t *testing.T) {
	tx := &recordingTx{}
	svc := NewService(&fakeUsers{}, validation.DefaultPasswordPolicy(8), WithTxManager(tx))
	svc.cost = bcrypt.MinCost

	_, err := svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "root", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)

	_, err = svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "other", Password: "Secret123"})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.Equal(t, 2, tx.calls)
}

func TestCreateInitialAdminRejectsOverlongPassword(t *testing.T) {
	users := &fakeUsers{}
	svc := newTestService(users)

	_, err := svc.CreateInitialAdmin(context.Background(), InitialAdmin{Username: "root", Password: "Aa1" + strings.Repeat("x", 80)})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	assert.Empty(t, users.users)
}

func TestCreateInitialAdminConcurrent(t *testing.T) {
	users := &fakeUsers{}
	svc := newTestService(users)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateInitialAdmin(context.Background(), InitialAdmin{
				Username: "admin" + strings.Repeat("x", i),
				Password: "Secret123",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	}
	assert.Equal(t, 1, created)
	assert.Len(t, users.users, 1)
}
