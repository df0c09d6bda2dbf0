package setup

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/voiceconsole/manager/internal/apperrors"
	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/models"
	"github.com/voiceconsole/manager/internal/repository"
	"github.com/voiceconsole/manager/internal/validation"
	"github.com/voiceconsole/manager/pkg/logger"
)

// UserStore is the persistence the setup service needs.
type UserStore interface {
	CountActiveAdmins(ctx context.Context) (int, error)
	Create(ctx context.Context, username, fullName, passwordHash, role string) (*models.User, error)
}

// Status is the payload behind the setup status endpoint.
type Status struct {
	NeedsSetup bool `json:"needs_setup"`
}

// InitialAdmin is the request to create the first administrator.
type InitialAdmin struct {
	Username string
	FullName string
	Password string
}

// Service decides whether first-run setup is pending and performs it.
type Service struct {
	users  UserStore
	policy validation.PasswordPolicy
	tx     repository.TxManager
	cost   int

	// mu serialises initial admin creation within this process.
	mu sync.Mutex
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTxManager runs the admin check and insert in one database transaction.
func WithTxManager(tx repository.TxManager) ServiceOption {
	return func(s *Service) {
		s.tx = tx
	}
}

// NewService creates a setup service backed by users.
func NewService(users UserStore, policy validation.PasswordPolicy, opts ...ServiceOption) *Service {
	s := &Service{
		users:  users,
		policy: policy,
		cost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status reports whether setup is still needed, which is the case while no
// active admin account exists.
func (s *Service) Status(ctx context.Context) (Status, error) {
	const op = "SetupService.Status"

	admins, err := s.users.CountActiveAdmins(ctx)
	if err != nil {
		return Status{}, apperrors.TranslateRepoError(op, "Admin", err)
	}
	return Status{NeedsSetup: admins == 0}, nil
}

// CreateInitialAdmin creates the first admin account. It fails with a conflict
// once an active admin exists.
func (s *Service) CreateInitialAdmin(ctx context.Context, req InitialAdmin) (*models.User, error) {
	const op = "SetupService.CreateInitialAdmin"

	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)

	v := validation.New()
	validation.Username(v, "username", req.Username)
	s.policy.Check(v, "password", req.Password)
	if err := v.ToError(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, (&apperrors.Error{Code: apperrors.CodeUnknown, Message: "Failed to hash password"}).Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user *models.User
	err = s.inTx(ctx, func(ctx context.Context) error {
		status, err := s.Status(ctx)
		if err != nil {
			return err
		}
		if !status.NeedsSetup {
			return apperrors.Conflict("Setup has already been completed")
		}

		user, err = s.users.Create(ctx, req.Username, req.FullName, string(hash), models.RoleAdmin)
		if err != nil {
			return apperrors.TranslateRepoError(op, "User", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SetupAdminCreated.Inc()
	logger.Info("Initial admin %q created", user.Username)
	return user, nil
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithTransaction(ctx, fn)
}
