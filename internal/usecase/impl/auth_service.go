package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	adminRepo         repository.AdminUserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminUserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService creates the admin authentication usecase.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:         params.AdminRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: params.Config.Auth.MinPasswordLength,
		logger:            params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)

	user, err := srv.adminRepo.FindAdminUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Username, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("user_id", user.ID.String()))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	user, err := srv.adminRepo.FindAdminUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	return user, nil
}

func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return errors.WithStack(domainerrors.ErrCurrentPasswordMismatch)
	}

	hash, err := srv.hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := srv.adminRepo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return errors.Wrap(domainerrors.ErrAdminNotFound, "admin removed during password change")
		}

		return errors.Wrap(err, "failed to store password")
	}

	srv.log(ctx).Info("Admin password changed", slog.String("user_id", user.ID.String()))

	return nil
}

func (srv *authService) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, errors.WithStack(domainerrors.NewFieldError("username", "Username is required"))
	}

	_, err := srv.adminRepo.FindAdminUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrAdminUserNotFound) {
		return false, errors.Wrap(err, "failed to look up admin user")
	}

	hash, err := srv.hashPassword(password)
	if err != nil {
		return false, err
	}

	user := &entity.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := srv.adminRepo.CreateAdminUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminUser) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to create admin user")
	}

	srv.log(ctx).Info("Admin user created", slog.String("username", username))

	return true, nil
}

func (srv *authService) hashPassword(password string) (string, error) {
	if len(password) < srv.minPasswordLength {
		return "", errors.Wrapf(domainerrors.ErrPasswordTooShort, "minimum length is %d", srv.minPasswordLength)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}
