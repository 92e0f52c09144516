package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterAdminInput struct {
	RegisterInput
	AdminCode string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*user.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	tokens          TokenIssuer
	adminSignupCode string
}

// An empty adminSignupCode turns admin self-signup off.
func NewAuthCommands(uow shared.UnitOfWork, clk clock.Clock, tokens TokenIssuer, adminSignupCode string) AuthCommands {
	return &authCommandsImpl{
		uow:             uow,
		clock:           clk,
		tokens:          tokens,
		adminSignupCode: adminSignupCode,
	}
}

// Register always creates a guest account.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	return a.register(ctx, in, user.RoleUser)
}

// RegisterAdmin creates an administrator when in.AdminCode matches the configured invite code.
func (a *authCommandsImpl) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*user.User, error) {
	if a.adminSignupCode == "" {
		return nil, ErrAdminSignupDisabled
	}
	if subtle.ConstantTimeCompare([]byte(in.AdminCode), []byte(a.adminSignupCode)) != 1 {
		return nil, ErrInvalidAdminCode
	}

	u, err := a.register(ctx, in.RegisterInput, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	slog.Info("administrator registered", "user_id", u.ID().String())
	return u, nil
}

func (a *authCommandsImpl) register(ctx context.Context, in RegisterInput, role user.Role) (*user.User, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	hash, err := password.Hash(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(in.Name, credentials.Email(), hash, role, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Create(ctx, u); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Users().FindByEmail(ctx, email)
		if derr != nil {
			return derr
		}
		u = found
		return nil
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = password.Compare(u.PasswordHash(), in.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			// corrupt stored hash
			slog.Warn("password comparison error", "user_id", u.ID().String(), "error", err.Error())
		}
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:      u,
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}
