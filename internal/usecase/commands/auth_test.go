//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakestore"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (*fakestore.Store, *commandsmock.MockTokenIssuer, commands.AuthCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := fakestore.New()
	tokens := commandsmock.NewMockTokenIssuer(ctrl)
	return store, tokens, commands.NewAuthCommands(store, clock.NewFixed(builder.Now), tokens, "invite-code")
}

func TestAuthCommands_Register(t *testing.T) {
	t.Run("creates a guest with a hashed password", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)

		u, err := sut.Register(context.Background(), commands.RegisterInput{
			Name:     "Ana",
			Email:    "Ana@Example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Equal(t, "ana@example.com", u.Email().Value())
		assert.NotEqual(t, "password123", u.PasswordHash())
		assert.NoError(t, password.Compare(u.PasswordHash(), "password123"))

		_, ok := store.UserByEmail("ana@example.com")
		assert.True(t, ok)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)
		existing, err := builder.NewUserBuilder().WithPasswordHash("$2a$10$stored").BuildDomain()
		require.NoError(t, err)
		store.PutUser(existing)

		_, err = sut.Register(context.Background(), commands.RegisterInput{
			Name:     "Someone",
			Email:    "guest@example.com",
			Password: "password123",
		})

		assert.True(t, errs.Is(err, commands.ErrEmailTaken), "got %v", err)
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := map[string]commands.RegisterInput{
			"bad email":      {Name: "Ana", Email: "not-an-email", Password: "password123"},
			"short password": {Name: "Ana", Email: "ana@example.com", Password: "short"},
			"empty name":     {Name: "  ", Email: "ana@example.com", Password: "password123"},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				store, _, sut := newAuthCommands(t)

				_, err := sut.Register(context.Background(), in)

				assert.True(t, errs.Is(err, commands.ErrInvalidSignup), "got %v", err)
				assert.Zero(t, store.Commits())
			})
		}
	})
}

func TestAuthCommands_RegisterAdmin(t *testing.T) {
	input := func(code string) commands.RegisterAdminInput {
		return commands.RegisterAdminInput{
			RegisterInput: commands.RegisterInput{
				Name:     "Root",
				Email:    "root@example.com",
				Password: "password123",
			},
			AdminCode: code,
		}
	}

	t.Run("creates an admin with the right code", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)

		u, err := sut.RegisterAdmin(context.Background(), input("invite-code"))

		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role())
		stored, ok := store.UserByEmail("root@example.com")
		require.True(t, ok)
		assert.True(t, stored.IsAdmin())
	})

	t.Run("disabled without a configured code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := fakestore.New()
		sut := commands.NewAuthCommands(store, clock.NewFixed(builder.Now), commandsmock.NewMockTokenIssuer(ctrl), "")

		for _, code := range []string{"", "anything"} {
			_, err := sut.RegisterAdmin(context.Background(), input(code))
			assert.ErrorIs(t, err, commands.ErrAdminSignupDisabled)
		}
		assert.Zero(t, store.Commits())
	})

	t.Run("wrong code", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)

		for _, code := range []string{"", "invite", "invite-code-2"} {
			_, err := sut.RegisterAdmin(context.Background(), input(code))
			assert.ErrorIs(t, err, commands.ErrInvalidAdminCode)
		}
		assert.Zero(t, store.Commits())
	})

	t.Run("email already in use", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)
		existing, err := builder.NewUserBuilder().WithEmail("root@example.com").BuildDomain()
		require.NoError(t, err)
		store.PutUser(existing)

		_, err = sut.RegisterAdmin(context.Background(), input("invite-code"))

		assert.True(t, errs.Is(err, commands.ErrEmailTaken), "got %v", err)
		stored, _ := store.UserByEmail("root@example.com")
		assert.False(t, stored.IsAdmin())
	})
}

func TestAuthCommands_Login(t *testing.T) {
	seed := func(t *testing.T, store *fakestore.Store) *user.User {
		t.Helper()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		store.PutUser(u)
		return u
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		store, tokens, sut := newAuthCommands(t)
		u := seed(t, store)
		tokens.EXPECT().GenerateToken(u.ID(), user.RoleUser).Return("signed-token", nil)
		tokens.EXPECT().TokenDuration().Return(time.Hour)

		result, err := sut.Login(context.Background(), commands.LoginInput{
			Email:    "guest@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, time.Hour, result.ExpiresIn)
		assert.Equal(t, u.ID(), result.User.ID())
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		store, _, sut := newAuthCommands(t)
		seed(t, store)

		inputs := []commands.LoginInput{
			{Email: "guest@example.com", Password: "wrong-password"},
			{Email: "nobody@example.com", Password: "password123"},
			{Email: "not-an-email", Password: "password123"},
		}
		for _, in := range inputs {
			_, err := sut.Login(context.Background(), in)
			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		}
	})

	t.Run("token failure", func(t *testing.T) {
		store, tokens, sut := newAuthCommands(t)
		u := seed(t, store)
		tokens.EXPECT().GenerateToken(u.ID(), user.RoleUser).Return("", errors.New("signing failed"))

		_, err := sut.Login(context.Background(), commands.LoginInput{
			Email:    "guest@example.com",
			Password: "password123",
		})

		assert.True(t, errs.Is(err, commands.ErrTokenGeneration), "got %v", err)
	})
}
