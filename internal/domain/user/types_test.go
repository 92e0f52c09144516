//go:build unit

package user_test

import (
	"testing"

	"hotel-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)

	_, err = user.NewRole("owner")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		have, need user.Role
		want       bool
	}{
		{user.RoleAdmin, user.RoleAdmin, true},
		{user.RoleAdmin, user.RoleUser, true},
		{user.RoleUser, user.RoleUser, true},
		{user.RoleUser, user.RoleAdmin, false},
		{user.Role("owner"), user.RoleUser, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.have)+"/"+string(tt.need), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.have.Satisfies(tt.need))
		})
	}
}
