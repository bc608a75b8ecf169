package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-service/internal/model"
)

func TestIssueAndParseRoundtrip(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	user := &model.User{ID: 7, Username: "supervisor", Role: model.RoleSupervisor}

	token, err := manager.Issue(user)
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)

	principal, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, 7, principal.UserID)
	assert.Equal(t, "supervisor", principal.Username)
	assert.Equal(t, model.RoleSupervisor, principal.Role)
	assert.True(t, principal.CanViewReports())
	assert.True(t, principal.CanManageRegistry())
}

func TestHRPrincipalPermissions(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	token, err := manager.Issue(&model.User{ID: 8, Username: "hr", Role: model.RoleHR})
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	principal, err := claims.Principal()
	require.NoError(t, err)

	assert.True(t, principal.CanViewReports())
	assert.False(t, principal.CanManageRegistry())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue(&model.User{ID: 1, Username: "x", Role: model.RoleHR})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.Issue(&model.User{ID: 1, Username: "x", Role: model.RoleHR})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
