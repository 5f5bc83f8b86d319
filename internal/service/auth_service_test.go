package service

import (
	"testing"
	"time"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(r testRepos) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-auth-tokens"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(r.User, cfg)
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newAuthService(repos)

	token, user, err := svc.Signup("Ada", "ada@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleList{model.RoleParticipant}, user.Roles)
	assert.NotEqual(t, "s3cret-password", user.Password)

	token, logged, err := svc.Login("ada@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := util.ParseJWT(token, "test-secret-for-auth-tokens")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, claims.Roles.Has(model.RoleParticipant))
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newAuthService(repos)

	_, _, err := svc.Signup("Ada", "ada@example.com", "s3cret-password")
	require.NoError(t, err)

	_, _, err = svc.Signup("Other Ada", "ada@example.com", "another-password")
	assert.Equal(t, util.KindConflict, util.KindOf(err))
}

func TestLoginWrongCredentials(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newAuthService(repos)

	_, _, err := svc.Signup("Ada", "ada@example.com", "s3cret-password")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong-password")
	assert.Equal(t, util.KindInvalidState, util.KindOf(err))

	_, _, err = svc.Login("nobody@example.com", "s3cret-password")
	assert.Equal(t, util.KindInvalidState, util.KindOf(err))
}
