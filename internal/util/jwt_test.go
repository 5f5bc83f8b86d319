package util

import (
	"testing"
	"time"

	"workshop_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestJWTRoundtrip(t *testing.T) {
	user := &model.User{
		Email: "a@example.com",
		Roles: model.RoleList{model.RoleInstructor},
	}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.True(t, claims.Roles.Has(model.RoleInstructor))
}

func TestEnrollmentTokenRoundtrip(t *testing.T) {
	token, err := GenerateEnrollmentToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseEnrollmentToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.WorkshopID)
}

// 报名链接令牌与登录令牌同密钥同算法，必须互不通用：
// 报名令牌过了认证中间件会变成 UserID 为 0 的幽灵身份
func TestTokenPurposesAreDisjoint(t *testing.T) {
	enrollToken, err := GenerateEnrollmentToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(enrollToken, testSecret)
	assert.Error(t, err)

	user := &model.User{Email: "a@example.com", Roles: model.RoleList{model.RoleParticipant}}
	user.ID = 7
	authToken, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseEnrollmentToken(authToken, testSecret)
	assert.Error(t, err)
}
