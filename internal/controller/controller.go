package controller

import (
	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentIdentity 从请求上下文取出调用者身份，认证中间件缺失时返回 false
func currentIdentity(ctx *gin.Context) (access.Identity, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return access.Identity{}, false
	}
	return access.Identity{UserID: claims.UserID, Roles: claims.Roles}, true
}
