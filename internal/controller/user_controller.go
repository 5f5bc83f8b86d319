package controller

import (
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateUserRequest 管理员创建用户请求
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	FullName       string         `json:"fullName" binding:"required"`
	Email          string         `json:"email" binding:"required,email"`
	Password       string         `json:"password" binding:"required,min=8"`
	Roles          model.RoleList `json:"roles" binding:"required"`
	AdditionalInfo datatypes.JSON `json:"additionalInfo"`
}

// UpdateUserRequest 更新用户请求
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FullName       string         `json:"fullName"`
	Email          string         `json:"email" binding:"omitempty,email"`
	Roles          model.RoleList `json:"roles"`
	AdditionalInfo datatypes.JSON `json:"additionalInfo"`
}

// List godoc
// @Summary 用户列表
// @Description 管理员查看用户，可按角色过滤
// @Tags 用户
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   role query string false "角色过滤" Enums(ADMIN, INSTRUCTOR, PARTICIPANT)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/v1/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	role := model.Role(ctx.Query("role"))

	users, total, err := c.UserService.List(page, limit, role)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// GetByID godoc
// @Summary 用户详情
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Security BearerAuth
// @Router /api/v1/users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	user, err := c.UserService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// Create godoc
// @Summary 创建用户
// @Description 管理员创建用户并指定角色
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body CreateUserRequest true "用户信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Security BearerAuth
// @Router /api/v1/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(service.CreateUserInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Roles:          req.Roles,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// Update godoc
// @Summary 更新用户
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   id path int true "用户ID"
// @Param   body body UpdateUserRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Security BearerAuth
// @Router /api/v1/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(util.MustParseUint(ctx.Param("id")), service.UpdateUserInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Roles:          req.Roles,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary 删除用户
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "用户不存在"
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Me godoc
// @Summary 当前用户
// @Tags 用户
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Security BearerAuth
// @Router /api/v1/users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetByID(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
