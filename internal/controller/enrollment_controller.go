package controller

import (
	"time"

	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// List godoc
// @Summary 报名列表
// @Description 管理员全部可见，讲师见授课范围，参与者只见自己
// @Tags 报名
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   workshopId query int false "工作坊过滤"
// @Param   participantId query int false "参与者过滤"
// @Param   status query string false "状态过滤" Enums(PENDING, ACTIVE, DROPPED, COMPLETED)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/v1/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	enrollments, total, err := c.EnrollmentService.List(id, page, limit,
		util.MustParseUint(ctx.Query("workshopId")),
		util.MustParseUint(ctx.Query("participantId")),
		model.EnrollmentStatus(ctx.Query("status")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: enrollments, Total: total, Page: page, Limit: limit})
}

// GetByID godoc
// @Summary 报名详情
// @Tags 报名
// @Produce  json
// @Param   id path int true "报名ID"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "报名不存在"
// @Security BearerAuth
// @Router /api/v1/enrollments/{id} [get]
func (c *EnrollmentController) GetByID(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	enrollment, err := c.EnrollmentService.GetByID(id, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// CreateEnrollmentRequest 创建报名请求
// swagger:model CreateEnrollmentRequest
type CreateEnrollmentRequest struct {
	ParticipantID uint                   `json:"participantId" binding:"required"`
	WorkshopID    uint                   `json:"workshopId" binding:"required"`
	Status        model.EnrollmentStatus `json:"status" binding:"omitempty,oneof=PENDING ACTIVE DROPPED COMPLETED"`
}

// Create godoc
// @Summary 创建报名
// @Description 需要管理员或该工作坊授课讲师身份
// @Tags 报名
// @Accept  json
// @Produce  json
// @Param   body body CreateEnrollmentRequest true "报名信息"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response "无管理权限"
// @Failure 409 {object} util.Response "已报名"
// @Security BearerAuth
// @Router /api/v1/enrollments [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Create(id, req.ParticipantID, req.WorkshopID, req.Status)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// UpdateEnrollmentRequest 更新报名状态请求
// swagger:model UpdateEnrollmentRequest
type UpdateEnrollmentRequest struct {
	Status model.EnrollmentStatus `json:"status" binding:"required,oneof=PENDING ACTIVE DROPPED COMPLETED"`
}

// UpdateStatus godoc
// @Summary 更新报名状态
// @Tags 报名
// @Accept  json
// @Produce  json
// @Param   id path int true "报名ID"
// @Param   body body UpdateEnrollmentRequest true "目标状态"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response "无管理权限"
// @Failure 404 {object} util.Response "报名不存在"
// @Security BearerAuth
// @Router /api/v1/enrollments/{id} [put]
func (c *EnrollmentController) UpdateStatus(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateStatus(id, util.MustParseUint(ctx.Param("id")), req.Status)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// Delete godoc
// @Summary 删除报名
// @Tags 报名
// @Produce  json
// @Param   id path int true "报名ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "报名不存在"
// @Security BearerAuth
// @Router /api/v1/enrollments/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	if err := c.EnrollmentService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GenerateLinkRequest 生成报名链接请求
// swagger:model GenerateLinkRequest
type GenerateLinkRequest struct {
	WorkshopID  uint `json:"workshopId" binding:"required"`
	ExpiresInHr int  `json:"expiresInHours" binding:"omitempty,min=1,max=720"`
}

// GenerateLink godoc
// @Summary 生成报名链接
// @Description 生成限时令牌链接，持链接的已登录用户可自助报名
// @Tags 报名
// @Accept  json
// @Produce  json
// @Param   body body GenerateLinkRequest true "工作坊与有效期"
// @Success 201 {object} util.Response{data=service.EnrollmentLink}
// @Failure 403 {object} util.Response "无管理权限"
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/enrollments/link [post]
func (c *EnrollmentController) GenerateLink(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req GenerateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.ExpiresInHr == 0 {
		req.ExpiresInHr = 72
	}

	link, err := c.EnrollmentService.GenerateLink(id, req.WorkshopID, time.Duration(req.ExpiresInHr)*time.Hour)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, link)
}

// Enroll godoc
// @Summary 凭链接自助报名
// @Description 已登录用户凭报名令牌报名，初始状态 PENDING
// @Tags 报名
// @Produce  json
// @Param   token query string true "报名令牌"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "令牌无效或已过期"
// @Failure 409 {object} util.Response "已报名"
// @Security BearerAuth
// @Router /api/v1/enrollments/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	token := ctx.Query("token")
	if token == "" {
		util.BadRequest(ctx, "token is required")
		return
	}

	enrollment, err := c.EnrollmentService.EnrollWithToken(claims.UserID, token)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}
