package controller

import (
	"time"

	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type WorkshopController struct {
	WorkshopService *service.WorkshopService
}

func NewWorkshopController(workshopService *service.WorkshopService) *WorkshopController {
	return &WorkshopController{WorkshopService: workshopService}
}

// WorkshopRequest 创建/更新工作坊请求
// swagger:model WorkshopRequest
type WorkshopRequest struct {
	Name                      string               `json:"name"`
	Status                    model.WorkshopStatus `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	StartDate                 *time.Time           `json:"startDate"`
	EndDate                   *time.Time           `json:"endDate"`
	RequiredPassedAssignments *int                 `json:"requiredPassedAssignments"`
	HomeArchiveKey            string               `json:"homeArchiveKey"`
	AdditionalInfo            datatypes.JSON       `json:"additionalInfo"`
}

func (r WorkshopRequest) toInput() service.WorkshopInput {
	return service.WorkshopInput{
		Name:                      r.Name,
		Status:                    r.Status,
		StartDate:                 r.StartDate,
		EndDate:                   r.EndDate,
		RequiredPassedAssignments: r.RequiredPassedAssignments,
		HomeArchiveKey:            r.HomeArchiveKey,
		AdditionalInfo:            r.AdditionalInfo,
	}
}

// List godoc
// @Summary 工作坊列表
// @Description 按调用者可见范围过滤：管理员全部，讲师授课或报名的，参与者报名的
// @Tags 工作坊
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   status query string false "状态过滤" Enums(DRAFT, ACTIVE, ARCHIVED)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/v1/workshops [get]
func (c *WorkshopController) List(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	workshops, total, err := c.WorkshopService.List(id, page, limit, model.WorkshopStatus(ctx.Query("status")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: workshops, Total: total, Page: page, Limit: limit})
}

// GetByID godoc
// @Summary 工作坊详情
// @Description 携带作业与讲师列表，无权访问时返回403
// @Tags 工作坊
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Success 200 {object} util.Response{data=model.Workshop}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId} [get]
func (c *WorkshopController) GetByID(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	workshop, err := c.WorkshopService.GetByID(id, util.MustParseUint(ctx.Param("workshopId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, workshop)
}

// Create godoc
// @Summary 创建工作坊
// @Tags 工作坊
// @Accept  json
// @Produce  json
// @Param   body body WorkshopRequest true "工作坊信息"
// @Success 201 {object} util.Response{data=model.Workshop}
// @Security BearerAuth
// @Router /api/v1/workshops [post]
func (c *WorkshopController) Create(ctx *gin.Context) {
	var req WorkshopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Name == "" {
		util.BadRequest(ctx, "name is required")
		return
	}

	workshop, err := c.WorkshopService.Create(req.toInput())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, workshop)
}

// Update godoc
// @Summary 更新工作坊
// @Tags 工作坊
// @Accept  json
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   body body WorkshopRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Workshop}
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId} [put]
func (c *WorkshopController) Update(ctx *gin.Context) {
	var req WorkshopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	workshop, err := c.WorkshopService.Update(util.MustParseUint(ctx.Param("workshopId")), req.toInput())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, workshop)
}

// Delete godoc
// @Summary 删除工作坊
// @Description 级联删除其作业、报名与证书
// @Tags 工作坊
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId} [delete]
func (c *WorkshopController) Delete(ctx *gin.Context) {
	if err := c.WorkshopService.Delete(util.MustParseUint(ctx.Param("workshopId"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListInstructors godoc
// @Summary 工作坊讲师列表
// @Tags 工作坊
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/instructors [get]
func (c *WorkshopController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.WorkshopService.ListInstructors(util.MustParseUint(ctx.Param("workshopId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, instructors)
}

// AddInstructorRequest 指派讲师请求
// swagger:model AddInstructorRequest
type AddInstructorRequest struct {
	InstructorID uint `json:"instructorId" binding:"required"`
}

// AddInstructor godoc
// @Summary 指派讲师
// @Description 目标用户必须持有 INSTRUCTOR 角色
// @Tags 工作坊
// @Accept  json
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   body body AddInstructorRequest true "讲师ID"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "目标用户不是讲师"
// @Failure 409 {object} util.Response "已指派"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/instructors [post]
func (c *WorkshopController) AddInstructor(ctx *gin.Context) {
	var req AddInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instructor, err := c.WorkshopService.AddInstructor(util.MustParseUint(ctx.Param("workshopId")), req.InstructorID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, instructor)
}

// RemoveInstructor godoc
// @Summary 移除讲师
// @Tags 工作坊
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   instructorId path int true "讲师ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "未指派该讲师"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/instructors/{instructorId} [delete]
func (c *WorkshopController) RemoveInstructor(ctx *gin.Context) {
	err := c.WorkshopService.RemoveInstructor(
		util.MustParseUint(ctx.Param("workshopId")),
		util.MustParseUint(ctx.Param("instructorId")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
