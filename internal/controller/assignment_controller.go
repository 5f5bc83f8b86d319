package controller

import (
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// AssignmentRequest 创建/更新作业请求
// swagger:model AssignmentRequest
type AssignmentRequest struct {
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	MaximumScore    int                  `json:"maximumScore"`
	PassingScore    int                  `json:"passingScore"`
	AssignmentOrder int                  `json:"assignmentOrder"`
	IsCompulsory    *bool                `json:"isCompulsory"`
	EvaluationType  model.EvaluationType `json:"evaluationType" binding:"omitempty,oneof=LOCAL REMOTE"`
	NotebookPath    string               `json:"notebookPath"`
	GraderImage     string               `json:"graderImage"`
	EvalBinaryKey   string               `json:"evalBinaryKey"`
	ReferenceData   datatypes.JSON       `json:"referenceData"`
}

func (r AssignmentRequest) toInput() service.AssignmentInput {
	return service.AssignmentInput{
		Name:            r.Name,
		Description:     r.Description,
		MaximumScore:    r.MaximumScore,
		PassingScore:    r.PassingScore,
		AssignmentOrder: r.AssignmentOrder,
		IsCompulsory:    r.IsCompulsory,
		EvaluationType:  r.EvaluationType,
		NotebookPath:    r.NotebookPath,
		GraderImage:     r.GraderImage,
		EvalBinaryKey:   r.EvalBinaryKey,
		ReferenceData:   r.ReferenceData,
	}
}

// List godoc
// @Summary 工作坊作业列表
// @Description 按 assignmentOrder 排序，要求对工作坊有读取权限
// @Tags 作业
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "工作坊不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	assignments, err := c.AssignmentService.List(id, util.MustParseUint(ctx.Param("workshopId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetByID godoc
// @Summary 作业详情
// @Tags 作业
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   id path int true "作业ID"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "作业不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/assignments/{id} [get]
func (c *AssignmentController) GetByID(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	assignment, err := c.AssignmentService.GetByID(id,
		util.MustParseUint(ctx.Param("workshopId")),
		util.MustParseUint(ctx.Param("id")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// Create godoc
// @Summary 创建作业
// @Description 需要管理员或该工作坊授课讲师身份；及格线不得超过满分
// @Tags 作业
// @Accept  json
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   body body AssignmentRequest true "作业信息"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response "分数配置非法"
// @Failure 403 {object} util.Response "无修改权限"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Name == "" {
		util.BadRequest(ctx, "name is required")
		return
	}

	assignment, err := c.AssignmentService.Create(id, util.MustParseUint(ctx.Param("workshopId")), req.toInput())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// Update godoc
// @Summary 更新作业
// @Tags 作业
// @Accept  json
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   id path int true "作业ID"
// @Param   body body AssignmentRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response "分数配置非法"
// @Failure 403 {object} util.Response "无修改权限"
// @Failure 404 {object} util.Response "作业不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Update(id,
		util.MustParseUint(ctx.Param("workshopId")),
		util.MustParseUint(ctx.Param("id")),
		req.toInput(),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// Delete godoc
// @Summary 删除作业
// @Tags 作业
// @Produce  json
// @Param   workshopId path int true "工作坊ID"
// @Param   id path int true "作业ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "无修改权限"
// @Failure 404 {object} util.Response "作业不存在"
// @Security BearerAuth
// @Router /api/v1/workshops/{workshopId}/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	err := c.AssignmentService.Delete(id,
		util.MustParseUint(ctx.Param("workshopId")),
		util.MustParseUint(ctx.Param("id")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
