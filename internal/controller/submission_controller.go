package controller

import (
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// List godoc
// @Summary 提交列表
// @Description 管理员全部可见，讲师见授课范围，参与者只见自己
// @Tags 提交
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   participantId query int false "参与者过滤"
// @Param   assignmentId query int false "作业过滤"
// @Param   workshopId query int false "工作坊过滤"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/v1/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	submissions, total, err := c.SubmissionService.List(id, page, limit,
		util.MustParseUint(ctx.Query("participantId")),
		util.MustParseUint(ctx.Query("assignmentId")),
		util.MustParseUint(ctx.Query("workshopId")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: submissions, Total: total, Page: page, Limit: limit})
}

// GetByID godoc
// @Summary 提交详情
// @Tags 提交
// @Produce  json
// @Param   id path int true "提交ID"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "提交不存在"
// @Security BearerAuth
// @Router /api/v1/submissions/{id} [get]
func (c *SubmissionController) GetByID(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	submission, err := c.SubmissionService.GetByID(id, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// CreateSubmissionRequest 记录评分尝试请求
// swagger:model CreateSubmissionRequest
type CreateSubmissionRequest struct {
	ParticipantID uint `json:"participantId" binding:"required"`
	AssignmentID  uint `json:"assignmentId" binding:"required"`
	Score         int  `json:"score" binding:"min=0"`
	AttemptNumber int  `json:"attemptNumber" binding:"required,min=1"`
}

// Create godoc
// @Summary 记录评分尝试
// @Description 评测回调入口，仅管理员或作业所属工作坊的授课讲师可写。分数不得超过作业满分，重复尝试号报冲突
// @Tags 提交
// @Accept  json
// @Produce  json
// @Param   body body CreateSubmissionRequest true "评分结果"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "分数超过满分"
// @Failure 403 {object} util.Response "非授课讲师"
// @Failure 404 {object} util.Response "参与者或作业不存在"
// @Failure 409 {object} util.Response "尝试号已存在"
// @Security BearerAuth
// @Router /api/v1/submissions [post]
func (c *SubmissionController) Create(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var req CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.Create(id, req.ParticipantID, req.AssignmentID, req.Score, req.AttemptNumber)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// GetParticipantSubmissions godoc
// @Summary 参与者的提交记录
// @Description 本人与管理员可见全部，讲师仅见授课范围
// @Tags 提交
// @Produce  json
// @Param   id path int true "参与者ID"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "参与者不存在"
// @Security BearerAuth
// @Router /api/v1/participants/{id}/submissions [get]
func (c *SubmissionController) GetParticipantSubmissions(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	submissions, err := c.SubmissionService.GetParticipantSubmissions(id, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}
