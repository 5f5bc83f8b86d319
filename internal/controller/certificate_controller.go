package controller

import (
	"net/http"

	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// List godoc
// @Summary 证书列表
// @Description 管理员全部可见，讲师见授课范围，参与者只见自己
// @Tags 证书
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   participantId query int false "参与者过滤"
// @Param   workshopId query int false "工作坊过滤"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/v1/certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	certificates, total, err := c.CertificateService.List(id, page, limit,
		util.MustParseUint(ctx.Query("participantId")),
		util.MustParseUint(ctx.Query("workshopId")),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: certificates, Total: total, Page: page, Limit: limit})
}

// GetByID godoc
// @Summary 证书详情
// @Tags 证书
// @Produce  json
// @Param   id path int true "证书ID"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response "证书不存在"
// @Security BearerAuth
// @Router /api/v1/certificates/{id} [get]
func (c *CertificateController) GetByID(ctx *gin.Context) {
	certificate, err := c.CertificateService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, certificate)
}

// GenerateCertificateRequest 签发证书请求
// swagger:model GenerateCertificateRequest
type GenerateCertificateRequest struct {
	ParticipantID uint `json:"participantId" binding:"required"`
	WorkshopID    uint `json:"workshopId" binding:"required"`
}

// Generate godoc
// @Summary 签发证书
// @Description 校验报名与结业资格后签发；不合格时附带完成进度
// @Tags 证书
// @Accept  json
// @Produce  json
// @Param   body body GenerateCertificateRequest true "参与者与工作坊"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "未报名或未达结业要求"
// @Failure 404 {object} util.Response "参与者或工作坊不存在"
// @Failure 409 {object} util.Response "证书已存在"
// @Security BearerAuth
// @Router /api/v1/certificates [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req GenerateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	certificate, result, err := c.CertificateService.Generate(req.ParticipantID, req.WorkshopID)
	if err != nil {
		// 资格不足时在响应中带上进度
		if result != nil && util.KindOf(err) == util.KindInvalidState {
			ctx.JSON(http.StatusBadRequest, util.Response{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
				Data:    result,
			})
			return
		}
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"certificate": certificate, "eligibility": result})
}

// Verify godoc
// @Summary 证书验真
// @Description 公开接口，按UUID验证证书真伪
// @Tags 证书
// @Produce  json
// @Param   uuid path string true "证书UUID"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response "证书不存在或无效"
// @Router /api/v1/certificates/verify/{uuid} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	certificate, err := c.CertificateService.Verify(ctx.Request.Context(), ctx.Param("uuid"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, certificate)
}

// GetParticipantCertificates godoc
// @Summary 参与者的证书
// @Description 仅本人或管理员可见
// @Tags 证书
// @Produce  json
// @Param   id path int true "参与者ID"
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "参与者不存在"
// @Security BearerAuth
// @Router /api/v1/participants/{id}/certificates [get]
func (c *CertificateController) GetParticipantCertificates(ctx *gin.Context) {
	id, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	certificates, err := c.CertificateService.GetParticipantCertificates(id, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, certificates)
}

// Delete godoc
// @Summary 删除证书
// @Description 证书不可修改，重发需删除后重新签发
// @Tags 证书
// @Produce  json
// @Param   id path int true "证书ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "证书不存在"
// @Security BearerAuth
// @Router /api/v1/certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	if err := c.CertificateService.Delete(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
