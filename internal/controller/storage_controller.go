package controller

import (
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StorageController struct {
	StorageService *service.StorageService
}

func NewStorageController(storageService *service.StorageService) *StorageController {
	return &StorageController{StorageService: storageService}
}

// UploadURLRequest 直传签名请求
// swagger:model UploadURLRequest
type UploadURLRequest struct {
	Purpose  string `json:"purpose" binding:"required,oneof=WORKSHOP_HOME ASSIGNMENT_GRADER ASSIGNMENT_NOTEBOOK OTHER"`
	OwnerID  uint   `json:"ownerId" binding:"required"`
	Filename string `json:"filename" binding:"required"`
}

// GenerateUploadURL godoc
// @Summary 生成上传签名URL
// @Description 客户端凭签名URL直传对象存储，完成后将返回的 key 写回对应资源
// @Tags 存储
// @Accept  json
// @Produce  json
// @Param   body body UploadURLRequest true "上传信息"
// @Success 201 {object} util.Response{data=service.UploadTicket}
// @Failure 400 {object} util.Response "请求参数错误"
// @Security BearerAuth
// @Router /api/v1/storage/upload-url [post]
func (c *StorageController) GenerateUploadURL(ctx *gin.Context) {
	var req UploadURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ticket, err := c.StorageService.GenerateUploadURL(ctx.Request.Context(), req.Purpose, req.OwnerID, req.Filename)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, ticket)
}

// GenerateDownloadURL godoc
// @Summary 生成下载签名URL
// @Tags 存储
// @Produce  json
// @Param   key query string true "对象键"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "对象不存在"
// @Security BearerAuth
// @Router /api/v1/storage/download-url [get]
func (c *StorageController) GenerateDownloadURL(ctx *gin.Context) {
	key := ctx.Query("key")
	if key == "" {
		util.BadRequest(ctx, "key is required")
		return
	}

	downloadURL, err := c.StorageService.GenerateDownloadURL(ctx.Request.Context(), key)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"downloadUrl": downloadURL})
}
