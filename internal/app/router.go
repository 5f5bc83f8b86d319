package app

import (
	"workshop_hub_backend/docs"
	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/middleware"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api/v1")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)
		// 证书验真对外公开
		public.GET("/certificates/verify/:uuid", c.certificate.Verify)
	}

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	adminOnly := middleware.RoleMiddleware(model.RoleAdmin)
	staff := middleware.RoleMiddleware(model.RoleAdmin, model.RoleInstructor)

	// 用户管理：列表/增删改仅管理员，详情放开给工作人员
	users := api.Group("/users")
	{
		users.GET("/me", c.user.Me)
		users.GET("", adminOnly, c.user.List)
		users.POST("", adminOnly, c.user.Create)
		users.GET("/:id", staff, c.user.GetByID)
		users.PUT("/:id", adminOnly, c.user.Update)
		users.DELETE("/:id", adminOnly, c.user.Delete)
	}

	// 工作坊：读取在服务层按身份过滤，写操作仅管理员；
	// 讲师指派只有管理员可做
	workshops := api.Group("/workshops")
	{
		workshops.GET("", c.workshop.List)
		workshops.GET("/:workshopId", c.workshop.GetByID)
		workshops.POST("", adminOnly, c.workshop.Create)
		workshops.PUT("/:workshopId", adminOnly, c.workshop.Update)
		workshops.DELETE("/:workshopId", adminOnly, c.workshop.Delete)

		workshops.GET("/:workshopId/instructors", c.workshop.ListInstructors)
		workshops.POST("/:workshopId/instructors", adminOnly, c.workshop.AddInstructor)
		workshops.DELETE("/:workshopId/instructors/:instructorId", adminOnly, c.workshop.RemoveInstructor)

		// 作业嵌套在工作坊下，读写权限在服务层判定
		workshops.GET("/:workshopId/assignments", c.assignment.List)
		workshops.POST("/:workshopId/assignments", staff, c.assignment.Create)
		workshops.GET("/:workshopId/assignments/:id", c.assignment.GetByID)
		workshops.PUT("/:workshopId/assignments/:id", staff, c.assignment.Update)
		workshops.DELETE("/:workshopId/assignments/:id", staff, c.assignment.Delete)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", c.enrollment.List)
		enrollments.POST("", staff, c.enrollment.Create)
		enrollments.POST("/link", staff, c.enrollment.GenerateLink)
		enrollments.POST("/enroll", c.enrollment.Enroll)
		enrollments.GET("/:id", c.enrollment.GetByID)
		enrollments.PUT("/:id", staff, c.enrollment.UpdateStatus)
		enrollments.DELETE("/:id", adminOnly, c.enrollment.Delete)
	}

	submissions := api.Group("/submissions")
	{
		submissions.GET("", c.submission.List)
		submissions.POST("", staff, c.submission.Create)
		submissions.GET("/:id", c.submission.GetByID)
	}

	// 签发与按ID读取不做归属判定，仅管理员可用
	certificates := api.Group("/certificates")
	{
		certificates.GET("", c.certificate.List)
		certificates.POST("", adminOnly, c.certificate.Generate)
		certificates.GET("/:id", adminOnly, c.certificate.GetByID)
		certificates.DELETE("/:id", adminOnly, c.certificate.Delete)
	}

	// 参与者私有数据视角
	participants := api.Group("/participants")
	{
		participants.GET("/:id/submissions", c.submission.GetParticipantSubmissions)
		participants.GET("/:id/certificates", c.certificate.GetParticipantCertificates)
	}

	// 对象键可指向评测程序与参考数据，上传下载均不对参与者开放
	storage := api.Group("/storage")
	{
		storage.POST("/upload-url", staff, c.storage.GenerateUploadURL)
		storage.GET("/download-url", staff, c.storage.GenerateDownloadURL)
	}
}
