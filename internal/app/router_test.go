package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"
	"workshop_hub_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 路由级权限测试：完整走认证中间件和角色闸门
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	cfg.Storage.PresignExpiry = 15 * time.Minute

	a := &App{Config: cfg, DB: db}
	repos := a.initRepositories(db)
	services := a.initServices(repos, cfg, nil)
	controllers := a.initControllers(services, db)

	router := gin.New()
	a.registerRoutes(router, controllers, cfg)
	return router, db, cfg
}

func routerUser(t *testing.T, db *gorm.DB, cfg *config.Config, email string, roles ...model.Role) (*model.User, string) {
	t.Helper()
	user := &model.User{
		FullName: "Router Test",
		Email:    email,
		Password: "hashed",
		Roles:    model.RoleList(roles),
	}
	require.NoError(t, db.Create(user).Error)

	token, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return user, token
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCertificateRoutesAdminOnly(t *testing.T) {
	router, db, cfg := setupTestRouter(t)

	_, instructorToken := routerUser(t, db, cfg, "teach@example.com", model.RoleInstructor)
	_, adminToken := routerUser(t, db, cfg, "admin@example.com", model.RoleAdmin)

	body := `{"participantId": 999, "workshopId": 999}`

	// 讲师（含未授课讲师）不能签发或按ID读取证书
	w := doJSON(router, http.MethodPost, "/api/v1/certificates", instructorToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/certificates/1", instructorToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员放行到服务层，未知目标报 404
	w = doJSON(router, http.MethodPost, "/api/v1/certificates", adminToken, body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageDownloadURLRequiresStaff(t *testing.T) {
	router, db, cfg := setupTestRouter(t)

	_, participantToken := routerUser(t, db, cfg, "p@example.com", model.RoleParticipant)
	_, instructorToken := routerUser(t, db, cfg, "teach@example.com", model.RoleInstructor)

	// 参与者拿不到任意对象键的下载链接
	w := doJSON(router, http.MethodGet, "/api/v1/storage/download-url?key=assignments/1/grader/x", participantToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 工作人员放行到服务层，对象缺失报 404
	w = doJSON(router, http.MethodGet, "/api/v1/storage/download-url?key=assignments/1/grader/x", instructorToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmissionCreateRouteRequiresTeaching(t *testing.T) {
	router, db, cfg := setupTestRouter(t)

	participant, _ := routerUser(t, db, cfg, "p@example.com", model.RoleParticipant)
	_, outsiderToken := routerUser(t, db, cfg, "outsider@example.com", model.RoleInstructor)
	teaching, teachingToken := routerUser(t, db, cfg, "teach@example.com", model.RoleInstructor)

	workshop := &model.Workshop{Name: "Go Fundamentals", Status: model.WorkshopActive}
	require.NoError(t, db.Create(workshop).Error)
	require.NoError(t, db.Create(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: teaching.ID}).Error)
	assignment := &model.Assignment{WorkshopID: workshop.ID, Name: "hw1", MaximumScore: 100, PassingScore: 60, IsCompulsory: true}
	require.NoError(t, db.Create(assignment).Error)

	body := fmt.Sprintf(`{"participantId": %d, "assignmentId": %d, "score": 80, "attemptNumber": 1}`, participant.ID, assignment.ID)

	// 未授课的讲师过得了角色闸门，但被工作坊归属判定拦下
	w := doJSON(router, http.MethodPost, "/api/v1/submissions", outsiderToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/submissions", teachingToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)
}
