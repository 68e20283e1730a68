package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"specwriter/internal/config"
	"specwriter/internal/models"
	"specwriter/internal/seed"
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sirupsen/logrus"
)

// envelope 测试用响应信封
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.Issuer = "specwriter"
	cfg.JWT.ExpireMinutes = 60
	cfg.Seed.Admin = config.SeedAccount{Email: "admin@example.com", Password: "Admin123!", FullName: "System Administrator"}
	cfg.Seed.Creator = config.SeedAccount{Email: "creator@example.com", Password: "Creator123!", FullName: "Specification Creator"}
	cfg.Schema.DefaultSchemaID = "3f1b8a52-0000-4000-8000-000000000001"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	require.NoError(t, seed.Run(db, cfg))

	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.JWT.Issuer, time.Hour)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return SetupRouter(cfg, jwtManager, logger, db, nil), cfg
}

// doJSON 发送JSON请求并解析响应信封
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

// login 登录并返回Token
func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	status, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

// 种子管理员和创建者各自登录，创建者建档、列表，管理员访问他人文档被拒，删除后404
func TestEndToEndScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	creatorToken := login(t, r, "creator@example.com", "Creator123!")
	adminToken := login(t, r, "admin@example.com", "Admin123!")

	// 创建空壳规格书，默认模式，DRAFT 1.0
	status, env := doJSON(t, r, http.MethodPost, "/api/specifications", creatorToken, gin.H{})
	require.Equal(t, http.StatusCreated, status)

	var spec struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &spec))
	assert.Equal(t, "DRAFT", spec.Status)
	assert.Equal(t, "1.0", spec.Version)

	// 列表只包含这一条
	status, env = doJSON(t, r, http.MethodGet, "/api/specifications", creatorToken, nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)

	// 管理员访问创建者的规格书 → 403
	status, env = doJSON(t, r, http.MethodGet, "/api/specifications/"+spec.ID, adminToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "forbidden", env.Error.Code)

	// 创建者删除 → 后续GET 404
	status, _ = doJSON(t, r, http.MethodDelete, "/api/specifications/"+spec.ID, creatorToken, nil)
	require.Equal(t, http.StatusOK, status)
	status, env = doJSON(t, r, http.MethodGet, "/api/specifications/"+spec.ID, creatorToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
}

// 错误密码和不存在的邮箱返回同一个401消息
func TestLoginFailureUniform(t *testing.T) {
	r, _ := newTestRouter(t)

	status1, env1 := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "creator@example.com", "password": "wrong",
	})
	status2, env2 := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@example.com", "password": "Creator123!",
	})

	assert.Equal(t, http.StatusUnauthorized, status1)
	assert.Equal(t, http.StatusUnauthorized, status2)
	require.NotNil(t, env1.Error)
	require.NotNil(t, env2.Error)
	assert.Equal(t, env1.Error.Message, env2.Error.Message)

	// 缺字段 → 400
	status3, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "creator@example.com"})
	assert.Equal(t, http.StatusBadRequest, status3)
}

func TestSchemaRoutesAdminOnly(t *testing.T) {
	r, cfg := newTestRouter(t)

	creatorToken := login(t, r, "creator@example.com", "Creator123!")
	adminToken := login(t, r, "admin@example.com", "Admin123!")
	schemaPath := "/api/schema/" + cfg.Schema.DefaultSchemaID

	// 未认证 → 401
	status, _ := doJSON(t, r, http.MethodGet, schemaPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// 创建者 → 403
	status, _ = doJSON(t, r, http.MethodGet, schemaPath, creatorToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// 管理员 → 200，分类按序返回
	status, env := doJSON(t, r, http.MethodGet, schemaPath, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	var schema struct {
		Categories []struct {
			Name         string `json:"name"`
			DisplayOrder int    `json:"displayOrder"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &schema))
	require.NotEmpty(t, schema.Categories)
	for i := 1; i < len(schema.Categories); i++ {
		assert.LessOrEqual(t, schema.Categories[i-1].DisplayOrder, schema.Categories[i].DisplayOrder)
	}

	// 字段不变量在创建接口上报400
	var categoryID string
	{
		var full struct {
			Categories []struct {
				ID string `json:"id"`
			} `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &full))
		categoryID = full.Categories[0].ID
	}
	status, env = doJSON(t, r, http.MethodPost, "/api/schema/fields", adminToken, gin.H{
		"categoryId": categoryID,
		"fieldName":  "Broken radio",
		"dataType":   "RADIO",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "Options are required")
}

func TestMalformedUUIDRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	creatorToken := login(t, r, "creator@example.com", "Creator123!")

	status, env := doJSON(t, r, http.MethodGet, "/api/specifications/not-a-uuid", creatorToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
}
