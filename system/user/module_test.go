package user

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shortgate/pkg/core/fiber_handle"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/security"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app    *fiber.App
	module *Module
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db, logger.GetLogger()))

	m := NewModuleWith(Deps{DB: db, Auth: security.NewAuth([]byte("test-secret"), time.Hour)})
	app := fiber.New(fiber.Config{ErrorHandler: fiber_handle.ErrHandler})
	RegisterRoutes(m, app.Group("/api"))

	return &testServer{app: app, module: m, db: db}
}

func (s *testServer) call(t *testing.T, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, env := s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var data struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
		User        struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Bearer", data.TokenType)
	assert.Equal(t, username, data.User.Username)
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestEnsureBootstrapAdmin_OnlyOnEmptyTable(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, s.module.EnsureBootstrapAdmin(ctx, "root", "changeme"))
	require.NoError(t, s.module.EnsureBootstrapAdmin(ctx, "other", "changeme"))

	var count int64
	require.NoError(t, s.db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var role string
	require.NoError(t, s.db.Table("users").Select("role").Where("username = ?", "root").Scan(&role).Error)
	assert.Equal(t, security.RoleAdmin, role)
}

func TestLogin_AndMe(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.module.EnsureBootstrapAdmin(context.Background(), "root", "changeme"))

	token := s.login(t, "root", "changeme")

	resp, env := s.call(t, http.MethodGet, "/api/user/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "root", me.Username)
	assert.Equal(t, security.RoleAdmin, me.Role)
	assert.NotContains(t, string(env.Data), "passwordHash")
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.module.EnsureBootstrapAdmin(context.Background(), "root", "changeme"))

	for _, body := range []map[string]string{
		{"username": "root", "password": "wrong"},
		{"username": "ghost", "password": "changeme"},
	} {
		resp, env := s.call(t, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, -2, env.Code)
		assert.Equal(t, "账号或密码错误", env.Message)
		assert.Empty(t, resp.Header.Get(fiber.HeaderWWWAuthenticate))
	}

	resp, env := s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "root"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, -1, env.Code)
}

func TestMe_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.call(t, http.MethodGet, "/api/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, -2, env.Code)
	assert.Equal(t, security.EvictChallenge, resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.module.EnsureBootstrapAdmin(context.Background(), "root", "changeme"))
	token := s.login(t, "root", "changeme")

	resp, env := s.call(t, http.MethodPut, "/api/user/me/password", token, map[string]string{
		"oldPassword": "bad", "newPassword": "n3w-secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "旧密码错误", env.Message)

	resp, _ = s.call(t, http.MethodPut, "/api/user/me/password", token, map[string]string{
		"oldPassword": "changeme", "newPassword": "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = s.call(t, http.MethodPut, "/api/user/me/password", token, map[string]string{
		"oldPassword": "changeme", "newPassword": "n3w-secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	resp, _ = s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "root", "password": "changeme"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	s.login(t, "root", "n3w-secret")
}

func TestLogin_DisabledAccount(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.module.EnsureBootstrapAdmin(context.Background(), "root", "changeme"))
	require.NoError(t, s.db.Table("users").Where("username = ?", "root").Update("status", 0).Error)

	resp, env := s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "root", "password": "changeme"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "账号已被禁用", env.Message)
}
