// internal/handlers/auth_flow_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/router"
)

type AuthFlowTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *AuthFlowTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(suite.T().TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		suite.T().Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}); err != nil {
		suite.T().Fatalf("failed to migrate test database: %v", err)
	}
	suite.db = db

	cfg := &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 24,
		},
		Admin: config.AdminConfig{
			APIKey:       "test-admin-key",
			APIKeyHeader: "X-API-Key",
		},
	}

	r, err := router.Initialize(db, cfg)
	if err != nil {
		suite.T().Fatalf("failed to initialize router: %v", err)
	}
	suite.router = r
}

func (suite *AuthFlowTestSuite) postJSON(path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthFlowTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(suite.T(), err)
	return body
}

// Register, fail login with a wrong password, then log in.
func (suite *AuthFlowTestSuite) TestRegisterAndLogin() {
	w := suite.postJSON("/v1/users", map[string]interface{}{
		"name":        "Ann",
		"email":       "ann@x.com",
		"phoneNumber": "555",
		"address":     "1 St",
		"password":    "pw",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := suite.decode(w)
	assert.Equal(suite.T(), float64(http.StatusOK), body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(suite.T(), "user Ann created successfully", data["message"])
	assert.NotEmpty(suite.T(), data["token"])

	w = suite.postJSON("/v1/auth", map[string]interface{}{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	body = suite.decode(w)
	assert.Equal(suite.T(), "Invalid password", body["data"])

	w = suite.postJSON("/v1/auth", map[string]interface{}{
		"email":    "ann@x.com",
		"password": "pw",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body = suite.decode(w)
	data = body["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
	assert.Equal(suite.T(), "user", data["type"])
	assert.Equal(suite.T(), "Ann", data["name"])
}

func (suite *AuthFlowTestSuite) TestAdminListingRequiresAPIKey() {
	req, _ := http.NewRequest("GET", "/v1/users", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	body := suite.decode(w)
	assert.Equal(suite.T(), "Access token header not found", body["data"])

	req, _ = http.NewRequest("GET", "/v1/users", nil)
	req.Header.Set("X-API-Key", "test-admin-key")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body = suite.decode(w)
	data := body["data"].(map[string]interface{})
	_, hasUsers := data["users"]
	assert.True(suite.T(), hasUsers)
}

func (suite *AuthFlowTestSuite) TestProtectedRouteWithoutToken() {
	req, _ := http.NewRequest("POST", "/v1/items", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	body := suite.decode(w)
	assert.Equal(suite.T(), "Authorization header missing", body["data"])
}

func TestAuthFlowSuite(t *testing.T) {
	suite.Run(t, new(AuthFlowTestSuite))
}
