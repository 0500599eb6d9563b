// internal/services/auth_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	authService *services.AuthService
	userService *services.UserService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	cfg := testConfig()
	suite.db = setupTestDB(suite.T())
	suite.authService = services.NewAuthService(suite.db, cfg)
	suite.userService = services.NewUserService(suite.db, cfg)
}

func (suite *AuthServiceTestSuite) TestAuthenticateSuccess() {
	user := createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")

	result, err := suite.authService.Authenticate(&services.AuthRequest{
		Email:    "ann@x.com",
		Password: "pw",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user", result.Type)
	assert.Equal(suite.T(), "Ann", result.Name)

	claims, err := utils.ValidateJWT(result.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
}

func (suite *AuthServiceTestSuite) TestAuthenticateWrongPassword() {
	createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")

	result, err := suite.authService.Authenticate(&services.AuthRequest{
		Email:    "ann@x.com",
		Password: "wrong",
	})

	assert.ErrorIs(suite.T(), err, services.ErrInvalidPassword)
	assert.Nil(suite.T(), result)
}

func (suite *AuthServiceTestSuite) TestAuthenticateUnknownEmail() {
	createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")

	result, err := suite.authService.Authenticate(&services.AuthRequest{
		Email:    "nobody@x.com",
		Password: "pw",
	})

	assert.ErrorIs(suite.T(), err, services.ErrUserNotFound)
	assert.Nil(suite.T(), result)
}

func (suite *AuthServiceTestSuite) TestAuthenticateEmailExactMatch() {
	createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")

	// No case normalization: lookup matches exactly what registration stored.
	_, err := suite.authService.Authenticate(&services.AuthRequest{
		Email:    "ANN@x.com",
		Password: "pw",
	})

	assert.ErrorIs(suite.T(), err, services.ErrUserNotFound)
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesUsableToken() {
	result, err := suite.userService.Register(&services.RegisterRequest{
		Name:        "Ann",
		Email:       "ann@x.com",
		PhoneNumber: "555",
		Address:     "1 St",
		Password:    "pw",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user Ann created successfully", result.Message)

	claims, err := utils.ValidateJWT(result.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ann", claims.Name)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &services.RegisterRequest{
		Name:        "Ann",
		Email:       "ann@x.com",
		PhoneNumber: "555",
		Address:     "1 St",
		Password:    "pw",
	}

	_, err := suite.userService.Register(req)
	assert.NoError(suite.T(), err)

	_, err = suite.userService.Register(req)
	assert.ErrorIs(suite.T(), err, services.ErrEmailTaken)

	var count int64
	suite.db.Table("users").Where("email = ?", "ann@x.com").Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *AuthServiceTestSuite) TestRegisterMissingFields() {
	_, err := suite.userService.Register(&services.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "pw",
	})

	assert.ErrorIs(suite.T(), err, services.ErrMissingFields)

	var count int64
	suite.db.Table("users").Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *AuthServiceTestSuite) TestRegisterNeverExposesHash() {
	result, err := suite.userService.Register(&services.RegisterRequest{
		Name:        "Ann",
		Email:       "ann@x.com",
		PhoneNumber: "555",
		Address:     "1 St",
		Password:    "pw",
	})
	assert.NoError(suite.T(), err)
	assert.NotContains(suite.T(), result.Message, "pw")

	user, err := suite.userService.GetUserByID(1)
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "pw", user.PasswordHash)
	assert.NotEmpty(suite.T(), user.PasswordHash)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
