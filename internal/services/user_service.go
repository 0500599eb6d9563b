// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type UserService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type UpdateUserRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{
		db:  db,
		cfg: cfg,
	}
}

// Register creates a user and logs them in: the created principal gets a
// token immediately. The password hash never leaves this layer.
func (s *UserService) Register(req *RegisterRequest) (*RegisterResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrMissingFields
	}

	// Reject duplicate emails. Exact match, same as the login lookup.
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, string(models.PrincipalTypeUser), user.Name, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterResult{
		Message: fmt.Sprintf("user %s created successfully", user.Name),
		Token:   token,
	}, nil
}

func (s *UserService) GetUsers(params utils.PaginationParams) ([]models.User, error) {
	var users []models.User

	query := utils.ApplySort(s.db.Model(&models.User{}), params, []string{"created_at", "name", "email"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// UpdateUser applies only the provided fields.
func (s *UserService) UpdateUser(id uint, req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrMissingFields
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return user, nil
}

func (s *UserService) DeleteUser(id uint) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}
