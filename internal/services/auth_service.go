// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type AuthService struct {
	db      *gorm.DB
	cfg     *config.Config
	lookups []principalLookup
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	Name  string `json:"name"`
}

// principal is the tagged result of an email lookup: which kind matched,
// plus the fields the login flow needs from it.
type principal struct {
	ID           uint
	Kind         models.PrincipalType
	Name         string
	PasswordHash string
}

// principalLookup resolves an email within one principal kind. A nil
// principal with a nil error means "no principal of this kind".
type principalLookup func(db *gorm.DB, email string) (*principal, error)

func lookupUser(db *gorm.DB, email string) (*principal, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &principal{
		ID:           user.ID,
		Kind:         models.PrincipalTypeUser,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}, nil
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
		// Lookup chain in priority order. The unified schema has one kind;
		// a split schema would register its kinds here, first match wins.
		lookups: []principalLookup{lookupUser},
	}
}

// Authenticate resolves the email across principal kinds in chain order and
// verifies the password against the first match. A matching email with a
// wrong password short-circuits: later kinds are not consulted.
func (s *AuthService) Authenticate(req *AuthRequest) (*AuthResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for _, lookup := range s.lookups {
		p, err := lookup(s.db, req.Email)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		if err := verifyPassword(p.PasswordHash, req.Password); err != nil {
			return nil, ErrInvalidPassword
		}

		token, err := utils.GenerateJWT(p.ID, string(p.Kind), p.Name, s.cfg.JWT.AccessTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}

		return &AuthResult{
			Token: token,
			Type:  string(p.Kind),
			Name:  p.Name,
		}, nil
	}

	return nil, ErrUserNotFound
}

func verifyPassword(hash, password string) error {
	u := models.User{PasswordHash: hash}
	return u.CheckPassword(password)
}
