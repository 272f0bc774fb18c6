package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type IUserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.User, error)
}

type ITokenService interface {
	Generate(userID, username string) (string, error)
	Validate(tokenStr string) (string, error)
}

// ProfileUpdate carries partial-update fields for PUT /profile. A nil
// Username leaves the name untouched; RequestAdmin elevates the account and
// requires the admin secret.
type ProfileUpdate struct {
	Username      *string
	RequestAdmin  bool
	AdminPassword string
}

// AuthService implements registration, login and profile management. The
// admin gate is a coarse shared-secret comparison, not per-user privilege
// escalation: any non-empty username with the configured admin password
// passes AdminLogin.
type AuthService struct {
	users         IUserRepository
	tokens        ITokenService
	adminPassword string
}

func NewAuthService(users IUserRepository, tokens ITokenService, adminPassword string) *AuthService {
	return &AuthService{users: users, tokens: tokens, adminPassword: adminPassword}
}

// Register creates an account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return "", apperrors.ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Generate(user.ID.Hex(), user.Username)
}

// Login verifies credentials and returns a fresh token. Unknown usernames
// and wrong passwords are distinguishable on purpose, matching the contract
// the frontend was written against.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID.Hex(), user.Username)
}

// AdminLogin checks the shared admin secret. No user record is consulted.
func (s *AuthService) AdminLogin(username, password string) error {
	if username == "" || password == "" {
		return apperrors.ErrMissingUserPass
	}
	if password != s.adminPassword {
		return apperrors.ErrInvalidAdminSecret
	}
	return nil
}

// GetProfile loads a user by id. The password hash never leaves the model's
// JSON representation.
func (s *AuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. Elevating to admin
// re-requires the admin secret.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req ProfileUpdate) (*models.User, error) {
	updates := bson.M{}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, apperrors.ErrEmptyUsername
		}

		existing, err := s.users.FindByUsername(ctx, username)
		if err == nil && existing.ID != userID {
			return nil, apperrors.ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		updates["username"] = username
	}

	if req.RequestAdmin {
		if req.AdminPassword == "" || req.AdminPassword != s.adminPassword {
			return nil, apperrors.ErrInvalidAdminPass
		}
		updates["is_admin"] = true
	}

	user, err := s.users.UpdateByID(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateCredentials changes email and/or password; at least one is required.
func (s *AuthService) UpdateCredentials(ctx context.Context, userID primitive.ObjectID, email, password string) (*models.User, error) {
	if email == "" && password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	updates := bson.M{}
	if email != "" {
		updates["email"] = strings.TrimSpace(email)
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	user, err := s.users.UpdateByID(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every account, for the admin dashboard.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// SetUserRole toggles another user's admin flag. The caller must already be
// an admin.
func (s *AuthService) SetUserRole(ctx context.Context, callerID, targetID primitive.ObjectID, isAdmin bool) (*models.User, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil || !caller.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	user, err := s.users.UpdateByID(ctx, targetID, bson.M{"is_admin": isAdmin})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
