package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/models"
	"fleur-api/repositories"
)

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	users *repositories.UserRepository
	carts *repositories.CartRepository
	jwt   *auth.JWTManager
}

func NewAuthService(users *repositories.UserRepository, carts *repositories.CartRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, carts: carts, jwt: jwt}
}

// Register creates the account plus its empty cart, then signs a token.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error) {
	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// new accounts start with an empty cart document
	if err := s.carts.SaveItems(ctx, user.ID, []models.CartItem{}); err != nil {
		return nil, err
	}

	token, err := s.jwt.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponseDTO{Token: token, User: dto.NewUserDTO(*user)}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponseDTO{Token: token, User: dto.NewUserDTO(*user)}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	d := dto.NewUserDTO(*user)
	return &d, nil
}
