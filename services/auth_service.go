package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error
}

type TokenIssuer interface {
	Generate(email string) (string, error)
	Verify(tokenStr string) (string, error)
}

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register stores a new account with a salted password hash and a
// lifetime bearer token, role "user".
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return apperrors.ErrDuplicateUser
	}
	if err != mongo.ErrNoDocuments {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	token, err := s.tokens.Generate(email)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Token:    token,
		Role:     "user",
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// Login checks the credentials and returns the stored user. The token is
// the one issued at registration; it is never regenerated here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotRegistered
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// ResolveUser turns a bearer token into the acting user record. The token
// carries only an email claim, so the user is re-resolved by lookup.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return user, nil
}
