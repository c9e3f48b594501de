package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

// --- Mock Service ---
type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201 Created", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())
		mockService.On("Register", mock.Anything, "A", "a@x.com", "pw").Return(nil).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		// Act
		recorder := postJSON(router, "/register", `{"name": "A", "email": "a@x.com", "password": "pw"}`)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User created successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Field - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())
		router := gin.New()
		router.POST("/register", authController.Register)

		// Act: no password
		recorder := postJSON(router, "/register", `{"name": "A", "email": "a@x.com"}`)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Some fields are missing")
		mockService.AssertNotCalled(t, "Register")
	})

	t.Run("Failure - Duplicate - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())
		mockService.On("Register", mock.Anything, "A", "a@x.com", "pw").
			Return(apperrors.ErrDuplicateUser).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		// Act
		recorder := postJSON(router, "/register", `{"name": "A", "email": "a@x.com", "password": "pw"}`)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User already has an account")
		mockService.AssertExpectations(t)
	})
}

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 OK With Stored Token", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())

		user := &models.User{
			ID:    primitive.NewObjectID(),
			Name:  "A",
			Email: "a@x.com",
			Token: "registration-token",
			Role:  "user",
		}
		mockService.On("Login", mock.Anything, "a@x.com", "pw").Return(user, nil).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		// Act
		recorder := postJSON(router, "/login", `{"email": "a@x.com", "password": "pw"}`)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "registration-token")
		assert.Contains(t, recorder.Body.String(), `"role":"user"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Registered - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())
		mockService.On("Login", mock.Anything, "nobody@x.com", "pw").
			Return(nil, apperrors.ErrNotRegistered).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		// Act
		recorder := postJSON(router, "/login", `{"email": "nobody@x.com", "password": "pw"}`)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not registered")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Password - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, zap.NewNop())
		router := gin.New()
		router.POST("/login", authController.Login)

		// Act
		recorder := postJSON(router, "/login", `{"email": "a@x.com"}`)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Some fields are missing")
		mockService.AssertNotCalled(t, "Login")
	})
}
