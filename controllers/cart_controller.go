package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

type CartService interface {
	Get(ctx context.Context, user *models.User) (*models.PopulatedCart, error)
	AddProducts(ctx context.Context, user *models.User, ids []primitive.ObjectID) (*models.Cart, error)
	RemoveProduct(ctx context.Context, user *models.User, productID primitive.ObjectID) (*models.Cart, error)
}

type CartController struct {
	carts  CartService
	logger *zap.Logger
}

func NewCartController(carts CartService, logger *zap.Logger) *CartController {
	return &CartController{carts: carts, logger: logger}
}

type AddToCartRequest struct {
	Products []string `json:"products" binding:"required,min=1"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productID" binding:"required"`
}

// GetCart returns the acting user's cart with products expanded.
func (cc *CartController) GetCart(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	cart, err := cc.carts.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// AddToCart merges the requested product ids into the user's cart,
// creating the cart lazily on first add.
func (cc *CartController) AddToCart(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, cc.logger, apperrors.ErrMissingFields)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.Products))
	for _, raw := range req.Products {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}
		ids = append(ids, id)
	}

	cart, err := cc.carts.AddProducts(c.Request.Context(), user, ids)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cart updated successfully", "cart": cart})
}

// RemoveFromCart removes one product from the user's cart.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, cc.logger, apperrors.ErrMissingFields)
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	cart, err := cc.carts.RemoveProduct(c.Request.Context(), user, productID)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully", "cart": cart})
}
