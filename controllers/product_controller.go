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

type CatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product, owner primitive.ObjectID) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.ProductFields) error
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Search(ctx context.Context, keyword string) ([]models.Product, error)
}

type ProductController struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewProductController(catalog CatalogService, logger *zap.Logger) *ProductController {
	return &ProductController{catalog: catalog, logger: logger}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Brand       string   `json:"brand" binding:"required"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

type UpdateProductRequest struct {
	ProductData models.ProductFields `json:"productData" binding:"required"`
}

// GetProducts returns the whole catalog.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct stores a new product stamped with the acting user.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pc.logger, apperrors.ErrMissingFields)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       *req.Price,
		Brand:       req.Brand,
		Stock:       *req.Stock,
	}

	if err := pc.catalog.Create(c.Request.Context(), &product, user.ID); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	product, err := pc.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "product": product})
}

// UpdateProduct overwrites all catalog fields of a product.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pc.logger, apperrors.ErrMissingFields)
		return
	}

	if err := pc.catalog.Update(c.Request.Context(), id, req.ProductData); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct removes a product and echoes back the deleted record.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	product, err := pc.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "product": product})
}

// SearchProducts matches the keyword against product names.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	keyword := c.Param("keyword")

	products, err := pc.catalog.Search(c.Request.Context(), keyword)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Products found", "products": products})
}
