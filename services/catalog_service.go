package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.ProductFields) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	SearchByName(ctx context.Context, keyword string) ([]models.Product, error)
}

type CatalogService struct {
	products ProductRepository
}

func NewCatalogService(products ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns every product. No pagination, no filtering.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return products, nil
}

// Create stamps the product with the acting user and stores it.
func (s *CatalogService) Create(ctx context.Context, product *models.Product, owner primitive.ObjectID) error {
	product.User = owner
	if _, err := s.products.Create(ctx, product); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return product, nil
}

// Update overwrites all catalog fields of the product. Not a partial merge.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, fields models.ProductFields) error {
	matched, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if matched == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}

// Delete removes a product and returns the deleted record.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return product, nil
}

// Search matches the keyword against product names, case-insensitively.
// Zero matches is reported as not found, including on an empty catalog.
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	products, err := s.products.SearchByName(ctx, keyword)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if len(products) == 0 {
		return nil, apperrors.ErrNoResults
	}
	return products, nil
}
