package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

type CartRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) (primitive.ObjectID, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// CartService implements the per-user cart. A cart is a set of distinct
// product references, not a quantity-aware cart; adding an id that is
// already present is a no-op.
type CartService struct {
	carts    CartRepository
	products ProductRepository
	users    UserRepository
}

func NewCartService(carts CartRepository, products ProductRepository, users UserRepository) *CartService {
	return &CartService{carts: carts, products: products, users: users}
}

// Get returns the user's cart with product references expanded to full
// records. A user who never added anything gets an empty cart shape.
// References to products deleted since they were added are dropped from
// the expansion; the stored total is returned as-is.
func (s *CartService) Get(ctx context.Context, user *models.User) (*models.PopulatedCart, error) {
	if user.Cart.IsZero() {
		return &models.PopulatedCart{Products: []models.Product{}}, nil
	}

	cart, err := s.carts.FindByID(ctx, user.Cart)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	populated := &models.PopulatedCart{
		ID:       cart.ID,
		Products: []models.Product{},
		Total:    cart.Total,
	}
	for _, id := range cart.Products {
		product, err := s.products.FindByID(ctx, id)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		populated.Products = append(populated.Products, *product)
	}
	return populated, nil
}

// AddProducts merges the requested product ids into the user's cart.
//
// With no existing cart, a new one is created holding the requested id set
// with total = sum of the found products' current prices, and linked to the
// user. With an existing cart, each requested id not already present is
// appended and its current price added to the cart's running total; ids
// already present are left untouched. The merge is a single sequential pass
// followed by one save, so the persisted total always matches the persisted
// product list.
func (s *CartService) AddProducts(ctx context.Context, user *models.User, ids []primitive.ObjectID) (*models.Cart, error) {
	if user.Cart.IsZero() {
		total := 0.0
		for _, id := range ids {
			product, err := s.products.FindByID(ctx, id)
			if err == mongo.ErrNoDocuments {
				continue
			}
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternal, err)
			}
			total += product.Price
		}

		cart := &models.Cart{Products: ids, Total: total}
		cartID, err := s.carts.Create(ctx, cart)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if err := s.users.SetCart(ctx, user.ID, cartID); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		user.Cart = cartID
		return cart, nil
	}

	cart, err := s.carts.FindByID(ctx, user.Cart)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	existing := make(map[primitive.ObjectID]bool, len(cart.Products))
	for _, id := range cart.Products {
		existing[id] = true
	}

	total := cart.Total
	for _, id := range ids {
		if existing[id] {
			continue
		}
		product, err := s.products.FindByID(ctx, id)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		cart.Products = append(cart.Products, id)
		existing[id] = true
		total += product.Price
	}
	cart.Total = total

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return cart, nil
}

// RemoveProduct removes one product reference from the user's cart and
// recomputes the total from scratch over the remaining products' current
// prices.
func (s *CartService) RemoveProduct(ctx context.Context, user *models.User, productID primitive.ObjectID) (*models.Cart, error) {
	if user.Cart.IsZero() {
		return nil, apperrors.ErrCartNotFound
	}

	cart, err := s.carts.FindByID(ctx, user.Cart)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrCartNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	index := -1
	for i, id := range cart.Products {
		if id == productID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.ErrProductNotInCart
	}
	cart.Products = append(cart.Products[:index], cart.Products[index+1:]...)

	total := 0.0
	for _, id := range cart.Products {
		product, err := s.products.FindByID(ctx, id)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		total += product.Price
	}
	cart.Total = total

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return cart, nil
}
