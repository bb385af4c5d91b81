package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/pkg/auth"
	pkgcache "github.com/ghuser/produtos-api/pkg/cache"
	productdomain "github.com/ghuser/produtos-api/services/product/domain"
	"github.com/ghuser/produtos-api/services/product/domain/models"
	"github.com/ghuser/produtos-api/services/product/domain/repositories"
	domainsvcs "github.com/ghuser/produtos-api/services/product/domain/services"
	usermodels "github.com/ghuser/produtos-api/services/user/domain/models"
	userrepos "github.com/ghuser/produtos-api/services/user/domain/repositories"
)

// ProductFields carries the four client-supplied fields of a product.
// Create and Update both consume the full set: an update with omitted
// optional fields clears them (replace semantics, per the legacy contract).
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// ProductService orchestrates product operations. Every method takes the
// caller's verified Identity as an explicit first argument, so ownership scoping
// is parameter passing, never ambient state, so each access path is auditable
// in isolation.
//
// Event publishing happens in the repository layer (outbox pattern). Reads
// are served from Redis cache when available.
type ProductService struct {
	repo  repositories.ProductRepository
	users userrepos.UserRepository
	cache *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repositories and cache.
func NewProductService(repo repositories.ProductRepository, users userrepos.UserRepository, cache *pkgcache.ProductCache) *ProductService {
	return &ProductService{repo: repo, users: users, cache: cache}
}

// Create validates and persists a Product owned by ident. The repository
// publishes ProductCreatedEvent transactionally with the insert.
func (s *ProductService) Create(ctx context.Context, ident auth.Identity, fields ProductFields) (*models.Product, error) {
	name, err := models.NewProductName(fields.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(ident.ID, name, fields.Description, fields.Price, fields.Category)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := domainsvcs.ValidateProductForWrite(product); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

// List returns all products owned by ident, newest first.
func (s *ProductService) List(ctx context.Context, ident auth.Identity) ([]*models.Product, error) {
	products, err := s.repo.FindByUserID(ctx, ident.ID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves one of ident's products using a read-through cache pattern:
//  1. Check Redis cache first (keys are owner-scoped, so a hit implies ownership).
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, ident auth.Identity, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ident.ID, id); err == nil {
			return cachedToProduct(cached), nil
		}
		// Miss and cache errors both fall through to Postgres.
	}

	product, err := s.repo.GetByID(ctx, ident.ID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), productToCached(product))
		}()
	}

	return product, nil
}

// Update validates fields and replaces the mutable fields of ident's product
// in one atomic repository call. The cache entry is invalidated so stale
// field values are never served. Returns the stored product.
func (s *ProductService) Update(ctx context.Context, ident auth.Identity, id uuid.UUID, fields ProductFields) (*models.Product, error) {
	name, err := models.NewProductName(fields.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	product := &models.Product{
		ID:          id,
		UserID:      ident.ID,
		Name:        name,
		Description: fields.Description,
		Price:       fields.Price,
		Category:    fields.Category,
	}
	if err := domainsvcs.ValidateProductForWrite(product); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), ident.ID, id)
	}
	return updated, nil
}

// Delete permanently removes ident's product. Returns ErrProductNotFound if
// no product matches the ownership-conjoined filter.
func (s *ProductService) Delete(ctx context.Context, ident auth.Identity, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ident.ID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), ident.ID, id)
	}
	return nil
}

// Profile composes the caller's durable identity record (password never
// projected) with their full product list. Returns ErrUserNotFound when the
// identity record was deleted after the token was issued.
func (s *ProductService) Profile(ctx context.Context, ident auth.Identity) (*usermodels.User, []*models.Product, error) {
	user, err := s.users.GetByID(ctx, ident.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	products, err := s.repo.FindByUserID(ctx, ident.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list products: %w", err)
	}

	return user, products, nil
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	return &models.Product{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        models.ProductName(c.Name),
		Description: c.Description,
		Price:       c.Price,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func productToCached(p *models.Product) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name.String(),
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
