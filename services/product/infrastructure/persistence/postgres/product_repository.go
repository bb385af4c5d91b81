package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/produtos-api/pkg/database"
	"github.com/ghuser/produtos-api/pkg/events"
	productdomain "github.com/ghuser/produtos-api/services/product/domain"
	domainevents "github.com/ghuser/produtos-api/services/product/domain/events"
	"github.com/ghuser/produtos-api/services/product/domain/models"
)

// Optional text columns are stored as NULL when empty so the wire layer can
// render them as JSON null, matching the legacy contract.
const productColumns = `id, user_id, name, COALESCE(description, ''), price, COALESCE(category, ''), created_at, updated_at`

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
// Every statement conjoins user_id into its WHERE clause; a zero-row result is
// reported as ErrProductNotFound whether the id is unknown or owned by someone
// else.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and event bus. The bus is used to publish
// ProductCreatedEvents inside the insert transaction (outbox pattern).
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the
// same transaction. Returns ErrProductAlreadyExists on unique constraint violations.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const query = `
			INSERT INTO products (id, user_id, name, description, price, category, created_at, updated_at)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)`

		_, err := tx.ExecContext(ctx, query,
			product.ID,
			product.UserID,
			product.Name.String(),
			product.Description,
			product.Price,
			product.Category,
			product.CreatedAt,
			product.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return productdomain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a product by id scoped to the given owner.
// Returns ErrProductNotFound whether the row is absent or owned by another user.
func (r *ProductRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`

	p, err := scanProduct(r.db.DB().QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

// FindByUserID retrieves all products owned by userID, newest first.
func (r *ProductRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.DB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	products := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update replaces the four mutable columns of the row matching
// (product.ID, product.UserID) in one atomic statement and refreshes
// updated_at. All four columns are always written; omitted optional fields
// clear the stored value (replace, not merge). Returns the stored row.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $3, description = NULLIF($4, ''), price = $5, category = NULLIF($6, ''), updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.DB().QueryRowContext(ctx, query,
		product.ID,
		product.UserID,
		product.Name.String(),
		product.Description,
		product.Price,
		product.Category,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete removes a product by id scoped to the given owner.
// Returns ErrProductNotFound when no row matched the ownership-conjoined filter.
func (r *ProductRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return productdomain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ProductID:   product.ID,
		UserID:      product.UserID,
		Name:        product.Name.String(),
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		OccurredAt:  product.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProductCreated, msg)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p    models.Product
		name string
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Name = models.ProductName(name)
	return &p, nil
}
