package repositories

import (
	"context"
	"errors"
	"fmt"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "all"

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	ListActive(ctx context.Context, category string) ([]*models.ItemWithOwner, error)
	GetPrice(ctx context.Context, id uuid.UUID) (float64, error)
}

type itemRepo struct {
	db Database
}

func NewItemRepo(db Database) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, user_id, title, description, category_id, price, period, location, condition, image_url, features, rules, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.UserID, item.Title, item.Description, item.CategoryID, item.Price,
		item.Period, item.Location, item.Condition, item.ImageURL, item.Features, item.Rules)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// ListActive returns active listings with the owner's public profile fields
// joined in, newest first. An empty or "all" category means no filter.
func (r *itemRepo) ListActive(ctx context.Context, category string) ([]*models.ItemWithOwner, error) {
	query := `
		SELECT i.id, i.user_id, i.title, i.description, i.category_id, i.price, i.period,
		       i.location, i.condition, i.image_url, i.features, i.rules, i.is_active, i.created_at,
		       u.full_name AS owner, u.rating AS owner_rating, u.reviews_count AS owner_reviews
		FROM items i
		JOIN users u ON i.user_id = u.id
		WHERE i.is_active = true
	`
	args := []interface{}{}
	if category != "" && category != CategoryAll {
		query += ` AND i.category_id = $1`
		args = append(args, category)
	}
	query += ` ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*models.ItemWithOwner
	for rows.Next() {
		item := &models.ItemWithOwner{}
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.CategoryID, &item.Price,
			&item.Period, &item.Location, &item.Condition, &item.ImageURL, &item.Features, &item.Rules,
			&item.IsActive, &item.CreatedAt,
			&item.Owner, &item.OwnerRating, &item.OwnerReviews,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) GetPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	var price float64
	err := r.db.QueryRow(ctx, `SELECT price FROM items WHERE id = $1`, id).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrItemNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get item price: %w", err)
	}
	return price, nil
}
