package fraud

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marketloop/marketplace/pkg/common"
)

// Repository fetches the listing and seller attributes the detector needs
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new fraud repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetListingContent returns the content snapshot for a listing
func (r *Repository) GetListingContent(ctx context.Context, listingID uuid.UUID) (*ListingContent, error) {
	query := `
		SELECT l.id, l.title, COALESCE(l.description, ''), l.price,
		       COALESCE(l.original_price, 0),
		       COALESCE(array_length(l.images, 1), 0),
		       u.created_at
		FROM marketplace_listings l
		JOIN users u ON u.id = l.seller_id
		WHERE l.id = $1`

	var content ListingContent
	err := r.db.QueryRow(ctx, query, listingID).Scan(
		&content.ID, &content.Title, &content.Description, &content.Price,
		&content.OriginalPrice, &content.ImageCount, &content.SellerCreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("listing not found")
		}
		return nil, err
	}
	return &content, nil
}
