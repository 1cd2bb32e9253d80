package recommend

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marketloop/marketplace/internal/trust"
	redisClient "github.com/marketloop/marketplace/pkg/redis"
)

const (
	viewerDistancePrefix = "distance:viewer:"
	viewerDistanceTTL    = 10 * time.Minute
)

// Repository fetches listing snapshots from Postgres and the
// collaborator-precomputed viewer distances from Redis.
type Repository struct {
	db    *pgxpool.Pool
	cache *redisClient.Client
}

// NewRepository creates a new recommend repository
func NewRepository(db *pgxpool.Pool, cache *redisClient.Client) *Repository {
	return &Repository{db: db, cache: cache}
}

// GetActiveListings returns active listings, optionally filtered by category,
// each carrying the seller's stored rating snapshot and trust tier.
func (r *Repository) GetActiveListings(ctx context.Context, category string) ([]Listing, error) {
	query := `
		SELECT l.id, l.title, l.category, l.price, l.seller_id,
		       COALESCE(s.average_rating, 0),
		       COALESCE(s.trust_tier, 'new')
		FROM marketplace_listings l
		LEFT JOIN seller_stats s ON s.seller_id = l.seller_id
		WHERE l.status = 'active' AND ($1 = '' OR l.category = $1)
		ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var listing Listing
		var tierName string
		if err := rows.Scan(
			&listing.ID, &listing.Title, &listing.Category, &listing.Price,
			&listing.SellerID, &listing.SellerRating, &tierName,
		); err != nil {
			return nil, err
		}
		listing.SellerTier = trust.ParseTier(tierName)
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// GetViewerDistances reads the precomputed listing distances for a viewer
// from the Redis snapshot hash. Listings absent from the hash simply have no
// entry in the returned map.
func (r *Repository) GetViewerDistances(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]float64, error) {
	distances := make(map[uuid.UUID]float64)
	if viewerID == uuid.Nil {
		return distances, nil
	}

	key := fmt.Sprintf("%s%s", viewerDistancePrefix, viewerID.String())
	fields, err := r.cache.HashGetAll(ctx, key)
	if err != nil {
		return nil, err
	}

	for field, value := range fields {
		listingID, err := uuid.Parse(field)
		if err != nil {
			continue
		}
		distance, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		distances[listingID] = distance
	}
	return distances, nil
}

// StoreViewerDistance records a precomputed viewer-to-listing distance.
// Called by the distance collaborator, not by the scoring path.
func (r *Repository) StoreViewerDistance(ctx context.Context, viewerID, listingID uuid.UUID, distance float64) error {
	key := fmt.Sprintf("%s%s", viewerDistancePrefix, viewerID.String())
	if err := r.cache.HSet(ctx, key, listingID.String(), strconv.FormatFloat(distance, 'f', -1, 64)).Err(); err != nil {
		return err
	}
	return r.cache.Expire(ctx, key, viewerDistanceTTL).Err()
}
