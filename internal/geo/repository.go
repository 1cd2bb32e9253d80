package geo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository fetches grouping candidates from Postgres
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new geo repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetActiveSellers returns active sellers with their postal codes. Sellers
// without a postal code are included; the matcher buckets them as
// different-region.
func (r *Repository) GetActiveSellers(ctx context.Context, excludeUserID uuid.UUID) ([]Candidate, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.postal_code, '')
		FROM users u
		WHERE u.is_active = true
		  AND u.role = 'seller'
		  AND u.id <> $1
		ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var candidate Candidate
		if err := rows.Scan(&candidate.UserID, &candidate.Name, &candidate.Pincode); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}
