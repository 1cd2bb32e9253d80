package trust

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marketloop/marketplace/pkg/common"
)

// Repository handles feedback persistence
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new feedback repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const feedbackColumns = `id, item_id, order_id, buyer_id, seller_id, rating,
	category_ratings, is_genuine, comment, verified, helpful_count,
	buyer_name, item_title, created_at`

// CreateFeedback inserts a feedback event. The unique index on
// (item_id, buyer_id) rejects duplicate feedback for the same purchase.
func (r *Repository) CreateFeedback(ctx context.Context, event *FeedbackEvent) error {
	query := `
		INSERT INTO marketplace_feedback (
			id, item_id, order_id, buyer_id, seller_id, rating,
			category_ratings, is_genuine, comment, verified, helpful_count,
			buyer_name, item_title, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		event.ID, event.ItemID, event.OrderID, event.BuyerID, event.SellerID,
		event.Rating, event.CategoryRatings, event.IsGenuine, event.Comment,
		event.Verified, event.HelpfulCount, event.BuyerName, event.ItemTitle,
		event.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.NewConflictError("feedback already exists for this item and buyer")
		}
		return err
	}
	return nil
}

// GetFeedbackByID returns a single feedback event
func (r *Repository) GetFeedbackByID(ctx context.Context, feedbackID uuid.UUID) (*FeedbackEvent, error) {
	query := `SELECT ` + feedbackColumns + ` FROM marketplace_feedback WHERE id = $1`

	var event FeedbackEvent
	err := r.db.QueryRow(ctx, query, feedbackID).Scan(
		&event.ID, &event.ItemID, &event.OrderID, &event.BuyerID, &event.SellerID,
		&event.Rating, &event.CategoryRatings, &event.IsGenuine, &event.Comment,
		&event.Verified, &event.HelpfulCount, &event.BuyerName, &event.ItemTitle,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("feedback not found")
		}
		return nil, err
	}
	return &event, nil
}

// GetFeedbackBySeller returns every feedback event for a seller, verified or
// not. The trust aggregator filters to verified events itself so the snapshot
// is always computed from the full, fresh event set.
func (r *Repository) GetFeedbackBySeller(ctx context.Context, sellerID uuid.UUID) ([]FeedbackEvent, error) {
	query := `SELECT ` + feedbackColumns + `
		FROM marketplace_feedback
		WHERE seller_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// GetVerifiedReviews returns a page of verified reviews plus the total count
func (r *Repository) GetVerifiedReviews(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]FeedbackEvent, int, error) {
	query := `SELECT ` + feedbackColumns + `
		FROM marketplace_feedback
		WHERE seller_id = $1 AND verified = true
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, sellerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews, err := scanFeedbackRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM marketplace_feedback WHERE seller_id = $1 AND verified = true`
	if err := r.db.QueryRow(ctx, countQuery, sellerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// MarkVerified flips the verified flag false -> true exactly once. Returns
// false when the event was already verified.
func (r *Repository) MarkVerified(ctx context.Context, feedbackID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE marketplace_feedback SET verified = true WHERE id = $1 AND verified = false`,
		feedbackID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementHelpful bumps the helpful counter. The counter only ever grows.
func (r *Repository) IncrementHelpful(ctx context.Context, feedbackID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE marketplace_feedback SET helpful_count = helpful_count + 1 WHERE id = $1`,
		feedbackID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.NewNotFoundError("feedback not found")
	}
	return nil
}

func scanFeedbackRows(rows pgx.Rows) ([]FeedbackEvent, error) {
	var events []FeedbackEvent
	for rows.Next() {
		var event FeedbackEvent
		if err := rows.Scan(
			&event.ID, &event.ItemID, &event.OrderID, &event.BuyerID, &event.SellerID,
			&event.Rating, &event.CategoryRatings, &event.IsGenuine, &event.Comment,
			&event.Verified, &event.HelpfulCount, &event.BuyerName, &event.ItemTitle,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
