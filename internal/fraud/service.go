package fraud

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var fraudReportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fraud_reports_total",
		Help: "Total number of fraud reports generated, by risk level",
	},
	[]string{"risk_level"},
)

// Service handles the listing-detail fraud analysis path
type Service struct {
	repo     RepositoryInterface
	detector *Detector
}

// NewService creates a new fraud service
func NewService(repo RepositoryInterface, detector *Detector) *Service {
	return &Service{repo: repo, detector: detector}
}

// AnalyzeListing evaluates a listing's fraud signals and scores them into a
// report. A report is always produced, even when nothing matched.
func (s *Service) AnalyzeListing(ctx context.Context, listingID uuid.UUID) (*Report, error) {
	content, err := s.repo.GetListingContent(ctx, listingID)
	if err != nil {
		return nil, err
	}

	signals := s.detector.Evaluate(*content)
	report := Score(listingID, signals)

	fraudReportsTotal.WithLabelValues(report.RiskLevel.String()).Inc()
	if report.RiskLevel >= RiskHigh {
		logger.WithContext(ctx).Warn("high-risk listing detected",
			zap.String("listing_id", listingID.String()),
			zap.Int("suspicion_score", report.SuspicionScore),
			zap.String("risk_level", report.RiskLevel.String()),
		)
	}

	return &report, nil
}

// ScoreSignals scores a set of signals already evaluated by a collaborator
func (s *Service) ScoreSignals(listingID uuid.UUID, signals []Signal) Report {
	return Score(listingID, signals)
}
