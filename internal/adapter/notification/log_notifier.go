package notification

import (
	"context"

	"github.com/simaogato/lendflow-backend/internal/domain"
	"go.uber.org/zap"
)

// LogNotifier writes disbursement notices to the log instead of delivering them.
// It is used when no message broker is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyDisbursement implements domain.DisbursementNotifier
func (n *LogNotifier) NotifyDisbursement(ctx context.Context, notice domain.DisbursementNotice) error {
	n.logger.Info("disbursement notice",
		zap.String("recipient", notice.RecipientEmail),
		zap.String("borrower", notice.BorrowerName),
		zap.String("disbursement_number", notice.DisbursementNumber),
		zap.String("amount", notice.Amount.StringFixed(2)),
		zap.Int("installments", len(notice.Schedule)),
	)
	return nil
}
