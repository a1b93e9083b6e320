package notification

import (
	"context"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
)

// LoggingNotifier stands in for SMTP in development. The OTP itself is only
// logged at debug level.
type LoggingNotifier struct {
	logger coreport.Logger
}

// NewLoggingNotifier creates a notifier that writes to the log
func NewLoggingNotifier(logger coreport.Logger) *LoggingNotifier {
	return &LoggingNotifier{logger: logger}
}

// SendOTPEmail logs the delivery
func (n *LoggingNotifier) SendOTPEmail(ctx context.Context, email, code, transactionCode string) bool {
	n.logger.Info("OTP email queued", map[string]any{
		"email":            email,
		"transaction_code": transactionCode,
		"request_id":       coreport.RequestIDFromContext(ctx),
	})
	n.logger.Debug("OTP email content", map[string]any{
		"transaction_code": transactionCode,
		"otp_code":         code,
	})
	return true
}

// SendConfirmationEmail logs the receipt
func (n *LoggingNotifier) SendConfirmationEmail(ctx context.Context, email string, details gateway.ConfirmationDetails) bool {
	n.logger.Info("Confirmation email queued", map[string]any{
		"email":            email,
		"transaction_code": details.TransactionCode,
		"student_id":       details.StudentID,
		"amount":           details.Amount,
		"request_id":       coreport.RequestIDFromContext(ctx),
	})
	return true
}
