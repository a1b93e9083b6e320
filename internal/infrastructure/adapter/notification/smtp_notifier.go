package notification

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
	"github.com/wneessen/go-mail"
)

// defaultSMTPTimeout bounds dialing and every SMTP command when no timeout is configured
const defaultSMTPTimeout = 10 * time.Second

// SMTPConfig holds mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// sendFunc delivers one composed message
type sendFunc func(ctx context.Context, msg *mail.Msg) error

// SMTPNotifier delivers payment emails over SMTP
type SMTPNotifier struct {
	config SMTPConfig
	logger coreport.Logger
	send   sendFunc
}

// NewSMTPNotifier creates a notifier for the given server
func NewSMTPNotifier(config SMTPConfig, logger coreport.Logger) *SMTPNotifier {
	if config.Timeout <= 0 {
		config.Timeout = defaultSMTPTimeout
	}
	n := &SMTPNotifier{
		config: config,
		logger: logger,
	}
	n.send = n.dialAndSend
	return n
}

// SendOTPEmail sends the verification code
func (n *SMTPNotifier) SendOTPEmail(ctx context.Context, email, code, transactionCode string) bool {
	body := fmt.Sprintf(
		"Your verification code for transaction %s is: %s\n\n"+
			"The code expires in a few minutes. Do not share it with anyone.\n",
		transactionCode, code,
	)
	return n.deliver(ctx, email, "Tuition payment verification code", body)
}

// SendConfirmationEmail sends the payment receipt
func (n *SMTPNotifier) SendConfirmationEmail(ctx context.Context, email string, details gateway.ConfirmationDetails) bool {
	var body bytes.Buffer
	fmt.Fprintf(&body, "Dear %s,\n\n", details.PayerName)
	fmt.Fprintf(&body, "Your tuition payment has been completed.\n\n")
	fmt.Fprintf(&body, "Transaction code: %s\n", details.TransactionCode)
	fmt.Fprintf(&body, "Student: %s (%s)\n", details.StudentName, details.StudentID)
	fmt.Fprintf(&body, "Amount: %s\n", details.Amount)
	fmt.Fprintf(&body, "Remaining balance: %s\n", details.NewBalance)
	fmt.Fprintf(&body, "Completed at: %s\n", details.CompletedAt.UTC().Format(time.RFC1123))

	return n.deliver(ctx, email, "Tuition payment confirmation", body.String())
}

func (n *SMTPNotifier) deliver(ctx context.Context, to, subject, body string) bool {
	if strings.ContainsAny(to, "\r\n") {
		n.logger.Error("Refusing to send email to malformed address", nil)
		return false
	}

	msg, err := n.compose(to, subject, body)
	if err != nil {
		n.logger.Error("Failed to compose email", map[string]any{
			"subject": subject,
			"error":   err.Error(),
		})
		return false
	}

	if err := n.send(ctx, msg); err != nil {
		n.logger.Error("Failed to send email", map[string]any{
			"subject": subject,
			"error":   err.Error(),
		})
		return false
	}

	n.logger.Debug("Email sent", map[string]any{"subject": subject})
	return true
}

func (n *SMTPNotifier) compose(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithEncoding(mail.NoEncoding))
	if err := msg.From(n.config.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

// newClient builds a client bounded by the configured timeout
func (n *SMTPNotifier) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(n.config.Port),
		mail.WithTimeout(n.config.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if n.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.config.Username),
			mail.WithPassword(n.config.Password),
		)
	}
	return mail.NewClient(n.config.Host, opts...)
}

// dialAndSend opens a connection per message; the ctx governs the dial and the timeout every command after it
func (n *SMTPNotifier) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := n.newClient()
	if err != nil {
		return fmt.Errorf("configuring smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
