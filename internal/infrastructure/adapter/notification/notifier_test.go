package notification

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func newTestNotifier(err error) (*SMTPNotifier, *[]*mail.Msg) {
	var sent []*mail.Msg
	n := NewSMTPNotifier(SMTPConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "payments@example.com",
	}, logger.NewNoopLogger())
	n.send = func(_ context.Context, msg *mail.Msg) error {
		sent = append(sent, msg)
		return err
	}
	return n, &sent
}

func rendered(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendOTPEmail(t *testing.T) {
	n, sent := newTestNotifier(nil)

	ok := n.SendOTPEmail(context.Background(), "payer@example.com", "123456", "TXN1")
	require.True(t, ok)
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	sender, err := msg.GetSender(false)
	require.NoError(t, err)
	assert.Equal(t, "payments@example.com", sender)

	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"payer@example.com"}, recipients)
	assert.Equal(t, []string{"Tuition payment verification code"}, msg.GetGenHeader(mail.HeaderSubject))

	body := rendered(t, msg)
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "TXN1")
}

func TestSendConfirmationEmail(t *testing.T) {
	n, sent := newTestNotifier(nil)

	ok := n.SendConfirmationEmail(context.Background(), "payer@example.com", gateway.ConfirmationDetails{
		PayerName:       "Payer One",
		TransactionCode: "TXN2",
		StudentID:       "S1",
		StudentName:     "Student One",
		Amount:          "5000000.00",
		NewBalance:      "1000000.00",
		CompletedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.True(t, ok)
	body := rendered(t, (*sent)[0])
	assert.Contains(t, body, "Remaining balance: 1000000.00")
	assert.Contains(t, body, "Student One (S1)")
}

func TestSendFailure(t *testing.T) {
	n, _ := newTestNotifier(errors.New("535 authentication failed"))
	assert.False(t, n.SendOTPEmail(context.Background(), "payer@example.com", "123456", "TXN1"))
}

func TestRejectsHeaderInjection(t *testing.T) {
	n, sent := newTestNotifier(nil)
	assert.False(t, n.SendOTPEmail(context.Background(), "a@b.c\r\nBcc: x@y.z", "123456", "TXN1"))
	assert.Empty(t, *sent)
}

func TestRejectsInvalidSender(t *testing.T) {
	n, sent := newTestNotifier(nil)
	n.config.From = "not an address"
	assert.False(t, n.SendOTPEmail(context.Background(), "payer@example.com", "123456", "TXN1"))
	assert.Empty(t, *sent)
}

func TestSMTPClientOptions(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     2525,
		Username: "mailer",
		Password: "secret",
	}, logger.NewNoopLogger())
	assert.Equal(t, defaultSMTPTimeout, n.config.Timeout)

	client, err := n.newClient()
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:2525", client.ServerAddr())

	n.config.Host = ""
	_, err = n.newClient()
	assert.Error(t, err)
}

func TestSendHonoursContext(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{
		Host: "127.0.0.1",
		Port: 25,
		From: "payments@example.com",
	}, logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, n.SendOTPEmail(ctx, "payer@example.com", "123456", "TXN1"))
}

func TestSendTimesOutOnSilentServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	// Accept connections but never send a greeting
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	addr := listener.Addr().(*net.TCPAddr)
	n := NewSMTPNotifier(SMTPConfig{
		Host:    "127.0.0.1",
		Port:    addr.Port,
		From:    "payments@example.com",
		Timeout: 200 * time.Millisecond,
	}, logger.NewNoopLogger())

	start := time.Now()
	assert.False(t, n.SendOTPEmail(context.Background(), "payer@example.com", "123456", "TXN1"))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLoggingNotifier(t *testing.T) {
	n := NewLoggingNotifier(logger.NewNoopLogger())
	assert.True(t, n.SendOTPEmail(context.Background(), "payer@example.com", "123456", "TXN1"))
	assert.True(t, n.SendConfirmationEmail(context.Background(), "payer@example.com", gateway.ConfirmationDetails{}))
}
