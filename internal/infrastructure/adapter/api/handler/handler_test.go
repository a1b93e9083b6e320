package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/tuition-payment/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testCaller = entity.Caller{UserID: 1, Email: "payer@example.com"}
	testNow    = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakePool struct{ fakePinger }

func (fakePool) PoolSaturation() float64 { return 0.25 }

type testServer struct {
	router   *gin.Engine
	payments *usecasemocks.MockPaymentUseCase
	accounts *usecasemocks.MockAccountUseCase
}

func newTestServer(t *testing.T, caller *entity.Caller, db handler.Pinger) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	payments := usecasemocks.NewMockPaymentUseCase(t)
	accounts := usecasemocks.NewMockAccountUseCase(t)

	fakeAuth := func(c *gin.Context) {
		if caller != nil {
			middleware.SetCaller(c, *caller)
		}
		c.Next()
	}

	router := gin.New()
	routes.SetupMiddlewares(router, log)
	routes.SetupRoutes(router, routes.Handlers{
		Payment: handler.NewPaymentHandler(payments, log),
		User:    handler.NewUserHandler(accounts, log),
		Health:  handler.NewHealthHandler(db, timeprovider.NewManualTimeProvider(testNow), log),
	}, fakeAuth)

	return &testServer{router: router, payments: payments, accounts: accounts}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status, code int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"message":%q}`, code, message), w.Body.String())
}

func TestInitiate(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().
		Initiate(mock.Anything, testCaller, usecase.InitiateRequest{StudentID: "S1"}).
		Return(&usecase.InitiateResult{
			TransactionID:   10,
			TransactionCode: "TXN-ABC",
			StudentID:       "S1",
			StudentName:     "Student One",
			Amount:          "5000000.00",
			Status:          entity.StatusPending,
		}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/initiate", map[string]any{"studentId": "S1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"transactionId": 10,
		"transactionCode": "TXN-ABC",
		"studentId": "S1",
		"studentName": "Student One",
		"amount": "5000000.00",
		"status": "pending"
	}`, w.Body.String())
}

func TestInitiateErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    int
		message string
	}{
		{"NotFound", domainerr.ErrStudentNotFound, http.StatusNotFound, 4041, "student not found"},
		{"AlreadyPaid", domainerr.ErrAlreadyPaid, http.StatusBadRequest, 4002, "tuition already paid"},
		{"Insufficient", domainerr.NewInsufficientBalanceError(1, "10.00", "5.00"), http.StatusBadRequest, 4001, "insufficient balance"},
		{"Conflict", domainerr.NewLockConflictError("student_tuition", "S1", 3), http.StatusConflict, 4090,
			"resource is locked by another transaction: student_tuition:S1 is reserved by another transaction"},
		{"Internal", errors.New("driver: bad connection"), http.StatusInternalServerError, 5000, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, &testCaller, nil)
			s.payments.EXPECT().Initiate(mock.Anything, testCaller, mock.Anything).Return(nil, tc.err)

			w := s.do(t, http.MethodPost, "/api/v1/payments/initiate", map[string]any{"studentId": "S1"})
			assertError(t, w, tc.status, tc.code, tc.message)
		})
	}
}

func TestInitiateBadBody(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/initiate", "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(4000), decode(t, w)["code"])

	w = s.do(t, http.MethodPost, "/api/v1/payments/initiate", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOTP(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().SendOTP(mock.Anything, testCaller, uint64(10)).
		Return(&usecase.SendOTPResult{OTPSent: true, ExpiresIn: 300}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/send-otp", map[string]any{"transactionId": 10})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"otpSent":true,"expiresIn":300}`, w.Body.String())
}

func TestSendOTPDeliveryFailure(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().SendOTP(mock.Anything, testCaller, uint64(10)).
		Return(nil, domainerr.ErrNotificationFailed)

	w := s.do(t, http.MethodPost, "/api/v1/payments/send-otp", map[string]any{"transactionId": 10})
	assertError(t, w, http.StatusInternalServerError, 5001, "failed to send notification")
}

func TestVerifyOTP(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().
		VerifyOTP(mock.Anything, testCaller, usecase.VerifyOTPRequest{TransactionID: 10, OTPCode: "123456"}).
		Return(&usecase.VerifyOTPResult{Verified: true, TransactionStatus: entity.StatusOTPVerified}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/verify-otp", map[string]any{"transactionId": 10, "otpCode": "123456"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"verified":true,"transactionStatus":"otp_verified"}`, w.Body.String())
}

func TestVerifyOTPRejectsMalformedCode(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)

	for _, code := range []string{"12345", "1234567", "12a456"} {
		w := s.do(t, http.MethodPost, "/api/v1/payments/verify-otp", map[string]any{"transactionId": 10, "otpCode": code})
		assert.Equal(t, http.StatusBadRequest, w.Code, code)
		assert.Equal(t, float64(4000), decode(t, w)["code"])
	}
}

func TestVerifyOTPErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    int
		message string
	}{
		{"Invalid", domainerr.ErrInvalidOrExpiredOTP, http.StatusBadRequest, 4003, "invalid or expired OTP"},
		{"TooMany", domainerr.NewTransactionError(10, 1, "failed", "verify_otp", domainerr.ErrTooManyAttempts), http.StatusBadRequest, 4004, "too many failed attempts"},
		{"LockExpired", domainerr.ErrLockExpired, http.StatusConflict, 4092, "transaction session expired, please start again"},
		{"State", domainerr.NewTransactionError(10, 1, "pending", "verify_otp", domainerr.ErrInvalidState), http.StatusConflict, 4091, "invalid transaction state"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, &testCaller, nil)
			s.payments.EXPECT().VerifyOTP(mock.Anything, testCaller, mock.Anything).Return(nil, tc.err)

			w := s.do(t, http.MethodPost, "/api/v1/payments/verify-otp", map[string]any{"transactionId": 10, "otpCode": "000000"})
			assertError(t, w, tc.status, tc.code, tc.message)
		})
	}
}

func TestConfirm(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().Confirm(mock.Anything, testCaller, uint64(10)).
		Return(&usecase.ConfirmResult{
			Success:    true,
			NewBalance: "1000000.00",
			Receipt: usecase.Receipt{
				TransactionCode: "TXN-ABC",
				StudentID:       "S1",
				Amount:          "5000000.00",
				CompletedAt:     testNow,
			},
		}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/confirm", map[string]any{"transactionId": 10})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"newBalance": "1000000.00",
		"receipt": {
			"transactionCode": "TXN-ABC",
			"studentId": "S1",
			"amount": "5000000.00",
			"completedAt": "2025-03-01T09:00:00Z"
		}
	}`, w.Body.String())
}

func TestConfirmMissingTransactionID(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/confirm", map[string]any{"transactionId": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckActive(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		s := newTestServer(t, &testCaller, nil)
		s.payments.EXPECT().CheckActive(mock.Anything, testCaller).
			Return(&usecase.ActiveTransactionResult{}, nil)

		w := s.do(t, http.MethodGet, "/api/v1/payments/active", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hasActiveTransaction":false}`, w.Body.String())
	})

	t.Run("active", func(t *testing.T) {
		s := newTestServer(t, &testCaller, nil)
		s.payments.EXPECT().CheckActive(mock.Anything, testCaller).
			Return(&usecase.ActiveTransactionResult{
				HasActiveTransaction: true,
				Transaction: &usecase.ActiveTransaction{
					ID:          10,
					Code:        "TXN-ABC",
					Status:      entity.StatusOTPSent,
					StudentID:   "S1",
					StudentName: "Student One",
					Amount:      "5000000.00",
					LockedAt:    testNow,
					ExpiresAt:   testNow.Add(10 * time.Minute),
				},
			}, nil)

		w := s.do(t, http.MethodGet, "/api/v1/payments/active", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["hasActiveTransaction"])
		tx := body["transaction"].(map[string]any)
		assert.Equal(t, "otp_sent", tx["status"])
		assert.Equal(t, "2025-03-01T09:10:00Z", tx["expiresAt"])
	})
}

func TestCancelActive(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.payments.EXPECT().CancelActive(mock.Anything, testCaller).
		Return(&usecase.CancelResult{Success: true, Message: "Transaction cancelled successfully", TransactionID: 10}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/payments/cancel-active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Transaction cancelled successfully","transactionId":10}`, w.Body.String())
}

func TestOTPStatus(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	expiresAt := testNow.Add(5 * time.Minute)
	s.payments.EXPECT().OTPStatus(mock.Anything, testCaller, uint64(10)).
		Return(&usecase.OTPStatusResult{HasOTP: true, RemainingSeconds: 300, ExpiresAt: &expiresAt}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/payments/otp-status/10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasOtp":true,"remainingSeconds":300,"expiresAt":"2025-03-01T09:05:00Z","isExpired":false}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/payments/otp-status/abc", nil)
	assertError(t, w, http.StatusBadRequest, 4000, "Invalid transaction ID format")
}

func TestRequiresCaller(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.do(t, http.MethodGet, "/api/v1/payments/active", nil)
	assertError(t, w, http.StatusUnauthorized, 4010, "Authentication required")

	w = s.do(t, http.MethodGet, "/api/v1/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfile(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.accounts.EXPECT().GetProfile(mock.Anything, testCaller).
		Return(&usecase.ProfileResult{
			UserID:   1,
			Username: "user1",
			FullName: "Payer One",
			Email:    "payer@example.com",
			Balance:  "6000000.00",
		}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":1,"username":"user1","fullName":"Payer One","email":"payer@example.com","balance":"6000000.00"}`, w.Body.String())
}

func TestGetStudent(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.accounts.EXPECT().GetStudent(mock.Anything, "S1").
		Return(&usecase.StudentResult{StudentID: "S1", StudentName: "Student One", TuitionAmount: "5000000.00"}, nil)
	s.accounts.EXPECT().GetStudent(mock.Anything, "S9").Return(nil, domainerr.ErrStudentNotFound)

	w := s.do(t, http.MethodGet, "/api/v1/students/S1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5000000.00", decode(t, w)["tuitionAmount"])

	w = s.do(t, http.MethodGet, "/api/v1/students/S9", nil)
	assertError(t, w, http.StatusNotFound, 4041, "student not found")
}

func TestGetHistory(t *testing.T) {
	s := newTestServer(t, &testCaller, nil)
	s.accounts.EXPECT().ListHistory(mock.Anything, testCaller, 5, 10).
		Return(&usecase.HistoryPage{
			Entries: []usecase.HistoryEntry{{
				TransactionCode: "TXN-ABC",
				StudentID:       "S1",
				StudentName:     "Student One",
				Amount:          "5000000.00",
				BalanceBefore:   "6000000.00",
				BalanceAfter:    "1000000.00",
				Status:          "success",
				CreatedAt:       testNow,
			}},
			Total:  11,
			Limit:  5,
			Offset: 10,
		}, nil)
	s.accounts.EXPECT().ListHistory(mock.Anything, testCaller, 0, 0).
		Return(&usecase.HistoryPage{Limit: 20}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/transactions/history?limit=5&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(11), body["total"])
	assert.Len(t, body["transactions"], 1)

	w = s.do(t, http.MethodGet, "/api/v1/transactions/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["transactions"])

	w = s.do(t, http.MethodGet, "/api/v1/transactions/history?limit=ten", nil)
	assertError(t, w, http.StatusBadRequest, 4000, "invalid limit: must be an integer")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, fakePinger{})
	w := s.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
	assert.NotContains(t, decode(t, w), "poolSaturation")

	s = newTestServer(t, nil, fakePool{})
	w = s.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.25, decode(t, w)["poolSaturation"])

	s = newTestServer(t, nil, fakePinger{err: errors.New("connection refused")})
	w = s.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode(t, w)["status"])
}
