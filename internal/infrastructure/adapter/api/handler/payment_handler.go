package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the tuition payment flow
type PaymentHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

// Initiate handles POST /payments/initiate
func (h *PaymentHandler) Initiate(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.Initiate(c.Request.Context(), caller, usecase.InitiateRequest{
		StudentID: req.StudentID,
	})
	if err != nil {
		respondError(c, h.logger, "initiate", err)
		return
	}

	c.JSON(http.StatusOK, dto.InitiatePaymentResponse{
		TransactionID:   result.TransactionID,
		TransactionCode: result.TransactionCode,
		StudentID:       result.StudentID,
		StudentName:     result.StudentName,
		Amount:          result.Amount,
		Status:          string(result.Status),
	})
}

// SendOTP handles POST /payments/send-otp
func (h *PaymentHandler) SendOTP(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.TransactionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.SendOTP(c.Request.Context(), caller, req.TransactionID)
	if err != nil {
		respondError(c, h.logger, "send_otp", err)
		return
	}

	c.JSON(http.StatusOK, dto.SendOTPResponse{
		OTPSent:   result.OTPSent,
		ExpiresIn: result.ExpiresIn,
	})
}

// VerifyOTP handles POST /payments/verify-otp
func (h *PaymentHandler) VerifyOTP(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.VerifyOTP(c.Request.Context(), caller, usecase.VerifyOTPRequest{
		TransactionID: req.TransactionID,
		OTPCode:       req.OTPCode,
	})
	if err != nil {
		respondError(c, h.logger, "verify_otp", err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyOTPResponse{
		Verified:          result.Verified,
		TransactionStatus: string(result.TransactionStatus),
	})
}

// Confirm handles POST /payments/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.TransactionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.Confirm(c.Request.Context(), caller, req.TransactionID)
	if err != nil {
		respondError(c, h.logger, "confirm", err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Success:    result.Success,
		NewBalance: result.NewBalance,
		Receipt: dto.ReceiptResponse{
			TransactionCode: result.Receipt.TransactionCode,
			StudentID:       result.Receipt.StudentID,
			Amount:          result.Receipt.Amount,
			CompletedAt:     result.Receipt.CompletedAt,
		},
	})
}

// CheckActive handles GET /payments/active
func (h *PaymentHandler) CheckActive(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	result, err := h.payments.CheckActive(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, "check_active", err)
		return
	}

	resp := dto.CheckActiveResponse{HasActiveTransaction: result.HasActiveTransaction}
	if tx := result.Transaction; tx != nil {
		resp.Transaction = &dto.ActiveTransactionResponse{
			ID:          tx.ID,
			Code:        tx.Code,
			Status:      string(tx.Status),
			StudentID:   tx.StudentID,
			StudentName: tx.StudentName,
			Amount:      tx.Amount,
			LockedAt:    tx.LockedAt,
			ExpiresAt:   tx.ExpiresAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CancelActive handles POST /payments/cancel-active
func (h *PaymentHandler) CancelActive(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	result, err := h.payments.CancelActive(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, "cancel_active", err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelActiveResponse{
		Success:       result.Success,
		Message:       result.Message,
		TransactionID: result.TransactionID,
	})
}

// OTPStatus handles GET /payments/otp-status/:transactionId
func (h *PaymentHandler) OTPStatus(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseUint(c.Param("transactionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTransactionID),
			Message: "Invalid transaction ID format",
		})
		return
	}

	result, err := h.payments.OTPStatus(c.Request.Context(), caller, transactionID)
	if err != nil {
		respondError(c, h.logger, "otp_status", err)
		return
	}

	c.JSON(http.StatusOK, dto.OTPStatusResponse{
		HasOTP:           result.HasOTP,
		RemainingSeconds: result.RemainingSeconds,
		ExpiresAt:        result.ExpiresAt,
		IsExpired:        result.IsExpired,
	})
}
