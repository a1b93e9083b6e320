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

// UserHandler handles account and student lookups
type UserHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	profile, err := h.accounts.GetProfile(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, "get_profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:   profile.UserID,
		Username: profile.Username,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		Email:    profile.Email,
		Balance:  profile.Balance,
	})
}

// GetStudent handles GET /students/:studentId
func (h *UserHandler) GetStudent(c *gin.Context) {
	if _, ok := callerOrAbort(c); !ok {
		return
	}

	student, err := h.accounts.GetStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		respondError(c, h.logger, "get_student", err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentResponse{
		StudentID:     student.StudentID,
		StudentName:   student.StudentName,
		TuitionAmount: student.TuitionAmount,
		IsPaid:        student.IsPaid,
		AcademicYear:  student.AcademicYear,
		Semester:      student.Semester,
		DueDate:       student.DueDate,
	})
}

// GetHistory handles GET /transactions/history
func (h *UserHandler) GetHistory(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		respondError(c, h.logger, "get_history", domainerr.NewValidationError("limit", "must be an integer"))
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		respondError(c, h.logger, "get_history", domainerr.NewValidationError("offset", "must be an integer"))
		return
	}

	page, err := h.accounts.ListHistory(c.Request.Context(), caller, limit, offset)
	if err != nil {
		respondError(c, h.logger, "get_history", err)
		return
	}

	resp := dto.HistoryResponse{
		Transactions: make([]dto.HistoryEntryResponse, 0, len(page.Entries)),
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	for _, entry := range page.Entries {
		resp.Transactions = append(resp.Transactions, dto.HistoryEntryResponse{
			TransactionCode: entry.TransactionCode,
			StudentID:       entry.StudentID,
			StudentName:     entry.StudentName,
			Amount:          entry.Amount,
			BalanceBefore:   entry.BalanceBefore,
			BalanceAfter:    entry.BalanceAfter,
			Description:     entry.Description,
			Status:          entry.Status,
			CreatedAt:       entry.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// queryInt reads an optional integer query parameter; absent means zero
func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
