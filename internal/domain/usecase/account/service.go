package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/usecase"
)

// History page bounds
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Service answers read-only account queries
type Service struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewService creates a new account service
func NewService(uow persistence.UnitOfWork, logger coreport.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

var _ usecase.AccountUseCase = (*Service)(nil)

// GetProfile returns the caller's profile and balance
func (s *Service) GetProfile(ctx context.Context, caller entity.Caller) (*usecase.ProfileResult, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileResult{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Phone:    user.Phone,
		Email:    user.Email,
		Balance:  user.GetBalance(),
	}, nil
}

// GetStudent returns tuition information for a student
func (s *Service) GetStudent(ctx context.Context, studentID string) (*usecase.StudentResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, errs.ErrInvalidStudentID
	}

	student, err := s.uow.GetStudentRepository(ctx).GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &usecase.StudentResult{
		StudentID:     student.StudentID,
		StudentName:   student.FullName,
		TuitionAmount: student.GetTuitionAmount(),
		IsPaid:        student.IsPaid,
		AcademicYear:  student.AcademicYear,
		Semester:      student.Semester,
		DueDate:       student.DueDate,
	}, nil
}

// ListHistory returns the caller's completed payments, newest first.
// limit is clamped to 1..100 and a negative offset is treated as 0.
func (s *Service) ListHistory(ctx context.Context, caller entity.Caller, limit, offset int) (*usecase.HistoryPage, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.uow.GetHistoryRepository(ctx).ListByUser(ctx, caller.UserID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list payment history", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	entries := make([]usecase.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, usecase.HistoryEntry{
			TransactionCode: row.TransactionCode,
			StudentID:       row.StudentID,
			StudentName:     row.StudentName,
			Amount:          entity.AmountInCentsToString(row.Amount),
			BalanceBefore:   entity.AmountInCentsToString(row.BalanceBefore),
			BalanceAfter:    entity.AmountInCentsToString(row.BalanceAfter),
			Description:     row.Description,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
		})
	}

	return &usecase.HistoryPage{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// ClampLimit keeps a page size within 1..MaxHistoryLimit, using the default for 0
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultHistoryLimit
	case limit < 1:
		return 1
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
