package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// ProfileResult is the caller's account summary
type ProfileResult struct {
	UserID   uint64
	Username string
	FullName string
	Phone    string
	Email    string
	Balance  string // Formatted with 2 decimal places
}

// StudentResult describes a student's tuition
type StudentResult struct {
	StudentID     string
	StudentName   string
	TuitionAmount string
	IsPaid        bool
	AcademicYear  string
	Semester      string
	DueDate       *time.Time
}

// HistoryEntry is one completed payment in the caller's ledger
type HistoryEntry struct {
	TransactionCode string
	StudentID       string
	StudentName     string
	Amount          string
	BalanceBefore   string
	BalanceAfter    string
	Description     string
	Status          string
	CreatedAt       time.Time
}

// HistoryPage is one page of ledger entries
type HistoryPage struct {
	Entries []HistoryEntry
	Total   int64
	Limit   int
	Offset  int
}

// AccountUseCase answers read-only account and student queries
type AccountUseCase interface {
	// GetProfile returns the caller's profile and balance
	GetProfile(ctx context.Context, caller entity.Caller) (*ProfileResult, error)

	// GetStudent returns tuition information for a student
	GetStudent(ctx context.Context, studentID string) (*StudentResult, error)

	// ListHistory returns the caller's completed payments, newest first
	ListHistory(ctx context.Context, caller entity.Caller, limit, offset int) (*HistoryPage, error)
}
