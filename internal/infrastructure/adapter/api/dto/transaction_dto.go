package dto

import "time"

// HistoryEntryResponse is one completed payment
type HistoryEntryResponse struct {
	TransactionCode string    `json:"transactionCode"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	Amount          string    `json:"amount"`
	BalanceBefore   string    `json:"balanceBefore"`
	BalanceAfter    string    `json:"balanceAfter"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HistoryResponse is one page of the caller's payments
type HistoryResponse struct {
	Transactions []HistoryEntryResponse `json:"transactions"`
	Total        int64                  `json:"total"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
}
