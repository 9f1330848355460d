package dto

import (
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest defines one debit or credit line of a new entry.
type CreateEntryLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	LineType    domain.LineType `json:"lineType" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"` // Optional
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time                `json:"entryDate" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Reference   string                   `json:"reference"` // Optional external document reference
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID         string          `json:"lineID"`
	AccountID      string          `json:"accountID"`
	LineType       domain.LineType `json:"lineType"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID           string              `json:"entryID"`
	EntryNumber       string              `json:"entryNumber"`
	EntryDate         time.Time           `json:"entryDate"`
	Description       string              `json:"description"`
	Reference         string              `json:"reference"`
	Status            domain.EntryStatus  `json:"status"`
	TotalDebit        decimal.Decimal     `json:"totalDebit"`
	TotalCredit       decimal.Decimal     `json:"totalCredit"`
	ReversalOfEntryID *string             `json:"reversalOfEntryID,omitempty"`
	Lines             []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of journal entries.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ListLinesParams holds parameters for listing lines of one account.
type ListLinesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListLinesResponse wraps a page of journal entry lines.
type ListLinesResponse struct {
	Lines     []EntryLineResponse `json:"lines"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain line to its response DTO.
func ToEntryLineResponse(line *domain.JournalEntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:         line.LineID,
		AccountID:      line.AccountID,
		LineType:       line.LineType,
		Amount:         line.Amount,
		Description:    line.Description,
		RunningBalance: line.RunningBalance,
	}
}

// ToEntryLineResponses converts a slice of domain lines to response DTOs.
func ToEntryLineResponses(lines []domain.JournalEntryLine) []EntryLineResponse {
	responses := make([]EntryLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToEntryLineResponse(&lines[i])
	}
	return responses
}

// ToJournalEntryResponse converts a domain entry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:           entry.EntryID,
		EntryNumber:       entry.EntryNumber,
		EntryDate:         entry.EntryDate,
		Description:       entry.Description,
		Reference:         entry.Reference,
		Status:            entry.Status,
		TotalDebit:        entry.TotalDebit,
		TotalCredit:       entry.TotalCredit,
		ReversalOfEntryID: entry.ReversalOfEntryID,
		CreatedAt:         entry.CreatedAt,
		CreatedBy:         entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = ToEntryLineResponses(entry.Lines)
	}
	return resp
}
