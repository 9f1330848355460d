package dto

import (
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The normal balance is derived from the account type server-side; there is
// deliberately no field for it here.
type CreateAccountRequest struct {
	AccountNumber string             `json:"accountNumber" binding:"required"`
	AccountName   string             `json:"accountName" binding:"required"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description   string             `json:"description"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	AccountName *string             `json:"accountName"` // Optional: new name
	AccountType *domain.AccountType `json:"accountType"` // Optional: new type (re-derives normal balance)
	Description *string             `json:"description"` // Optional: new description
	IsActive    *bool               `json:"isActive"`    // Optional: new active status
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	AccountNumber   string               `json:"accountNumber"`
	AccountName     string               `json:"accountName"`
	AccountType     domain.AccountType   `json:"accountType"`
	NormalBalance   domain.NormalBalance `json:"normalBalance"`
	Description     string               `json:"description"`
	IsSystemAccount bool                 `json:"isSystemAccount"`
	IsActive        bool                 `json:"isActive"`
	Balance         decimal.Decimal      `json:"balance"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		AccountNumber:   acc.AccountNumber,
		AccountName:     acc.AccountName,
		AccountType:     acc.AccountType,
		NormalBalance:   acc.NormalBalance,
		Description:     acc.Description,
		IsSystemAccount: acc.IsSystemAccount,
		IsActive:        acc.IsActive,
		Balance:         acc.Balance,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of domain accounts to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
