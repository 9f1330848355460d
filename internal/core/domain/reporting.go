package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow aggregates posted, non-void lines for one account.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
}

// TrialBalance lists per-account totals; GrandDebit must equal GrandCredit
// whenever the posting invariant holds.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	GrandDebit  decimal.Decimal   `json:"grandDebit"`
	GrandCredit decimal.Decimal   `json:"grandCredit"`
}

// ReportLine is one account's net movement within a reporting section.
type ReportLine struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Amount        decimal.Decimal `json:"amount"`
}

// IncomeStatement summarises revenue and expenses over a period.
type IncomeStatement struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	RevenueLines  []ReportLine    `json:"revenueLines"`
	ExpenseLines  []ReportLine    `json:"expenseLines"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheet summarises financial position at a point in time.
type BalanceSheet struct {
	AsOf             time.Time       `json:"asOf"`
	AssetLines       []ReportLine    `json:"assetLines"`
	LiabilityLines   []ReportLine    `json:"liabilityLines"`
	EquityLines      []ReportLine    `json:"equityLines"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"` // Includes current-period net income
}
