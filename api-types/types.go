package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ItemID       string  `json:"itemId"`
	Name         string  `json:"name"`
	SetName      *string `json:"setName,omitempty"`
	EarliestDate *string `json:"earliestDate,omitempty"`
}

type SearchProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type TransactionRequest struct {
	ItemID      string           `json:"itemId"`
	Kind        string           `json:"kind"`
	Quantity    int32            `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
	// EventDate is YYYY-MM-DD.
	EventDate string  `json:"eventDate"`
	Notes     *string `json:"notes,omitempty"`
}

type TransactionResponse struct {
	LedgerEntryID int32            `json:"ledgerEntryId"`
	ItemID        string           `json:"itemId"`
	ItemName      string           `json:"itemName"`
	Kind          string           `json:"kind"`
	Quantity      int32            `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
	EventDate     string           `json:"eventDate"`
	RecordedDate  string           `json:"recordedDate"`
	DateAdjusted  bool             `json:"dateAdjusted"`
	Notes         *string          `json:"notes,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type MutationResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Summary     SummaryResponse      `json:"summary"`
}

type SummaryResponse struct {
	ItemCount          int32           `json:"itemCount"`
	TotalQuantity      int32           `json:"totalQuantity"`
	TotalCostBasis     decimal.Decimal `json:"totalCostBasis"`
	CurrentMarketValue decimal.Decimal `json:"currentMarketValue"`
	UnrealizedPnl      decimal.Decimal `json:"unrealizedPnl"`
}

type HoldingResponse struct {
	ItemID             string          `json:"itemId"`
	ItemName           string          `json:"itemName"`
	TotalAcquired      int32           `json:"totalAcquired"`
	TotalDisposed      int32           `json:"totalDisposed"`
	TotalWithdrawn     int32           `json:"totalWithdrawn"`
	SealedQuantity     int32           `json:"sealedQuantity"`
	CostBasisQuantity  int32           `json:"costBasisQuantity"`
	TotalCostBasis     decimal.Decimal `json:"totalCostBasis"`
	AverageCostPerUnit decimal.Decimal `json:"averageCostPerUnit"`
}

type ListHoldingsResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
}

type ChartDataPoint struct {
	Date                  string          `json:"date"`
	TotalCostBasis        decimal.Decimal `json:"totalCostBasis"`
	TotalMarketValue      decimal.Decimal `json:"totalMarketValue"`
	UnrealizedPnl         decimal.Decimal `json:"unrealizedPnl"`
	CumulativeRealizedPnl decimal.Decimal `json:"cumulativeRealizedPnl"`
}

type ChartDataResponse struct {
	Points []ChartDataPoint `json:"points"`
}

type ItemHistoryPoint struct {
	Date                    string          `json:"date"`
	CumulativeAcquireAmount decimal.Decimal `json:"cumulativeAcquireAmount"`
	CumulativeDisposeAmount decimal.Decimal `json:"cumulativeDisposeAmount"`
	CumulativeCostBasis     decimal.Decimal `json:"cumulativeCostBasis"`
	SealedQuantity          int32           `json:"sealedQuantity"`
	CostBasisQuantity       int32           `json:"costBasisQuantity"`
	AverageCostPerUnit      decimal.Decimal `json:"averageCostPerUnit"`
}

type ItemHistoryResponse struct {
	History []ItemHistoryPoint `json:"history"`
}

type UpdatePricesResponse struct {
	IngestedSnapshots int             `json:"ingestedSnapshots"`
	Summary           SummaryResponse `json:"summary"`
}

// DateStr formats a time in the wire date layout.
func DateStr(t time.Time) string {
	return t.Format("2006-01-02")
}
