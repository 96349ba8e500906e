package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailyValuation struct {
	Date                  time.Time
	TotalCostBasis        decimal.Decimal
	TotalMarketValue      decimal.Decimal
	UnrealizedPnl         decimal.Decimal
	CumulativeRealizedPnl decimal.Decimal
}

// ItemDailyHistory is one item's cumulative position on one date. Every
// DailyValuation row can be reconstructed by summing these.
type ItemDailyHistory struct {
	ItemID                  string
	Date                    time.Time
	CumulativeAcquireAmount decimal.Decimal
	CumulativeDisposeAmount decimal.Decimal
	CumulativeCostBasis     decimal.Decimal
	SealedQuantity          int32
	CostBasisQuantity       int32
	AverageCostPerUnit      decimal.Decimal
}

type Summary struct {
	ItemCount          int32
	TotalQuantity      int32
	TotalCostBasis     decimal.Decimal
	CurrentMarketValue decimal.Decimal
	UnrealizedPnl      decimal.Decimal
}
