package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	types "binder/api-types"
	binder_errors "binder/internal"
	"binder/internal/catalog"
	"binder/internal/db/models/postgres/public/model"
	"binder/internal/domain"
	"binder/internal/prices"
	"binder/internal/recompile"
	"binder/internal/repository"
	"binder/internal/transactions"
	"binder/internal/util"
)

type Deps struct {
	Db            *sql.DB
	Transactions  transactions.Service
	Catalog       catalog.Service
	Recompiler    *recompile.Service
	Ingestor      prices.Ingestor
	HoldingsRepo  repository.HoldingsRepository
	ValuationRepo repository.ValuationRepository
	PriceDir      string
	Logger        zerolog.Logger
}

func StartApi(port int, deps Deps) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, map[string]string{"message": "welcome to binder"})
	})

	router.GET("/api/products/search", func(c *gin.Context) {
		query := c.Query("q")
		limit := int64(0)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				returnErrorJsonCode(fmt.Errorf("invalid limit %q", raw), c, http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		products, err := deps.Catalog.SearchProducts(tx, query, limit)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := types.SearchProductsResponse{Products: []types.ProductResponse{}}
		for _, p := range products {
			out.Products = append(out.Products, productResponse(p))
		}
		c.JSON(200, out)
	})

	router.GET("/api/products/:itemId", func(c *gin.Context) {
		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		product, err := deps.Catalog.GetProduct(tx, c.Param("itemId"))
		if err != nil {
			returnDomainError(err, c)
			return
		}
		c.JSON(200, productResponse(*product))
	})

	router.GET("/api/transactions", func(c *gin.Context) {
		var kind *model.EntryKind
		if raw := c.Query("kind"); raw != "" {
			parsed, err := entryKind(raw)
			if err != nil {
				returnErrorJsonCode(err, c, http.StatusBadRequest)
				return
			}
			kind = &parsed
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		entries, err := deps.Transactions.ListTransactions(tx, kind)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := types.ListTransactionsResponse{Transactions: []types.TransactionResponse{}}
		for _, e := range entries {
			out.Transactions = append(out.Transactions, transactionResponse(e))
		}
		c.JSON(200, out)
	})

	router.POST("/api/transactions", func(c *gin.Context) {
		var req types.TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		in, err := addInput(req)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		entry, summary, err := deps.Transactions.AddTransaction(tx, *in)
		if err != nil {
			returnDomainError(err, c)
			return
		}
		if err := tx.Commit(); err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(200, mutationResponse(entry, *summary))
	})

	router.PUT("/api/transactions/:id", func(c *gin.Context) {
		id, err := entryID(c)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
		var req types.TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		in, err := addInput(req)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		entry, summary, err := deps.Transactions.UpdateTransaction(tx, transactions.UpdateTransactionInput{
			LedgerEntryID: id,
			ItemID:        in.ItemID,
			Kind:          in.Kind,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
			TotalAmount:   in.TotalAmount,
			EventDate:     in.EventDate,
			Notes:         in.Notes,
		})
		if err != nil {
			returnDomainError(err, c)
			return
		}
		if err := tx.Commit(); err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(200, mutationResponse(entry, *summary))
	})

	router.DELETE("/api/transactions/:id", func(c *gin.Context) {
		id, err := entryID(c)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		summary, err := deps.Transactions.DeleteTransaction(tx, id)
		if err != nil {
			returnDomainError(err, c)
			return
		}
		if err := tx.Commit(); err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(200, mutationResponse(nil, *summary))
	})

	router.GET("/api/portfolio/summary", func(c *gin.Context) {
		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		summary, err := deps.Recompiler.ReadSummary(tx)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, summaryResponse(*summary))
	})

	router.GET("/api/portfolio/holdings", func(c *gin.Context) {
		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		holdings, err := deps.HoldingsRepo.List(tx)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := types.ListHoldingsResponse{Holdings: []types.HoldingResponse{}}
		for _, h := range holdings {
			out.Holdings = append(out.Holdings, holdingResponse(h))
		}
		c.JSON(200, out)
	})

	router.GET("/api/portfolio/chart-data", func(c *gin.Context) {
		start, err := dateParam(c, "start")
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
		end, err := dateParam(c, "end")
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}

		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		series, err := deps.ValuationRepo.ListSeries(tx, start, end)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := types.ChartDataResponse{Points: []types.ChartDataPoint{}}
		for _, row := range series {
			out.Points = append(out.Points, types.ChartDataPoint{
				Date:                  types.DateStr(row.Date),
				TotalCostBasis:        row.TotalCostBasis,
				TotalMarketValue:      row.TotalMarketValue,
				UnrealizedPnl:         row.UnrealizedPnl,
				CumulativeRealizedPnl: row.CumulativeRealizedPnl,
			})
		}
		c.JSON(200, out)
	})

	router.GET("/api/portfolio/items/:itemId/history", func(c *gin.Context) {
		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		rows, err := deps.ValuationRepo.ItemHistory(tx, c.Param("itemId"))
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := types.ItemHistoryResponse{History: []types.ItemHistoryPoint{}}
		for _, row := range rows {
			out.History = append(out.History, types.ItemHistoryPoint{
				Date:                    types.DateStr(row.Date),
				CumulativeAcquireAmount: row.CumulativeAcquireAmount,
				CumulativeDisposeAmount: row.CumulativeDisposeAmount,
				CumulativeCostBasis:     row.CumulativeCostBasis,
				SealedQuantity:          row.SealedQuantity,
				CostBasisQuantity:       row.CostBasisQuantity,
				AverageCostPerUnit:      row.AverageCostPerUnit,
			})
		}
		c.JSON(200, out)
	})

	router.POST("/api/portfolio/update-prices", func(c *gin.Context) {
		tx, err := deps.Db.Begin()
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		defer tx.Rollback()

		ingested, err := deps.Ingestor.IngestDir(tx, deps.PriceDir)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		summary, err := deps.Recompiler.RecompileAllTx(tx)
		if err != nil {
			returnDomainError(err, c)
			return
		}
		if err := tx.Commit(); err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(200, types.UpdatePricesResponse{
			IngestedSnapshots: ingested,
			Summary:           summaryResponse(*summary),
		})
	})

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnDomainError maps the typed errors to response codes.
func returnDomainError(err error, c *gin.Context) {
	var unknownErr binder_errors.ErrUnknownProduct
	var inventoryErr binder_errors.ErrInsufficientInventory
	var integrityErr binder_errors.LedgerIntegrityError
	switch {
	case errors.As(err, &unknownErr):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	case errors.As(err, &inventoryErr):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	case errors.As(err, &integrityErr):
		returnErrorJsonCode(err, c, http.StatusConflict)
	default:
		returnErrorJson(err, c)
	}
}

func entryID(c *gin.Context) (int32, error) {
	raw := c.Param("id")
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q", raw)
	}
	return int32(parsed), nil
}

func entryKind(raw string) (model.EntryKind, error) {
	switch model.EntryKind(raw) {
	case model.EntryKind_Acquire, model.EntryKind_Dispose, model.EntryKind_Withdraw:
		return model.EntryKind(raw), nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", raw)
}

func dateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := util.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q", name, raw)
	}
	return &parsed, nil
}

func addInput(req types.TransactionRequest) (*transactions.AddTransactionInput, error) {
	kind, err := entryKind(req.Kind)
	if err != nil {
		return nil, err
	}
	eventDate, err := util.ParseDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %q", req.EventDate)
	}
	return &transactions.AddTransactionInput{
		ItemID:      req.ItemID,
		Kind:        kind,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.TotalAmount,
		EventDate:   eventDate,
		Notes:       req.Notes,
	}, nil
}

func productResponse(p domain.Product) types.ProductResponse {
	out := types.ProductResponse{
		ItemID:  p.ItemID,
		Name:    p.Name,
		SetName: p.SetName,
	}
	if p.EarliestDate != nil {
		out.EarliestDate = util.StringPtr(types.DateStr(*p.EarliestDate))
	}
	return out
}

func transactionResponse(e domain.LedgerEntry) types.TransactionResponse {
	out := types.TransactionResponse{
		ItemID:       e.ItemID,
		ItemName:     e.ItemName,
		Kind:         string(e.Kind),
		Quantity:     e.Quantity,
		UnitPrice:    e.UnitPrice,
		TotalAmount:  e.TotalAmount,
		EventDate:    types.DateStr(e.EventDate),
		RecordedDate: types.DateStr(e.RecordedDate),
		DateAdjusted: e.DateAdjusted,
		Notes:        e.Notes,
	}
	if e.LedgerEntryID != nil {
		out.LedgerEntryID = *e.LedgerEntryID
	}
	return out
}

func mutationResponse(e *domain.LedgerEntry, summary domain.Summary) types.MutationResponse {
	out := types.MutationResponse{Summary: summaryResponse(summary)}
	if e != nil {
		resp := transactionResponse(*e)
		out.Transaction = &resp
	}
	return out
}

func holdingResponse(h domain.ItemHolding) types.HoldingResponse {
	return types.HoldingResponse{
		ItemID:             h.ItemID,
		ItemName:           h.ItemName,
		TotalAcquired:      h.TotalAcquired,
		TotalDisposed:      h.TotalDisposed,
		TotalWithdrawn:     h.TotalWithdrawn,
		SealedQuantity:     h.SealedQuantity,
		CostBasisQuantity:  h.CostBasisQuantity,
		TotalCostBasis:     h.TotalCostBasis,
		AverageCostPerUnit: h.AverageCostPerUnit,
	}
}

func summaryResponse(s domain.Summary) types.SummaryResponse {
	return types.SummaryResponse{
		ItemCount:          s.ItemCount,
		TotalQuantity:      s.TotalQuantity,
		TotalCostBasis:     s.TotalCostBasis,
		CurrentMarketValue: s.CurrentMarketValue,
		UnrealizedPnl:      s.UnrealizedPnl,
	}
}
