package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	binder_errors "binder/internal"
	"binder/internal/db/models/postgres/public/model"
	. "binder/internal/db/models/postgres/public/table"
	"binder/internal/domain"
	"binder/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type ProductRepository interface {
	Get(tx *sql.Tx, itemID string) (*domain.Product, error)
	Search(tx *sql.Tx, query string, limit int64) ([]domain.Product, error)
	Upsert(tx *sql.Tx, products []domain.Product) error
	SetEarliestDate(tx *sql.Tx, itemID string, date time.Time) error
}

type productRepositoryHandler struct {
}

func NewProductRepository() ProductRepository {
	return productRepositoryHandler{}
}

func (h productRepositoryHandler) Get(tx *sql.Tx, itemID string) (*domain.Product, error) {
	stmt := Product.SELECT(Product.AllColumns).
		WHERE(Product.ItemID.EQ(postgres.String(itemID)))

	result := model.Product{}
	err := stmt.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, binder_errors.ErrUnknownProduct{ItemID: itemID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", itemID, err)
	}

	p := productFromDb(result)
	return &p, nil
}

func (h productRepositoryHandler) Search(tx *sql.Tx, query string, limit int64) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	stmt := Product.SELECT(Product.AllColumns).
		ORDER_BY(Product.Name.ASC()).
		LIMIT(limit)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		stmt = Product.SELECT(Product.AllColumns).
			WHERE(postgres.LOWER(Product.Name).LIKE(postgres.String(pattern))).
			ORDER_BY(Product.Name.ASC()).
			LIMIT(limit)
	}

	result := []model.Product{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	out := make([]domain.Product, len(result))
	for i, m := range result {
		out[i] = productFromDb(m)
	}
	return out, nil
}

func (h productRepositoryHandler) Upsert(tx *sql.Tx, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	models := make([]model.Product, len(products))
	for i, p := range products {
		models[i] = productToDb(p)
	}

	stmt := Product.INSERT(Product.AllColumns).
		MODELS(models).
		ON_CONFLICT(Product.ItemID).
		DO_UPDATE(postgres.SET(
			Product.Name.SET(Product.EXCLUDED.Name),
			Product.SetName.SET(Product.EXCLUDED.SetName),
			Product.EarliestDate.SET(Product.EXCLUDED.EarliestDate),
			Product.ModifiedAt.SET(Product.EXCLUDED.ModifiedAt),
		))

	_, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert products: %w", err)
	}

	return nil
}

func (h productRepositoryHandler) SetEarliestDate(tx *sql.Tx, itemID string, date time.Time) error {
	stmt := Product.UPDATE(Product.EarliestDate, Product.ModifiedAt).
		SET(postgres.DateT(util.Day(date)), postgres.TimestampzT(time.Now().UTC())).
		WHERE(Product.ItemID.EQ(postgres.String(itemID)))

	result, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to set earliest date for %s: %w", itemID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return binder_errors.ErrUnknownProduct{ItemID: itemID}
	}

	return nil
}

func productFromDb(m model.Product) domain.Product {
	p := domain.Product{
		ItemID:  m.ItemID,
		Name:    m.Name,
		SetName: m.SetName,
	}
	if m.EarliestDate != nil {
		p.EarliestDate = util.TimePtr(util.Day(*m.EarliestDate))
	}
	return p
}

func productToDb(p domain.Product) model.Product {
	m := model.Product{
		ItemID:     p.ItemID,
		Name:       p.Name,
		SetName:    p.SetName,
		CreatedAt:  time.Now().UTC(),
		ModifiedAt: time.Now().UTC(),
	}
	if p.EarliestDate != nil {
		m.EarliestDate = util.TimePtr(util.Day(*p.EarliestDate))
	}
	return m
}
