package catalog

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"binder/internal/domain"
	"binder/internal/util"
)

// ImportProducts upserts a batch of catalog rows. Existing products are
// updated in place, so re-importing the same file is a no-op.
func (h *serviceHandler) ImportProducts(tx *sql.Tx, products []domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}
	if err := h.ProductStore.Upsert(tx, products); err != nil {
		return 0, fmt.Errorf("failed to upsert products: %w", err)
	}

	h.Logger.Info().Int("products", len(products)).Msg("imported catalog products")

	return len(products), nil
}

// ReadProductsFile parses a catalog CSV (header: productId,name,setName).
// setName is optional; rows without an id or name are rejected. Upstream
// IDs are coerced to the canonical string form here.
func ReadProductsFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idCol, nameCol, setCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "productId", "itemId":
			idCol = i
		case "name":
			nameCol = i
		case "setName":
			setCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("missing productId/name columns in header %v", header)
	}

	out := []domain.Product{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		itemID := strings.TrimSpace(record[idCol])
		name := strings.TrimSpace(record[nameCol])
		if itemID == "" || name == "" {
			return nil, fmt.Errorf("product row missing id or name: %v", record)
		}

		product := domain.Product{
			ItemID: itemID,
			Name:   name,
		}
		if setCol >= 0 {
			if setName := strings.TrimSpace(record[setCol]); setName != "" {
				product.SetName = util.StringPtr(setName)
			}
		}
		out = append(out, product)
	}

	return out, nil
}
