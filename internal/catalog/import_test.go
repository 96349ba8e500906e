package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"binder/internal/domain"
	"binder/internal/logging"
	"binder/internal/util"
)

func Test_ImportProducts(t *testing.T) {
	t.Run("upserts the batch through the product store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productStore := NewMockProductStore(ctrl)
		priceStore := NewMockPriceStore(ctrl)
		service := NewService(productStore, priceStore, logging.NewSilentLogger())

		products := []domain.Product{
			{ItemID: "item-1", Name: "Booster Box"},
			{ItemID: "item-2", Name: "Elite Trainer Box", SetName: util.StringPtr("Evolving Skies")},
		}
		productStore.EXPECT().Upsert(nil, products).Return(nil)

		imported, err := service.ImportProducts(nil, products)
		require.NoError(t, err)
		require.Equal(t, 2, imported)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productStore := NewMockProductStore(ctrl)
		priceStore := NewMockPriceStore(ctrl)
		service := NewService(productStore, priceStore, logging.NewSilentLogger())

		imported, err := service.ImportProducts(nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, imported)
	})
}

func Test_ReadProductsFile(t *testing.T) {
	writeFile := func(t *testing.T, contents string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "products.csv")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		return path
	}

	t.Run("parses rows with optional set name", func(t *testing.T) {
		path := writeFile(t, "productId,name,setName\nitem-1,Booster Box,Evolving Skies\nitem-2,Theme Deck,\n")

		products, err := ReadProductsFile(path)
		require.NoError(t, err)

		expected := []domain.Product{
			{ItemID: "item-1", Name: "Booster Box", SetName: util.StringPtr("Evolving Skies")},
			{ItemID: "item-2", Name: "Theme Deck"},
		}
		require.Equal(t, "", cmp.Diff(expected, products))
	})

	t.Run("accepts itemId as the id column", func(t *testing.T) {
		path := writeFile(t, "itemId,name\nitem-1,Booster Box\n")

		products, err := ReadProductsFile(path)
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Equal(t, "item-1", products[0].ItemID)
	})

	t.Run("rejects headers without id or name columns", func(t *testing.T) {
		path := writeFile(t, "sku,label\nitem-1,Booster Box\n")

		_, err := ReadProductsFile(path)
		require.Error(t, err)
	})

	t.Run("rejects rows missing id or name", func(t *testing.T) {
		path := writeFile(t, "productId,name\n,Booster Box\n")

		_, err := ReadProductsFile(path)
		require.Error(t, err)
	})
}
