package repository

import (
	"errors"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	binder_errors "binder/internal"
	db "binder/internal/db/query"
	"binder/internal/domain"
	"binder/internal/util"
)

func TestProductRepository(t *testing.T) {
	t.Run("upsert then get", func(t *testing.T) {
		tx := testTx(t)
		repo := NewProductRepository()

		err := repo.Upsert(tx, []domain.Product{
			{ItemID: "12345", Name: "Booster Box", SetName: util.StringPtr("Evolving Skies")},
			{ItemID: "67890", Name: "Elite Trainer Box"},
		})
		require.NoError(t, err)

		got, err := repo.Get(tx, "12345")
		require.NoError(t, err)
		require.Equal(t, "Booster Box", got.Name)
		require.NotNil(t, got.SetName)
		require.Equal(t, "Evolving Skies", *got.SetName)
		require.Nil(t, got.EarliestDate)
	})

	t.Run("upsert twice updates in place", func(t *testing.T) {
		tx := testTx(t)
		repo := NewProductRepository()

		require.NoError(t, repo.Upsert(tx, []domain.Product{
			{ItemID: "12345", Name: "Booster Box"},
		}))
		require.NoError(t, repo.Upsert(tx, []domain.Product{
			{ItemID: "12345", Name: "Booster Box (36 Packs)", SetName: util.StringPtr("Evolving Skies")},
		}))

		got, err := repo.Get(tx, "12345")
		require.NoError(t, err)
		require.Equal(t, "Booster Box (36 Packs)", got.Name)

		results, err := repo.Search(tx, "booster", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
	})

	t.Run("get unknown product", func(t *testing.T) {
		tx := testTx(t)
		repo := NewProductRepository()

		_, err := repo.Get(tx, "missing")
		var unknownErr binder_errors.ErrUnknownProduct
		require.True(t, errors.As(err, &unknownErr))
		require.Equal(t, "missing", unknownErr.ItemID)
	})

	t.Run("set earliest date", func(t *testing.T) {
		tx := testTx(t)
		repo := NewProductRepository()

		require.NoError(t, repo.Upsert(tx, []domain.Product{
			{ItemID: "12345", Name: "Booster Box"},
		}))

		require.NoError(t, repo.SetEarliestDate(tx, "12345", day("2024-01-05")))
		got, err := repo.Get(tx, "12345")
		require.NoError(t, err)
		require.NotNil(t, got.EarliestDate)
		require.True(t, util.SameDay(day("2024-01-05"), *got.EarliestDate))

		err = repo.SetEarliestDate(tx, "missing", day("2024-01-05"))
		var unknownErr binder_errors.ErrUnknownProduct
		require.True(t, errors.As(err, &unknownErr))
	})

	t.Run("rollback with error keeps the cause", func(t *testing.T) {
		tx := testTx(t)
		repo := NewProductRepository()

		require.NoError(t, repo.Upsert(tx, []domain.Product{
			{ItemID: "12345", Name: "Booster Box"},
		}))

		savepoint, err := db.AddSavepoint(tx)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(tx, []domain.Product{
			{ItemID: "67890", Name: "Elite Trainer Box"},
		}))

		cause := binder_errors.LedgerIntegrityError{ItemID: "67890", Reason: "sealed count below zero"}
		err = db.RollbackWithError(tx, savepoint, cause)

		var integrityErr binder_errors.LedgerIntegrityError
		require.True(t, errors.As(err, &integrityErr))
		require.Equal(t, "67890", integrityErr.ItemID)

		// second product rolled back, first survives
		_, err = repo.Get(tx, "67890")
		var unknownErr binder_errors.ErrUnknownProduct
		require.True(t, errors.As(err, &unknownErr))
		_, err = repo.Get(tx, "12345")
		require.NoError(t, err)
	})
}
