package repository

import (
	"context"
	"testing"
	"time"

	"aesthetic-cakes/internal/database"
	"aesthetic-cakes/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

var testSweets = []model.Product{
	{ID: 4, Name: "Chocolate Chip Cookies", Description: "Crisp edges", Category: "Cookies", Price: "$2.50/piece", Image: "/assets/cookies.jpg"},
	{ID: 1, Name: "Classic Chocolate Brownies", Description: "Fudgy squares", Category: "Brownies", Price: "$3.50/piece", Image: "/assets/brownies.jpg"},
	{ID: 2, Name: "French Macarons", Description: "Almond shells", Category: "Cookies", Price: "$24/box", Image: "/assets/macarons.jpg"},
}

func TestProductRepository_ReplaceAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	err := repo.ReplaceSection(ctx, model.KindSweet, []string{"Brownies", "Cookies"}, testSweets)
	require.NoError(t, err)

	t.Run("Products keep declaration order, not id order", func(t *testing.T) {
		products, err := repo.ListByKind(ctx, model.KindSweet)
		require.NoError(t, err)
		require.Len(t, products, 3)

		assert.Equal(t, 4, products[0].ID)
		assert.Equal(t, 1, products[1].ID)
		assert.Equal(t, 2, products[2].ID)
		for i, p := range products {
			assert.Equal(t, model.KindSweet, p.Kind)
			assert.Equal(t, testSweets[i].Name, p.Name)
			assert.Equal(t, testSweets[i].Price, p.Price)
		}
	})

	t.Run("Categories keep declaration order", func(t *testing.T) {
		labels, err := repo.ListCategories(ctx, model.KindSweet)
		require.NoError(t, err)
		assert.Equal(t, []string{"Brownies", "Cookies"}, labels)
	})

	t.Run("Other kinds are empty", func(t *testing.T) {
		products, err := repo.ListByKind(ctx, model.KindCake)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Replace drops previous rows", func(t *testing.T) {
		err := repo.ReplaceSection(ctx, model.KindSweet, nil, testSweets[:1])
		require.NoError(t, err)

		products, err := repo.ListByKind(ctx, model.KindSweet)
		require.NoError(t, err)
		assert.Len(t, products, 1)

		labels, err := repo.ListCategories(ctx, model.KindSweet)
		require.NoError(t, err)
		assert.Empty(t, labels)
	})

	t.Run("Duplicate ids roll back", func(t *testing.T) {
		dup := []model.Product{{ID: 9, Name: "A"}, {ID: 9, Name: "B"}}
		err := repo.ReplaceSection(ctx, model.KindSweet, nil, dup)
		require.Error(t, err)

		products, err := repo.ListByKind(ctx, model.KindSweet)
		require.NoError(t, err)
		assert.Len(t, products, 1, "previous section survives a failed replace")
	})
}

func TestCatalogLoader_FromDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())
	require.NoError(t, repo.ReplaceSection(ctx, model.KindSweet, nil, testSweets))

	section, err := NewCatalogLoader(repo).Load(ctx, model.KindSweet)

	require.NoError(t, err)
	assert.Len(t, section.Products, 3)
	assert.Equal(t, []string{"Cookies", "Brownies"}, section.Categories, "derived from products when none are stored")
}
