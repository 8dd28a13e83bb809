package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	db := &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}

	db.createSchema(t, ctx)

	return db
}

// Cleanup closes the pool and terminates the container.
func (db *TestDB) Cleanup(t *testing.T) {
	t.Helper()

	db.Pool.Close()
	if err := db.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createSchema creates the storefront tables.
func (db *TestDB) createSchema(t *testing.T, ctx context.Context) {
	t.Helper()

	schema := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			delivery_time TEXT NOT NULL DEFAULT '',
			cuisine_types TEXT[] NOT NULL DEFAULT '{}',
			cost_for_two INTEGER NOT NULL DEFAULT 0,
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL CHECK (price >= 0),
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			is_veg BOOLEAN NOT NULL DEFAULT FALSE,
			is_bestseller BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant_id ON menu_items(restaurant_id);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			restaurant_id TEXT,
			items JSONB NOT NULL,
			total_amount INTEGER NOT NULL,
			delivery_address TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedTestData inserts a small catalogue of restaurants and menu items.
func (db *TestDB) SeedTestData(t *testing.T, ctx context.Context) {
	t.Helper()

	restaurants := `
		INSERT INTO restaurants (id, name, description, rating, delivery_time, cuisine_types, cost_for_two, is_open, address)
		VALUES
			('R001', 'Spice Garden', 'North Indian classics', 4.5, '25 mins', '{"North Indian","Biryani"}', 600, TRUE, '12 MG Road'),
			('R002', 'Green Bowl', 'Fresh salads and bowls', 3.8, '45 mins', '{"Salads","Continental"}', 450, TRUE, '5 Church Street'),
			('R003', 'Pasta Express', 'Quick Italian', 4.2, '20 mins', '{"Italian","Vegan"}', 500, FALSE, '88 Residency Road')
	`
	if _, err := db.Pool.Exec(ctx, restaurants); err != nil {
		t.Fatalf("failed to seed restaurants: %v", err)
	}

	menuItems := `
		INSERT INTO menu_items (id, restaurant_id, name, description, price, category, is_veg, is_bestseller)
		VALUES
			('M001', 'R001', 'Butter Chicken', 'Rich tomato gravy', 320, 'Mains', FALSE, TRUE),
			('M002', 'R001', 'Garlic Naan', 'Tandoor baked', 60, 'Breads', TRUE, FALSE),
			('M003', 'R001', 'Paneer Tikka', 'Char-grilled', 240, 'Starters', TRUE, FALSE),
			('M004', 'R002', 'Caesar Salad', 'Crisp romaine', 280, 'Salads', TRUE, FALSE)
	`
	if _, err := db.Pool.Exec(ctx, menuItems); err != nil {
		t.Fatalf("failed to seed menu items: %v", err)
	}
}
