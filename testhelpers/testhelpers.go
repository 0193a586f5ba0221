// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"

	"renocalc/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestUser creates a user record with the given username and a fixed
// test password ("Test@1234") and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, username string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Test@1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("password_hash", string(hash))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// CreateTestMaterial creates a material record owned by the given user.
func CreateTestMaterial(t *testing.T, app *pocketbase.PocketBase, ownerID, name, materialType string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		t.Fatalf("failed to find materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", materialType)
	record.Set("price_per_sq_m", price)
	record.Set("owner", ownerID)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test material: %v", err)
	}

	return record
}

// CreateTestCalculation creates a calculation record owned by the given user.
func CreateTestCalculation(t *testing.T, app *pocketbase.PocketBase, ownerID, name string, active bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("calculations")
	if err != nil {
		t.Fatalf("failed to find calculations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("owner", ownerID)
	record.Set("number_of_rooms", 0)
	record.Set("square_meters", 0)
	record.Set("calculation_price", 0)
	record.Set("active", active)
	record.Set("calculated", "2024-01-01 00:00:00.000Z")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test calculation: %v", err)
	}

	return record
}

// CreateTestRoom creates a room record linked to a calculation. The material
// names reference the owner's catalog; prices and totals are stored as given.
func CreateTestRoom(t *testing.T, app *pocketbase.PocketBase, ownerID, calculationID, number string, r map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		t.Fatalf("failed to find rooms collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("calculation", calculationID)
	record.Set("owner", ownerID)
	record.Set("number", number)
	for key, val := range r {
		record.Set(key, val)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test room: %v", err)
	}

	return record
}
