package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

type seedMaterial struct {
	name  string
	typ   string
	price float64
}

// seedMaterials match the rows of the downloadable import template, so a
// fresh install starts with a usable catalog.
var seedMaterials = []seedMaterial{
	{"Blue Paint", "WALL", 0.40},
	{"Red Paint", "WALL", 0.42},
	{"Ceramic Tiles", "FLOOR", 6.50},
	{"Wooden Tiles", "FLOOR", 9.69},
	{"Wallpaper", "WALL", 8.20},
	{"Drywall", "WALL", 4.20},
	{"Ceiling Tile", "CEILING", 6.60},
	{"Hanged Ceiling", "CEILING", 7.17},
}

// Seed creates a demo user with the template material catalog when the users
// collection is empty. Re-running against a populated database is a no-op.
func Seed(app *pocketbase.PocketBase) error {
	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return fmt.Errorf("users collection not found: %w", err)
	}
	existing, err := app.FindRecordsByFilter(usersCol, "id != ''", "", 1, 0, nil)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Demo@1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	materialsCol, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return fmt.Errorf("materials collection not found: %w", err)
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		user := core.NewRecord(usersCol)
		user.Set("username", "demo")
		user.Set("password_hash", string(hash))
		if err := txApp.Save(user); err != nil {
			return err
		}

		for _, m := range seedMaterials {
			record := core.NewRecord(materialsCol)
			record.Set("name", m.name)
			record.Set("type", m.typ)
			record.Set("price_per_sq_m", m.price)
			record.Set("owner", user.Id)
			if err := txApp.Save(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("Seeded demo user with %d materials", len(seedMaterials))
	return nil
}
