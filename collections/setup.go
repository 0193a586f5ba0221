package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the users, materials, calculations
// and rooms collections exist.
func Setup(app *pocketbase.PocketBase) {
	users := ensureCollection(app, "users", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "username", Required: true})
		c.Fields.Add(&core.TextField{Name: "password_hash", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.AddIndex("idx_users_username", true, "username", "")
	})

	ensureCollection(app, "materials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{"FLOOR", "WALL", "CEILING"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "price_per_sq_m", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:          "owner",
			Required:      true,
			CollectionId:  users.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		// A user's catalog cannot hold two materials with the same name.
		c.AddIndex("idx_materials_owner_name", true, "owner, name", "")
	})

	calculations := ensureCollection(app, "calculations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:          "owner",
			Required:      true,
			CollectionId:  users.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "number_of_rooms", Required: true})
		c.Fields.Add(&core.NumberField{Name: "square_meters", Required: true})
		c.Fields.Add(&core.NumberField{Name: "calculation_price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.DateField{Name: "calculated", Required: true})
	})

	ensureCollection(app, "rooms", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "calculation",
			Required:      true,
			CollectionId:  calculations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "owner",
			Required:      true,
			CollectionId:  users.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "floor_material", Required: true})
		c.Fields.Add(&core.NumberField{Name: "floor_area", Required: false})
		c.Fields.Add(&core.NumberField{Name: "floor_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "wall_material", Required: true})
		c.Fields.Add(&core.NumberField{Name: "wall_area", Required: false})
		c.Fields.Add(&core.NumberField{Name: "wall_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "ceiling_material", Required: true})
		c.Fields.Add(&core.NumberField{Name: "ceiling_area", Required: false})
		c.Fields.Add(&core.NumberField{Name: "ceiling_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "room_area", Required: true})
		c.Fields.Add(&core.NumberField{Name: "room_price", Required: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
