package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// surfaceFieldForType maps a material type to the room field that references
// materials of that type by name.
func surfaceFieldForType(t MaterialType) string {
	switch t {
	case MaterialFloor:
		return "floor_material"
	case MaterialWall:
		return "wall_material"
	case MaterialCeiling:
		return "ceiling_material"
	}
	return ""
}

// ApplyMaterialPriceChange reprices every room of the owner's active
// calculations that references the material by name, then re-aggregates each
// touched calculation over its full room set. Rooms of inactive calculations
// are left untouched. All updates land in one transaction.
func ApplyMaterialPriceChange(app *pocketbase.PocketBase, material Material, owner string) error {
	field := surfaceFieldForType(material.Type)
	if field == "" {
		return fmt.Errorf("Error with Material")
	}

	roomsCol, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		return fmt.Errorf("rooms collection not found: %w", err)
	}

	affected, err := app.FindRecordsByFilter(roomsCol,
		fmt.Sprintf("owner = {:owner} && %s = {:name} && calculation.active = true", field),
		"", 0, 0,
		map[string]any{"owner": owner, "name": material.Name})
	if err != nil {
		return fmt.Errorf("find affected rooms: %w", err)
	}
	if len(affected) == 0 {
		return nil
	}

	// Reprice the affected rooms against the current catalog.
	catalog, err := FindMaterialsByOwner(app, owner)
	if err != nil {
		return err
	}

	updated := make(map[string]*Room, len(affected))
	calcIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, rec := range affected {
		room := roomFromRecord(rec)
		if err := PriceRooms([]*Room{room}, owner, catalog); err != nil {
			return err
		}
		updated[room.ID] = room
		if !seen[room.CalculationID] {
			seen[room.CalculationID] = true
			calcIDs = append(calcIDs, room.CalculationID)
		}
	}

	return app.RunInTransaction(func(txApp core.App) error {
		for _, rec := range affected {
			applyRoomToRecord(rec, updated[rec.Id])
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("save room: %w", err)
			}
		}

		// Re-aggregate each touched calculation over its full room set,
		// including rooms the price change did not reach.
		for _, calcID := range calcIDs {
			calcRec, err := txApp.FindRecordById("calculations", calcID)
			if err != nil {
				return fmt.Errorf("find calculation: %w", err)
			}
			roomRecs, err := txApp.FindRecordsByFilter(roomsCol,
				"calculation = {:calc}",
				"sort_order", 0, 0,
				map[string]any{"calc": calcID})
			if err != nil {
				return fmt.Errorf("list calculation rooms: %w", err)
			}

			calc := calculationFromRecord(calcRec)
			for _, rr := range roomRecs {
				if u, ok := updated[rr.Id]; ok {
					calc.Rooms = append(calc.Rooms, u)
				} else {
					calc.Rooms = append(calc.Rooms, roomFromRecord(rr))
				}
			}
			PriceCalculation(calc)

			applyCalculationToRecord(calcRec, calc)
			if err := txApp.Save(calcRec); err != nil {
				return fmt.Errorf("save calculation: %w", err)
			}
		}
		return nil
	})
}
