package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// CreateCalculation prices the given rooms against the owner's catalog,
// validates the results, and persists the calculation with its rooms in one
// transaction. Nothing is saved when pricing or validation fails.
func CreateCalculation(app *pocketbase.PocketBase, owner, name string, rooms []*Room) (*Calculation, error) {
	catalog, err := FindMaterialsByOwner(app, owner)
	if err != nil {
		return nil, err
	}

	if err := PriceRooms(rooms, owner, catalog); err != nil {
		return nil, err
	}
	AssignRoomNumbers(rooms)
	if err := ValidateRooms(rooms); err != nil {
		return nil, err
	}

	calc := &Calculation{
		Name:   name,
		Owner:  owner,
		Active: true,
		Rooms:  rooms,
	}
	PriceCalculation(calc)

	calcCol, err := app.FindCollectionByNameOrId("calculations")
	if err != nil {
		return nil, fmt.Errorf("calculations collection not found: %w", err)
	}
	roomsCol, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		return nil, fmt.Errorf("rooms collection not found: %w", err)
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		calcRec := core.NewRecord(calcCol)
		applyCalculationToRecord(calcRec, calc)
		if err := txApp.Save(calcRec); err != nil {
			return fmt.Errorf("save calculation: %w", err)
		}
		calc.ID = calcRec.Id

		for i, room := range rooms {
			room.CalculationID = calc.ID
			roomRec := core.NewRecord(roomsCol)
			applyRoomToRecord(roomRec, room)
			roomRec.Set("sort_order", i)
			if err := txApp.Save(roomRec); err != nil {
				return fmt.Errorf("save room: %w", err)
			}
			room.ID = roomRec.Id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return calc, nil
}

// ListCalculations returns the owner's calculations, most recently priced
// first, without their rooms loaded.
func ListCalculations(app *pocketbase.PocketBase, owner string) ([]*Calculation, error) {
	col, err := app.FindCollectionByNameOrId("calculations")
	if err != nil {
		return nil, fmt.Errorf("calculations collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col,
		"owner = {:owner}",
		"-calculated", 0, 0,
		map[string]any{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	calcs := make([]*Calculation, 0, len(records))
	for _, r := range records {
		calcs = append(calcs, calculationFromRecord(r))
	}
	return calcs, nil
}

// GetCalculation loads one of the owner's calculations together with its
// rooms in creation order.
func GetCalculation(app *pocketbase.PocketBase, owner, id string) (*Calculation, error) {
	record, err := app.FindRecordById("calculations", id)
	if err != nil || record.GetString("owner") != owner {
		return nil, fmt.Errorf("No Calculation with the id '%s' found.", id)
	}
	calc := calculationFromRecord(record)

	roomsCol, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		return nil, fmt.Errorf("rooms collection not found: %w", err)
	}
	roomRecs, err := app.FindRecordsByFilter(roomsCol,
		"calculation = {:calc}",
		"sort_order", 0, 0,
		map[string]any{"calc": id})
	if err != nil {
		return nil, fmt.Errorf("list calculation rooms: %w", err)
	}
	for _, rr := range roomRecs {
		calc.Rooms = append(calc.Rooms, roomFromRecord(rr))
	}
	return calc, nil
}

// SetCalculationActivity flips whether catalog price changes cascade into
// the calculation.
func SetCalculationActivity(app *pocketbase.PocketBase, owner, id string, active bool) error {
	record, err := app.FindRecordById("calculations", id)
	if err != nil || record.GetString("owner") != owner {
		return fmt.Errorf("No Calculation with the id '%s' found.", id)
	}
	record.Set("active", active)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save calculation: %w", err)
	}
	return nil
}

// DeleteCalculation removes the calculation; its rooms go with it through
// the cascade-delete relation.
func DeleteCalculation(app *pocketbase.PocketBase, owner, id string) error {
	record, err := app.FindRecordById("calculations", id)
	if err != nil || record.GetString("owner") != owner {
		return fmt.Errorf("No Calculation with the id '%s' found.", id)
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	return nil
}
