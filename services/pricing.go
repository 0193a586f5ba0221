package services

import (
	"fmt"
	"time"
)

// timeNow is swapped in tests that assert on the recompute timestamp.
var timeNow = time.Now

// UnresolvedMaterialError reports a room whose named material could not be
// found in the owner's catalog. It is fatal for the whole batch: no room of
// the batch is persisted when any single room fails to resolve.
type UnresolvedMaterialError struct {
	RoomID string
}

func (e *UnresolvedMaterialError) Error() string {
	return fmt.Sprintf("could not resolve material prices for room '%s'", e.RoomID)
}

// PriceRooms resolves each room's three material references by name against
// the subset of catalog owned by owner and fills in the per-surface prices
// and the room totals. The rooms are mutated in place.
func PriceRooms(rooms []*Room, owner string, catalog []Material) error {
	byName := make(map[string]Material, len(catalog))
	for _, m := range catalog {
		if m.Owner == owner {
			byName[m.Name] = m
		}
	}

	for _, room := range rooms {
		floorMat, floorOK := byName[room.FloorMaterial]
		wallMat, wallOK := byName[room.WallMaterial]
		ceilingMat, ceilingOK := byName[room.CeilingMaterial]
		if !floorOK || !wallOK || !ceilingOK {
			return &UnresolvedMaterialError{RoomID: room.ID}
		}

		room.Owner = owner
		room.FloorPrice = MultiplyPrice(floorMat.PricePerSqM, room.FloorArea)
		room.WallPrice = MultiplyPrice(wallMat.PricePerSqM, room.WallArea)
		room.CeilingPrice = MultiplyPrice(ceilingMat.PricePerSqM, room.CeilingArea)
		room.TotalPrice = SumAmounts(room.FloorPrice, room.WallPrice, room.CeilingPrice)
		room.TotalArea = SumAmounts(room.FloorArea, room.WallArea, room.CeilingArea)
	}
	return nil
}

// AssignRoomNumbers labels unlabeled rooms "Room 1".."Room N" in input order.
// Already-labeled rooms keep their label, so recomputation never renumbers.
func AssignRoomNumbers(rooms []*Room) {
	for i, room := range rooms {
		if room.Number == "" {
			room.Number = fmt.Sprintf("Room %d", i+1)
		}
	}
}

// PriceCalculation re-derives the calculation's aggregates from its current
// room set and refreshes the recompute timestamp. Pure aggregation: no
// catalog lookup, and running it twice over an unchanged room set yields
// identical totals.
func PriceCalculation(calc *Calculation) {
	var price, area float64
	for _, room := range calc.Rooms {
		price = SumAmounts(price, room.TotalPrice)
		area = SumAmounts(area, room.TotalArea)
	}
	calc.TotalPrice = price
	calc.TotalArea = area
	calc.RoomCount = len(calc.Rooms)
	calc.CalculatedAt = timeNow()
}
