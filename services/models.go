package services

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// MaterialType classifies a material by the room surface it covers.
type MaterialType string

const (
	MaterialFloor   MaterialType = "FLOOR"
	MaterialWall    MaterialType = "WALL"
	MaterialCeiling MaterialType = "CEILING"
)

// MaterialTypes lists the valid types in display order.
var MaterialTypes = []MaterialType{MaterialFloor, MaterialWall, MaterialCeiling}

// ParseMaterialType maps a raw string onto a MaterialType. Matching is
// case-sensitive: import files must spell types exactly as exported.
func ParseMaterialType(s string) (MaterialType, bool) {
	switch MaterialType(s) {
	case MaterialFloor, MaterialWall, MaterialCeiling:
		return MaterialType(s), true
	}
	return "", false
}

// Material is a priced catalog entry owned by a single user. Names are
// unique per owner.
type Material struct {
	ID          string
	Name        string
	Type        MaterialType
	PricePerSqM float64
	Owner       string
}

// Room is one priced room of a calculation. Surface materials are referenced
// by catalog name; the price fields are derived and overwritten on every
// repricing run.
type Room struct {
	ID     string
	Number string
	Owner  string

	FloorMaterial string
	FloorArea     float64
	FloorPrice    float64

	WallMaterial string
	WallArea     float64
	WallPrice    float64

	CeilingMaterial string
	CeilingArea     float64
	CeilingPrice    float64

	TotalArea  float64
	TotalPrice float64

	CalculationID string
}

// Calculation is a named, priced set of rooms. The aggregates are derived
// from the room set; Active controls whether catalog price changes cascade
// into it.
type Calculation struct {
	ID           string
	Name         string
	Owner        string
	RoomCount    int
	TotalArea    float64
	TotalPrice   float64
	Active       bool
	CalculatedAt time.Time
	Rooms        []*Room
}

func materialFromRecord(r *core.Record) Material {
	return Material{
		ID:          r.Id,
		Name:        r.GetString("name"),
		Type:        MaterialType(r.GetString("type")),
		PricePerSqM: r.GetFloat("price_per_sq_m"),
		Owner:       r.GetString("owner"),
	}
}

func applyMaterialToRecord(rec *core.Record, m Material) {
	rec.Set("name", m.Name)
	rec.Set("type", string(m.Type))
	rec.Set("price_per_sq_m", m.PricePerSqM)
	rec.Set("owner", m.Owner)
}

func roomFromRecord(r *core.Record) *Room {
	return &Room{
		ID:              r.Id,
		Number:          r.GetString("number"),
		Owner:           r.GetString("owner"),
		FloorMaterial:   r.GetString("floor_material"),
		FloorArea:       r.GetFloat("floor_area"),
		FloorPrice:      r.GetFloat("floor_price"),
		WallMaterial:    r.GetString("wall_material"),
		WallArea:        r.GetFloat("wall_area"),
		WallPrice:       r.GetFloat("wall_price"),
		CeilingMaterial: r.GetString("ceiling_material"),
		CeilingArea:     r.GetFloat("ceiling_area"),
		CeilingPrice:    r.GetFloat("ceiling_price"),
		TotalArea:       r.GetFloat("room_area"),
		TotalPrice:      r.GetFloat("room_price"),
		CalculationID:   r.GetString("calculation"),
	}
}

func applyRoomToRecord(rec *core.Record, room *Room) {
	rec.Set("number", room.Number)
	rec.Set("owner", room.Owner)
	rec.Set("floor_material", room.FloorMaterial)
	rec.Set("floor_area", room.FloorArea)
	rec.Set("floor_price", room.FloorPrice)
	rec.Set("wall_material", room.WallMaterial)
	rec.Set("wall_area", room.WallArea)
	rec.Set("wall_price", room.WallPrice)
	rec.Set("ceiling_material", room.CeilingMaterial)
	rec.Set("ceiling_area", room.CeilingArea)
	rec.Set("ceiling_price", room.CeilingPrice)
	rec.Set("room_area", room.TotalArea)
	rec.Set("room_price", room.TotalPrice)
	rec.Set("calculation", room.CalculationID)
}

func calculationFromRecord(r *core.Record) *Calculation {
	return &Calculation{
		ID:           r.Id,
		Name:         r.GetString("name"),
		Owner:        r.GetString("owner"),
		RoomCount:    r.GetInt("number_of_rooms"),
		TotalArea:    r.GetFloat("square_meters"),
		TotalPrice:   r.GetFloat("calculation_price"),
		Active:       r.GetBool("active"),
		CalculatedAt: r.GetDateTime("calculated").Time(),
	}
}

func applyCalculationToRecord(rec *core.Record, calc *Calculation) {
	rec.Set("name", calc.Name)
	rec.Set("owner", calc.Owner)
	rec.Set("number_of_rooms", calc.RoomCount)
	rec.Set("square_meters", calc.TotalArea)
	rec.Set("calculation_price", calc.TotalPrice)
	rec.Set("active", calc.Active)
	rec.Set("calculated", calc.CalculatedAt)
}
