package services

import "errors"

const (
	invalidAreaMsg  = "Invalid value for wall, ceiling or floor square meters. Values cannot be lower than 0."
	invalidPriceMsg = "Invalid value for wall, ceiling or floor material price. Please check your material list."
)

// ValidateRooms runs the post-computation sanity checks over every room:
// areas first, then prices. It fails fast on the first violation in input
// order and returns nil only when every room passes both checks.
func ValidateRooms(rooms []*Room) error {
	for _, room := range rooms {
		if err := validateRoomArea(room); err != nil {
			return err
		}
		if err := validateRoomPrice(room); err != nil {
			return err
		}
	}
	return nil
}

func validateRoomArea(room *Room) error {
	if room.TotalArea <= 0 || room.FloorArea < 0 || room.WallArea < 0 || room.CeilingArea < 0 {
		return errors.New(invalidAreaMsg)
	}
	return nil
}

func validateRoomPrice(room *Room) error {
	if room.TotalPrice <= 0 || room.FloorPrice < 0 || room.WallPrice < 0 || room.CeilingPrice < 0 {
		return errors.New(invalidPriceMsg)
	}
	return nil
}
