package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/services"
)

type roomRequest struct {
	Number          string  `json:"number"`
	FloorMaterial   string  `json:"floorMaterial"`
	FloorArea       float64 `json:"floorArea"`
	WallMaterial    string  `json:"wallMaterial"`
	WallArea        float64 `json:"wallArea"`
	CeilingMaterial string  `json:"ceilingMaterial"`
	CeilingArea     float64 `json:"ceilingArea"`
}

type calculationRequest struct {
	Name  string        `json:"name"`
	Rooms []roomRequest `json:"rooms"`
}

type roomResponse struct {
	ID              string  `json:"id"`
	Number          string  `json:"number"`
	FloorMaterial   string  `json:"floorMaterial"`
	FloorArea       float64 `json:"floorArea"`
	FloorPrice      float64 `json:"floorPrice"`
	WallMaterial    string  `json:"wallMaterial"`
	WallArea        float64 `json:"wallArea"`
	WallPrice       float64 `json:"wallPrice"`
	CeilingMaterial string  `json:"ceilingMaterial"`
	CeilingArea     float64 `json:"ceilingArea"`
	CeilingPrice    float64 `json:"ceilingPrice"`
	TotalArea       float64 `json:"totalArea"`
	TotalPrice      float64 `json:"totalPrice"`
}

type calculationResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	RoomCount  int            `json:"roomCount"`
	TotalArea  float64        `json:"totalArea"`
	TotalPrice float64        `json:"totalPrice"`
	Active     bool           `json:"active"`
	Calculated string         `json:"calculated"`
	Rooms      []roomResponse `json:"rooms,omitempty"`
}

func toCalculationResponse(c *services.Calculation) calculationResponse {
	resp := calculationResponse{
		ID:         c.ID,
		Name:       c.Name,
		RoomCount:  c.RoomCount,
		TotalArea:  c.TotalArea,
		TotalPrice: c.TotalPrice,
		Active:     c.Active,
		Calculated: c.CalculatedAt.Format("2006-01-02 15:04:05"),
	}
	for _, r := range c.Rooms {
		resp.Rooms = append(resp.Rooms, roomResponse{
			ID:              r.ID,
			Number:          r.Number,
			FloorMaterial:   r.FloorMaterial,
			FloorArea:       r.FloorArea,
			FloorPrice:      r.FloorPrice,
			WallMaterial:    r.WallMaterial,
			WallArea:        r.WallArea,
			WallPrice:       r.WallPrice,
			CeilingMaterial: r.CeilingMaterial,
			CeilingArea:     r.CeilingArea,
			CeilingPrice:    r.CeilingPrice,
			TotalArea:       r.TotalArea,
			TotalPrice:      r.TotalPrice,
		})
	}
	return resp
}

// HandleCalculationCreate prices the submitted rooms against the user's
// catalog and saves the calculation.
// Route: POST /calculations
func HandleCalculationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		var req calculationRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if len(req.Rooms) == 0 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "A calculation needs at least one room"})
		}

		rooms := make([]*services.Room, 0, len(req.Rooms))
		for _, r := range req.Rooms {
			rooms = append(rooms, &services.Room{
				Number:          r.Number,
				FloorMaterial:   r.FloorMaterial,
				FloorArea:       r.FloorArea,
				WallMaterial:    r.WallMaterial,
				WallArea:        r.WallArea,
				CeilingMaterial: r.CeilingMaterial,
				CeilingArea:     r.CeilingArea,
			})
		}

		calc, err := services.CreateCalculation(app, owner, req.Name, rooms)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusCreated, toCalculationResponse(calc))
	}
}

// HandleCalculationList returns the user's calculations, most recently
// priced first.
// Route: GET /calculations
func HandleCalculationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		calcs, err := services.ListCalculations(app, owner)
		if err != nil {
			log.Printf("calculation_list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list calculations"})
		}

		out := make([]calculationResponse, 0, len(calcs))
		for _, c := range calcs {
			out = append(out, toCalculationResponse(c))
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleCalculationView returns one calculation with its rooms.
// Route: GET /calculations/{id}
func HandleCalculationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		calc, err := services.GetCalculation(app, owner, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, toCalculationResponse(calc))
	}
}

// HandleCalculationActivity flips whether catalog price changes cascade
// into the calculation.
// Route: POST /calculations/{id}/activity
func HandleCalculationActivity(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		var req struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}

		if err := services.SetCalculationActivity(app, owner, e.Request.PathValue("id"), req.Active); err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleCalculationDelete removes a calculation and its rooms.
// Route: DELETE /calculations/{id}
func HandleCalculationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		if err := services.DeleteCalculation(app, owner, e.Request.PathValue("id")); err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
