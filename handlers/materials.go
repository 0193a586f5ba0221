package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/services"
)

type materialRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PricePerSqM float64 `json:"pricePerSqM"`
}

type materialResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PricePerSqM float64 `json:"pricePerSqM"`
}

func toMaterialResponse(m services.Material) materialResponse {
	return materialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        string(m.Type),
		PricePerSqM: m.PricePerSqM,
	}
}

// HandleMaterialList returns the user's catalog, optionally narrowed to one
// type with ?type=FLOOR|WALL|CEILING.
// Route: GET /materials
func HandleMaterialList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		materials, err := services.FindMaterialsByOwner(app, owner)
		if err != nil {
			log.Printf("material_list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list materials"})
		}

		if typeParam := e.Request.URL.Query().Get("type"); typeParam != "" {
			t, ok := services.ParseMaterialType(typeParam)
			if !ok {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid material type"})
			}
			materials = services.FilterMaterialsByType(materials, t)
		}

		out := make([]materialResponse, 0, len(materials))
		for _, m := range materials {
			out = append(out, toMaterialResponse(m))
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleMaterialCreate adds one material to the user's catalog.
// Route: POST /materials
func HandleMaterialCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		var req materialRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}

		t, ok := services.ParseMaterialType(req.Type)
		if !ok {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid material type"})
		}

		created, err := services.CreateMaterial(app, services.Material{
			Name:        req.Name,
			Type:        t,
			PricePerSqM: req.PricePerSqM,
			Owner:       owner,
		})
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusCreated, toMaterialResponse(created))
	}
}

// HandleMaterialUpdate changes a material's name or price. A price change
// reprices every active calculation that uses the material.
// Route: POST /materials/{id}
func HandleMaterialUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		var req materialRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}

		t, ok := services.ParseMaterialType(req.Type)
		if !ok {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid material type"})
		}

		err = services.UpdateMaterial(app, services.Material{
			ID:          e.Request.PathValue("id"),
			Name:        req.Name,
			Type:        t,
			PricePerSqM: req.PricePerSqM,
			Owner:       owner,
		})
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleMaterialDelete removes a material from the user's catalog.
// Route: DELETE /materials/{id}
func HandleMaterialDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		if err := services.DeleteMaterial(app, owner, e.Request.PathValue("id")); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
