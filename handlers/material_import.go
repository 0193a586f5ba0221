package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleMaterialImport receives an Excel upload and adds its rows to the
// user's catalog. Nothing is saved when the file fails validation.
// Route: POST /materials/import
func HandleMaterialImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "File too large or invalid form data"})
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Please select a file to upload"})
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Printf("material_import: read upload: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Error in import file"})
		}

		if err := services.ImportMaterials(app, owner, header.Filename, data); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandlePriceListImport receives a legacy 2-column price list upload and
// applies its prices to the user's existing materials, repricing the active
// calculations they feed. Nothing is saved when the file fails validation or
// names a material the user does not have.
// Route: POST /materials/import-pricelist
func HandlePriceListImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "File too large or invalid form data"})
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Please select a file to upload"})
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Printf("pricelist_import: read upload: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Error in import file"})
		}

		if err := services.ImportPriceList(app, owner, header.Filename, data); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleMaterialTemplateDownload serves the import template workbook.
// Route: GET /materials/template
func HandleMaterialTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("material_template: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate template"})
		}

		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", `attachment; filename="material-import-template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleMaterialExport downloads the user's catalog as an Excel workbook in
// the import layout.
// Route: GET /materials/export
func HandleMaterialExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		materials, err := services.FindMaterialsByOwner(app, owner)
		if err != nil {
			log.Printf("material_export: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list materials"})
		}

		xlsxBytes, err := services.ExportMaterials(materials)
		if err != nil {
			log.Printf("material_export: failed to generate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate Excel file"})
		}

		filename := fmt.Sprintf("materials_%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
