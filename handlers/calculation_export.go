package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleCalculationExportExcel generates and downloads an Excel file for a
// calculation.
// Route: GET /calculations/{id}/export/excel
func HandleCalculationExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		calc, err := services.GetCalculation(app, owner, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}

		xlsxBytes, err := services.GenerateCalculationExcel(calc)
		if err != nil {
			log.Printf("calculation_export_excel: failed to generate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate Excel file"})
		}

		filename := fmt.Sprintf("calculation_%s_%d.xlsx", sanitizeFilename(calc.Name), time.Now().Year())
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleCalculationExportPDF generates and downloads a PDF file for a
// calculation.
// Route: GET /calculations/{id}/export/pdf
func HandleCalculationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		owner, err := currentUser(app, e)
		if err != nil {
			return unauthorized(e)
		}

		calc, err := services.GetCalculation(app, owner, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}

		pdfBytes, err := services.GenerateCalculationPDF(calc)
		if err != nil {
			log.Printf("calculation_export_pdf: failed to generate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate PDF file"})
		}

		filename := fmt.Sprintf("calculation_%s_%d.pdf", sanitizeFilename(calc.Name), time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
