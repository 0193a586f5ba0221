package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"renocalc/testhelpers"
)

// buildImportUpload creates a multipart body carrying an in-memory xlsx with
// the given 3-column material rows.
func buildImportUpload(t *testing.T, fileName string, rows [][]any) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatalf("set cell value: %v", err)
			}
		}
	}
	var workbook bytes.Buffer
	if err := f.Write(&workbook); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(workbook.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &body, w.FormDataContentType()
}

func TestHandleMaterialImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "importer")

	handler := HandleMaterialImport(app)

	body, contentType := buildImportUpload(t, "materials.xlsx", [][]any{
		{"Ceramic Tiles", "FLOOR", 6.50},
		{"Wallpaper", "WALL", 8.20},
	})
	req := httptest.NewRequest(http.MethodPost, "/materials/import", body)
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth("importer", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleMaterialImport_InvalidFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "importer")

	handler := HandleMaterialImport(app)

	body, contentType := buildImportUpload(t, "materials.xlsx", [][]any{
		{"Wallpaper", "ROOF", 8.20},
	})
	req := httptest.NewRequest(http.MethodPost, "/materials/import", body)
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth("importer", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMaterialImport_MissingFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "importer")

	handler := HandleMaterialImport(app)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/materials/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.SetBasicAuth("importer", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePriceListImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "importer")
	testhelpers.CreateTestMaterial(t, app, user.Id, "Wallpaper", "WALL", 8.20)

	handler := HandlePriceListImport(app)

	body, contentType := buildImportUpload(t, "prices.xlsx", [][]any{
		{"Wallpaper", 5.2},
	})
	req := httptest.NewRequest(http.MethodPost, "/materials/import-pricelist", body)
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth("importer", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePriceListImport_UnknownMaterial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "importer")

	handler := HandlePriceListImport(app)

	body, contentType := buildImportUpload(t, "prices.xlsx", [][]any{
		{"Wallpaper", 5.2},
	})
	req := httptest.NewRequest(http.MethodPost, "/materials/import-pricelist", body)
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth("importer", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMaterialTemplateDownload(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleMaterialTemplateDownload(app)

	req := httptest.NewRequest(http.MethodGet, "/materials/template", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != xlsxContentType {
		t.Errorf("unexpected content-type: %s", contentType)
	}
	if rec.Header().Get("Content-Disposition") == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestHandleMaterialExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "exporter")
	testhelpers.CreateTestMaterial(t, app, user.Id, "Wallpaper", "WALL", 8.20)

	handler := HandleMaterialExport(app)

	req := httptest.NewRequest(http.MethodGet, "/materials/export", nil)
	req.SetBasicAuth("exporter", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != xlsxContentType {
		t.Errorf("unexpected content-type: %s", contentType)
	}
	if rec.Body.Len() == 0 {
		t.Error("export body is empty")
	}
}
