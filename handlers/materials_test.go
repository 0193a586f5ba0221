package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renocalc/testhelpers"
)

func TestHandleMaterialList_Unauthorized(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleMaterialList(app)

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("expected WWW-Authenticate challenge")
	}
}

func TestHandleMaterialList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "lister")
	testhelpers.CreateTestMaterial(t, app, user.Id, "Wallpaper", "WALL", 8.20)
	testhelpers.CreateTestMaterial(t, app, user.Id, "Ceramic Tiles", "FLOOR", 6.50)

	handler := HandleMaterialList(app)

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	req.SetBasicAuth("lister", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("got %d materials, want 2", len(out))
	}
}

func TestHandleMaterialList_TypeFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "lister")
	testhelpers.CreateTestMaterial(t, app, user.Id, "Wallpaper", "WALL", 8.20)
	testhelpers.CreateTestMaterial(t, app, user.Id, "Ceramic Tiles", "FLOOR", 6.50)

	handler := HandleMaterialList(app)

	req := httptest.NewRequest(http.MethodGet, "/materials?type=WALL", nil)
	req.SetBasicAuth("lister", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(out) != 1 || out[0]["name"] != "Wallpaper" {
		t.Errorf("filtered result = %v, want only Wallpaper", out)
	}
}

func TestHandleMaterialCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "creator")

	handler := HandleMaterialCreate(app)

	body := `{"name":"Drywall","type":"WALL","pricePerSqM":4.2}`
	req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(body))
	req.SetBasicAuth("creator", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out["id"] == "" {
		t.Error("response has no material id")
	}
}

func TestHandleMaterialCreate_InvalidType(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "creator")

	handler := HandleMaterialCreate(app)

	body := `{"name":"Drywall","type":"ROOF","pricePerSqM":4.2}`
	req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(body))
	req.SetBasicAuth("creator", "Test@1234")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMaterialDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "deleter")
	rec1 := testhelpers.CreateTestMaterial(t, app, user.Id, "Wallpaper", "WALL", 8.20)

	handler := HandleMaterialDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/materials/"+rec1.Id, nil)
	req.SetBasicAuth("deleter", "Test@1234")
	req.SetPathValue("id", rec1.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
