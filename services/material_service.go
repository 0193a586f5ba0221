package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const duplicateImportMsg = "Import names cannot contain any duplicates."

// FindMaterialsByOwner returns the owner's full material catalog ordered by
// type, then name.
func FindMaterialsByOwner(app *pocketbase.PocketBase, owner string) ([]Material, error) {
	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return nil, fmt.Errorf("materials collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col,
		"owner = {:owner}",
		"type,name", 0, 0,
		map[string]any{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	materials := make([]Material, 0, len(records))
	for _, r := range records {
		materials = append(materials, materialFromRecord(r))
	}
	return materials, nil
}

// FilterMaterialsByType narrows a catalog to a single surface type, keeping
// order.
func FilterMaterialsByType(materials []Material, t MaterialType) []Material {
	var filtered []Material
	for _, m := range materials {
		if m.Type == t {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ImportMaterials validates the uploaded workbook against the 3-column
// schema, then saves every row for the owner inside one transaction. The
// per-owner unique name index rejects both duplicates inside the file and
// names the owner already has; either way nothing is saved.
func ImportMaterials(app *pocketbase.PocketBase, owner, fileName string, data []byte) error {
	if err := ValidateMaterialImportFile(fileName, data); err != nil {
		return err
	}

	rows := ParseMaterialSheet(data)
	if rows == nil {
		return fmt.Errorf("Error in import file")
	}

	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return fmt.Errorf("materials collection not found: %w", err)
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		for _, row := range rows {
			record := core.NewRecord(col)
			applyMaterialToRecord(record, Material{
				Name:        row.Name,
				Type:        MaterialType(row.Type),
				PricePerSqM: row.Price,
				Owner:       owner,
			})
			if err := txApp.Save(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf(duplicateImportMsg)
		}
		return fmt.Errorf("import materials: %w", err)
	}
	return nil
}

// ImportPriceList validates the uploaded workbook against the legacy
// 2-column schema (name, price) and applies the listed prices to the owner's
// existing materials. Every name must match a catalog entry. The price
// changes are saved in one transaction, then each changed material reprices
// the active calculations that reference it.
func ImportPriceList(app *pocketbase.PocketBase, owner, fileName string, data []byte) error {
	if err := ValidatePriceListImportFile(fileName, data); err != nil {
		return err
	}

	rows := ParsePriceListSheet(data)
	if rows == nil {
		return fmt.Errorf("Error in import file")
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Name] {
			return fmt.Errorf(duplicateImportMsg)
		}
		seen[row.Name] = true
	}

	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return fmt.Errorf("materials collection not found: %w", err)
	}

	changed := make([]Material, 0, len(rows))
	records := make([]*core.Record, 0, len(rows))
	for _, row := range rows {
		recs, err := app.FindRecordsByFilter(col,
			"owner = {:owner} && name = {:name}",
			"", 1, 0,
			map[string]any{"owner": owner, "name": row.Name})
		if err != nil || len(recs) == 0 {
			return fmt.Errorf("Error with Material")
		}
		m := materialFromRecord(recs[0])
		m.PricePerSqM = row.Price
		applyMaterialToRecord(recs[0], m)
		changed = append(changed, m)
		records = append(records, recs[0])
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		for _, rec := range records {
			if err := txApp.Save(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import price list: %w", err)
	}

	for _, m := range changed {
		if err := ApplyMaterialPriceChange(app, m, owner); err != nil {
			return err
		}
	}
	return nil
}

// CreateMaterial validates and saves a new catalog entry for the owner.
func CreateMaterial(app *pocketbase.PocketBase, m Material) (Material, error) {
	if err := ValidateMaterialProperties(m.Name, m.PricePerSqM); err != nil {
		return Material{}, err
	}
	m.PricePerSqM = RoundAmount(m.PricePerSqM)

	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return Material{}, fmt.Errorf("materials collection not found: %w", err)
	}
	record := core.NewRecord(col)
	applyMaterialToRecord(record, m)
	if err := app.Save(record); err != nil {
		if isUniqueViolation(err) {
			return Material{}, fmt.Errorf("A material with name '%s' already exists.", m.Name)
		}
		return Material{}, fmt.Errorf("save material: %w", err)
	}
	m.ID = record.Id
	return m, nil
}

// UpdateMaterial validates and saves changes to an existing catalog entry,
// then reprices every active calculation that references it.
func UpdateMaterial(app *pocketbase.PocketBase, m Material) error {
	if err := ValidateMaterialProperties(m.Name, m.PricePerSqM); err != nil {
		return err
	}
	m.PricePerSqM = RoundAmount(m.PricePerSqM)

	record, err := app.FindRecordById("materials", m.ID)
	if err != nil {
		return fmt.Errorf("Error with Material")
	}
	if record.GetString("owner") != m.Owner {
		return fmt.Errorf("Error with Material")
	}

	applyMaterialToRecord(record, m)
	if err := app.Save(record); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("A material with name '%s' already exists.", m.Name)
		}
		return fmt.Errorf("save material: %w", err)
	}

	return ApplyMaterialPriceChange(app, m, m.Owner)
}

// DeleteMaterial removes the owner's catalog entry. Rooms keep referencing
// the material by name; they fail to reprice until the name exists again.
func DeleteMaterial(app *pocketbase.PocketBase, owner, id string) error {
	record, err := app.FindRecordById("materials", id)
	if err != nil {
		return fmt.Errorf("Error with Material")
	}
	if record.GetString("owner") != owner {
		return fmt.Errorf("Error with Material")
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err came from the per-owner unique name
// index, either as a raw sqlite error or a pocketbase validation error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "must be unique")
}
