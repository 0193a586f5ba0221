package services

import "testing"

func TestParseMaterialSheet(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Ceramic tile", "FLOOR", 12.69},
		{"Wallpaper", "WALL", 8.2},
	})

	rows := ParseMaterialSheet(data)
	if rows == nil {
		t.Fatal("ParseMaterialSheet() = nil, want rows")
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Name != "Ceramic tile" || first.Type != "FLOOR" || first.Price != 12.69 {
		t.Errorf("first row = %+v, want {Ceramic tile FLOOR 12.69}", first)
	}
	second := rows[1]
	if second.Name != "Wallpaper" || second.Type != "WALL" || second.Price != 8.2 {
		t.Errorf("second row = %+v, want {Wallpaper WALL 8.2}", second)
	}
}

func TestParseMaterialSheet_RoundsPrices(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Wallpaper", "WALL", 8.205},
	})
	rows := ParseMaterialSheet(data)
	if rows == nil {
		t.Fatal("ParseMaterialSheet() = nil, want rows")
	}
	if rows[0].Price != 8.21 {
		t.Errorf("Price = %v, want 8.21", rows[0].Price)
	}
}

func TestParseMaterialSheet_Unreadable(t *testing.T) {
	if rows := ParseMaterialSheet([]byte("not a workbook")); rows != nil {
		t.Errorf("ParseMaterialSheet() = %v, want nil", rows)
	}
}

func TestParseMaterialSheet_WrongShape(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Wallpaper", "WALL"},
	})
	if rows := ParseMaterialSheet(data); rows != nil {
		t.Errorf("ParseMaterialSheet() = %v, want nil for 2-column rows", rows)
	}
}

func TestParseMaterialSheet_NonFinitePrice(t *testing.T) {
	// A crafted untyped price cell with non-finite text must fail the whole
	// parse, even when a caller skipped validation.
	row := `<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1"><v>NaN</v></c></row>`
	data := buildCraftedWorkbook(t, row, []string{"Wallpaper", "WALL"})
	if rows := ParseMaterialSheet(data); rows != nil {
		t.Errorf("ParseMaterialSheet() = %v, want nil", rows)
	}
}

func TestParsePriceListSheet(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Ceramic tile", 12.695},
		{"Wallpaper", 8.2},
	})

	rows := ParsePriceListSheet(data)
	if rows == nil {
		t.Fatal("ParsePriceListSheet() = nil, want rows")
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Ceramic tile" || rows[0].Price != 12.7 {
		t.Errorf("first row = %+v, want {Ceramic tile 12.7}", rows[0])
	}
	if rows[1].Name != "Wallpaper" || rows[1].Price != 8.2 {
		t.Errorf("second row = %+v, want {Wallpaper 8.2}", rows[1])
	}
}

func TestParsePriceListSheet_WrongShape(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Wallpaper", "WALL", 8.2},
	})
	if rows := ParsePriceListSheet(data); rows != nil {
		t.Errorf("ParsePriceListSheet() = %v, want nil for 3-column rows", rows)
	}
}
