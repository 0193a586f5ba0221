package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateCalculationPDF creates a PDF document for a priced calculation
// using maroto/v2: a title, the pricing date, one table row per room, and a
// totals section. It returns the raw PDF bytes or an error.
func GenerateCalculationPDF(calc *Calculation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addCalculationHeader(m, calc)
	addRoomTableHeader(m)
	for _, r := range calc.Rooms {
		addRoomTableRow(m, r)
	}
	addCalculationSummary(m, calc)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addCalculationHeader adds the calculation name and pricing date.
func addCalculationHeader(m core.Maroto, calc *Calculation) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(calc.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Rooms: %d", calc.RoomCount), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Calculated: %s", calc.CalculatedAt.Format(exportDateLayout)), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addRoomTableHeader adds the column header row for the room table.
func addRoomTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(
				text.New("Room", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Floor", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Wall", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Ceiling", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Area", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Price", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addRoomTableRow adds one room's surface prices and totals.
func addRoomTableRow(m core.Maroto, r *Room) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New(r.Number, leftText)),
			col.New(2).Add(text.New(FormatAmount(r.FloorPrice), rightText)),
			col.New(2).Add(text.New(FormatAmount(r.WallPrice), rightText)),
			col.New(2).Add(text.New(FormatAmount(r.CeilingPrice), rightText)),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f", r.TotalArea), rightText)),
			col.New(2).Add(text.New(FormatAmount(r.TotalPrice), rightText)),
		),
	)
}

// addCalculationSummary adds the total area and price section at the bottom.
func addCalculationSummary(m core.Maroto, calc *Calculation) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Total Area (sq m)", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%.2f", calc.TotalArea), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Total Price", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatAmount(calc.TotalPrice), valueStyle),
			).WithStyle(summaryCell),
		),
	)
}
