package report

import (
	"context"
	"fmt"

	"venuebook/internal/domain/slot"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Bookings"

var bookingColumns = []string{
	"Booking ID", "Type", "Date", "Starts At", "Ends At",
	"Attendees", "Total", "Status", "Created At",
}

// Exporter renders a destination's bookings as an xlsx workbook.
type Exporter struct {
	bookingQueries queries.BookingQueries
}

func NewExporter(bookingQueries queries.BookingQueries) *Exporter {
	return &Exporter{bookingQueries: bookingQueries}
}

func (e *Exporter) DestinationBookings(ctx context.Context, destinationID uuid.UUID, from, until *slot.Date) (*excelize.File, error) {
	items, err := e.bookingQueries.ListByDestination(ctx, destinationID, from, until)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	writeHeader(f, items)

	for i, item := range items {
		row := i + 3
		setRow(f, row, []any{
			item.ID.String(),
			item.BookableType,
			item.BookedDate,
			item.StartsAt.Format("2006-01-02 15:04"),
			item.EndsAt.Format("2006-01-02 15:04"),
			item.Attendees,
			fmt.Sprintf("%.2f", float64(item.TotalCents)/100),
			item.Status,
			item.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	_ = f.SetColWidth(bookingsSheet, "A", "A", 38)
	_ = f.SetColWidth(bookingsSheet, "B", "I", 18)

	return f, nil
}

func writeHeader(f *excelize.File, items []*queries.BookingListItem) {
	title := "No bookings"
	if len(items) > 0 {
		title = fmt.Sprintf("%s bookings (%d)", items[0].DestinationName, len(items))
	}
	_ = f.SetCellValue(bookingsSheet, "A1", title)
	_ = f.MergeCell(bookingsSheet, "A1", "I1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(bookingsSheet, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, name := range bookingColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(bookingsSheet, cell, name)
		_ = f.SetCellStyle(bookingsSheet, cell, cell, headerStyle)
	}
}

func setRow(f *excelize.File, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(bookingsSheet, cell, v)
	}
}
