package export

import (
	"fmt"
	"io"

	"camtourvisor/internal/model"

	"github.com/xuri/excelize/v2"
)

// BookingsSheet - имя листа с бронированиями.
const BookingsSheet = "Bookings"

var bookingHeaders = []interface{}{
	"ID", "Destination", "User", "Travel date", "Travelers", "Status",
	"Phone", "Email", "Special requests", "Total cost", "Created",
}

// BookingsWorkbook строит книгу Excel: строка заголовков и по строке на бронирование.
func BookingsWorkbook(bookings []model.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", BookingsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(BookingsSheet, "A1", &bookingHeaders); err != nil {
		return nil, err
	}
	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			b.DestinationName,
			b.Username,
			b.TravelDate.Format("2006-01-02"),
			b.NumberOfTravelers,
			b.Status,
			b.ContactInfo.Phone,
			b.ContactInfo.Email,
			b.SpecialRequests,
			b.TotalCost,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(BookingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("не удалось записать строку %d: %w", i+2, err)
		}
	}
	return f, nil
}

// WriteBookings записывает книгу бронирований в w.
func WriteBookings(w io.Writer, bookings []model.Booking) error {
	f, err := BookingsWorkbook(bookings)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}
