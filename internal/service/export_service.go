package service

import (
	"bytes"
	"fmt"

	"github.com/rvbarade2024-dev/tour/internal/model"

	"github.com/xuri/excelize/v2"
)

// BookingLister — выборка броней по планам агентства.
type BookingLister interface {
	ListForAgency(agencyID int) ([]model.BookingExportRow, error)
}

// ExportService формирует xlsx-выгрузку броней для агентства.
type ExportService struct {
	bookings  BookingLister
	sheetName string
}

// NewExportService создает новый сервис выгрузки.
func NewExportService(bookings BookingLister, sheetName string) *ExportService {
	if sheetName == "" {
		sheetName = "Bookings"
	}
	return &ExportService{bookings: bookings, sheetName: sheetName}
}

var exportHeaders = []string{"ID", "Plan", "Customer", "Travel date", "Seats", "Status", "Created"}

// ExportAgencyBookings возвращает содержимое xlsx-файла с бронями агентства.
func (s *ExportService) ExportAgencyBookings(agencyID int) (*bytes.Buffer, error) {
	rows, err := s.bookings.ListForAgency(agencyID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, s.sheetName); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(s.sheetName, cell, header)
	}
	for i, row := range rows {
		values := []interface{}{
			row.ID, row.PlanTitle, row.Customer, row.TravelDate,
			row.Seats, row.Status, row.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(s.sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("не удалось сформировать файл выгрузки: %w", err)
	}
	return buf, nil
}
