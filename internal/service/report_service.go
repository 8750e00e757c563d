package service

import (
	"bytes"
	"fmt"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	orderRepo *repository.OrderRepository
}

func NewReportService(orderRepo *repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

var orderExportHeaders = []string{
	"No. SPK", "Customer", "Jenis Produk", "Kategori", "Nama Produk",
	"Target Selesai", "Nama Kain", "Jumlah Kain", "Lebar Kain",
	"Gramasi", "Lebar Kertas", "Qty", "Diskon", "Status", "Status Produksi", "Dibuat",
}

// ExportOrdersXLSX renders every live order into a workbook and returns
// the serialized bytes.
func (s *ReportService) ExportOrdersXLSX() ([]byte, error) {
	orders, err := s.orderRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range orderExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(orderExportHeaders), 1)
	f.SetCellStyle(sheet, "A1", endCell, headerStyle)

	for row, order := range orders {
		values := orderExportRow(&order)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 22)
	f.SetColWidth(sheet, "C", "P", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func orderExportRow(order *entity.Order) []interface{} {
	customerName := ""
	if order.Customer != nil {
		customerName = order.Customer.Name
	}
	diskon := ""
	if order.Diskon != nil {
		diskon = *order.Diskon
	}
	return []interface{}{
		order.SpkNumber,
		customerName,
		order.JenisProduk,
		order.KategoriProduk,
		order.NamaProduk,
		order.TargetSelesai,
		order.NamaKain,
		order.JumlahKain,
		order.LebarKain,
		order.Gramasi,
		order.LebarKertas,
		order.Qty,
		diskon,
		order.Status,
		order.StatusProduksi,
		formatTimestamp(order.CreatedAt),
	}
}
