package entity

import (
	"time"
)

// Product type flags. jenis_produk stores the selected set comma-joined
// in this order, optionally followed by the DTF pass count
// (e.g. "PRINT,PRESS,DTF 4 PASS").
const (
	ProductPrint   = "PRINT"
	ProductPress   = "PRESS"
	ProductCutting = "CUTTING"
	ProductDTF     = "DTF"
	ProductSewing  = "SEWING"
)

// ProductTypeOrder is the canonical join order for jenis_produk.
var ProductTypeOrder = []string{ProductPrint, ProductPress, ProductCutting, ProductDTF, ProductSewing}

// DTF pass count selector. Only these two values are accepted.
const (
	DTFPass4 = "4 PASS"
	DTFPass6 = "6 PASS"
)

// OrderStatus values used by the intake/design workflow.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusDesign     = "DESIGN"
	OrderStatusApproved   = "APPROVED"
	OrderStatusProduction = "PRODUCTION"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

// Production stage statuses stored in status_produksi.
const (
	ProduksiPrint   = "PRINT"
	ProduksiPress   = "PRESS"
	ProduksiCutting = "CUTTING"
	ProduksiDTF     = "DTF"
	ProduksiSewing  = "SEWING"
	ProduksiDone    = "DONE"
)

// Matching warna is stored as legacy display strings, not booleans.
const (
	MatchingAda      = "ADA"
	MatchingTidakAda = "TIDAK ADA"
)

// Fabric origin selector values accepted on update. CUSTOMER and SMARTONE
// resolve to a customer relation; anything else lands in kategori_kain.
const (
	OriginCustomer = "CUSTOMER"
	OriginSmartone = "SMARTONE"
)

// Order is one manufacturing job (SPK).
//
// Several columns keep the legacy encodings of the original schema:
// diskon holds either "10%" or a flat amount, keterangan carries the
// "Tax: N%" annotation, matching_warna holds ADA/TIDAK ADA. The service
// layer models these as typed values and serializes at this boundary.
type Order struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SpkNumber  string `json:"spk_number" gorm:"column:no_spk;size:50;uniqueIndex"`
	CustomerID string `json:"customer_id" gorm:"type:uuid;not null;index"`

	// Marketing is polymorphic in the legacy data: either a user id or a
	// free-text display name. Resolved to a tagged variant at read time.
	Marketing string `json:"marketing" gorm:"size:100"`

	JenisProduk    string `json:"jenis_produk" gorm:"size:100"`
	KategoriProduk string `json:"kategori_produk" gorm:"size:50"`
	NamaProduk     string `json:"nama_produk" gorm:"size:200"`
	TargetSelesai  string `json:"estimasi_selesai" gorm:"column:estimasi_selesai;size:50"`

	// Fabric. Always empty for DTF orders.
	NamaKain     string  `json:"nama_kain" gorm:"size:100"`
	JumlahKain   string  `json:"jumlah_kain" gorm:"size:50"`
	LebarKain    string  `json:"lebar_kain" gorm:"size:50"`
	AsalBahanID  *string `json:"asal_bahan_id" gorm:"type:uuid;index"`
	KategoriKain string  `json:"kategori_kain" gorm:"size:100"`

	// Paper.
	Gramasi     string `json:"gramasi" gorm:"size:50"`
	LebarKertas string `json:"lebar_kertas" gorm:"size:50"`
	LebarFile   string `json:"lebar_file" gorm:"size:50"`

	MatchingWarna string  `json:"matching_warna" gorm:"size:20"`
	Diskon        *string `json:"diskon" gorm:"size:50"`
	Keterangan    *string `json:"keterangan" gorm:"type:text"`

	// Design workflow.
	Path        string  `json:"path" gorm:"size:500"`
	Capture     string  `json:"capture" gorm:"size:500"`
	CaptureName string  `json:"capture_name" gorm:"size:200"`
	Qty         string  `json:"qty" gorm:"size:50"`
	DesignerID  *string `json:"designer_id" gorm:"type:uuid"`

	Status         string `json:"status" gorm:"size:30;not null;default:PENDING"`
	StatusProduksi string `json:"status_produksi" gorm:"size:30"`

	// Version guards concurrent edits; stale writes are rejected.
	Version int `json:"version" gorm:"not null;default:0"`

	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Customer  *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	AsalBahan *Customer `json:"asal_bahan,omitempty" gorm:"foreignKey:AsalBahanID"`
	Designer  *User     `json:"designer,omitempty" gorm:"foreignKey:DesignerID"`
}

func (Order) TableName() string {
	return "orders"
}

// ProductionLog records one stage transition of an order.
type ProductionLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID   string    `json:"order_id" gorm:"type:uuid;not null;index"`
	Stage     string    `json:"stage" gorm:"size:30;not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedBy string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt time.Time `json:"created_at"`

	Order *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

func (ProductionLog) TableName() string {
	return "production_logs"
}
