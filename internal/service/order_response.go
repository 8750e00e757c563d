package service

import (
	"context"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
)

// TimestampLayout is the fixed textual format all date fields are
// serialized with.
const TimestampLayout = "2006-01-02 15:04:05"

// MarketingRef is the resolved form of the polymorphic marketing column:
// either a known user or a free-text display name.
type MarketingRef struct {
	Kind string `json:"kind"` // "user" or "free_text"
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CustomerSummary struct {
	ID   string `json:"id"`
	Code string `json:"customer_code"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// OrderResponse is the client-facing order shape: every date rendered
// with TimestampLayout and every identifier a plain string.
type OrderResponse struct {
	ID             string           `json:"id"`
	SpkNumber      string           `json:"no_spk"`
	CustomerID     string           `json:"customer_id"`
	Marketing      *MarketingRef    `json:"marketing,omitempty"`
	JenisProduk    string           `json:"jenis_produk"`
	KategoriProduk string           `json:"kategori_produk"`
	NamaProduk     string           `json:"nama_produk"`
	TargetSelesai  string           `json:"estimasi_selesai"`
	NamaKain       string           `json:"nama_kain"`
	JumlahKain     string           `json:"jumlah_kain"`
	LebarKain      string           `json:"lebar_kain"`
	KategoriKain   string           `json:"kategori_kain"`
	Gramasi        string           `json:"gramasi"`
	LebarKertas    string           `json:"lebar_kertas"`
	LebarFile      string           `json:"lebar_file"`
	MatchingWarna  string           `json:"matching_warna"`
	Diskon         *string          `json:"diskon"`
	Keterangan     *string          `json:"keterangan"`
	Path           string           `json:"path"`
	Capture        string           `json:"capture"`
	CaptureName    string           `json:"capture_name"`
	Qty            string           `json:"qty"`
	Status         string           `json:"status"`
	StatusProduksi string           `json:"status_produksi"`
	Version        int              `json:"version"`
	Customer       *CustomerSummary `json:"customer,omitempty"`
	AsalBahan      *CustomerSummary `json:"asal_bahan,omitempty"`
	Designer       *UserSummary     `json:"designer,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

func (s *OrderService) buildResponse(ctx context.Context, order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		SpkNumber:      order.SpkNumber,
		CustomerID:     order.CustomerID,
		JenisProduk:    order.JenisProduk,
		KategoriProduk: order.KategoriProduk,
		NamaProduk:     order.NamaProduk,
		TargetSelesai:  order.TargetSelesai,
		NamaKain:       order.NamaKain,
		JumlahKain:     order.JumlahKain,
		LebarKain:      order.LebarKain,
		KategoriKain:   order.KategoriKain,
		Gramasi:        order.Gramasi,
		LebarKertas:    order.LebarKertas,
		LebarFile:      order.LebarFile,
		MatchingWarna:  order.MatchingWarna,
		Diskon:         order.Diskon,
		Keterangan:     order.Keterangan,
		Path:           order.Path,
		Capture:        order.Capture,
		CaptureName:    order.CaptureName,
		Qty:            order.Qty,
		Status:         order.Status,
		StatusProduksi: order.StatusProduksi,
		Version:        order.Version,
		Marketing:      s.resolveMarketing(ctx, order.Marketing),
		CreatedAt:      formatTimestamp(order.CreatedAt),
		UpdatedAt:      formatTimestamp(order.UpdatedAt),
	}

	if order.Customer != nil {
		resp.Customer = &CustomerSummary{
			ID:   order.Customer.ID,
			Code: order.Customer.CustomerCode,
			Name: order.Customer.Name,
		}
	}
	if order.AsalBahan != nil {
		resp.AsalBahan = &CustomerSummary{
			ID:   order.AsalBahan.ID,
			Code: order.AsalBahan.CustomerCode,
			Name: order.AsalBahan.Name,
		}
	}
	if order.Designer != nil {
		resp.Designer = &UserSummary{
			ID:   order.Designer.ID,
			Name: order.Designer.Name,
			Role: order.Designer.Role,
		}
	}
	return resp
}

// resolveMarketing probes the user table once; a miss means the legacy
// column held a plain display name.
func (s *OrderService) resolveMarketing(ctx context.Context, marketing string) *MarketingRef {
	if marketing == "" {
		return nil
	}
	if user, err := s.userRepo.GetByID(marketing); err == nil {
		return &MarketingRef{Kind: "user", ID: user.ID, Name: user.Name}
	}
	return &MarketingRef{Kind: "free_text", Name: marketing}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
