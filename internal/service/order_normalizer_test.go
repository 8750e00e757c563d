package service

import (
	"testing"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeOrderUpdate_AliasResolution(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]interface{}
		wantCol string
		wantVal interface{}
	}{
		{
			name:    "camelCase alias maps to canonical column",
			input:   map[string]interface{}{"targetSelesai": "2026-09-15"},
			wantCol: "estimasi_selesai",
			wantVal: "2026-09-15",
		},
		{
			name:    "snake_case key passes through",
			input:   map[string]interface{}{"estimasi_selesai": "2026-09-15"},
			wantCol: "estimasi_selesai",
			wantVal: "2026-09-15",
		},
		{
			name: "non-empty alias wins over snake_case key",
			input: map[string]interface{}{
				"lebar_file": "100",
				"fileWidth":  "160",
			},
			wantCol: "lebar_file",
			wantVal: "160",
		},
		{
			name: "empty alias does not clobber snake_case key",
			input: map[string]interface{}{
				"lebar_file": "100",
				"fileWidth":  "",
			},
			wantCol: "lebar_file",
			wantVal: "100",
		},
		{
			name:    "numeric value is coerced to string",
			input:   map[string]interface{}{"fabricLength": float64(25)},
			wantCol: "jumlah_kain",
			wantVal: "25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeOrderUpdate(tt.input, nil)
			assert.Equal(t, tt.wantVal, out.Columns[tt.wantCol])
		})
	}
}

func TestNormalizeOrderUpdate_UnknownKeysDropped(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"no_spk":       "SPK-001",
		"totallyBogus": "x",
		"drop_table":   "y",
	}, nil)

	assert.Equal(t, "SPK-001", out.Columns["no_spk"])
	assert.NotContains(t, out.Columns, "totallyBogus")
	assert.NotContains(t, out.Columns, "drop_table")
}

func TestNormalizeOrderUpdate_ProductFlagJoining(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"jenisProduk": map[string]interface{}{
			"PRESS": true,
			"PRINT": true,
			"DTF":   false,
		},
	}, nil)
	// canonical order, not input order
	assert.Equal(t, "PRINT,PRESS", out.Columns["jenis_produk"])
	assert.False(t, out.IsDTF)
}

func TestNormalizeOrderUpdate_DTFPassSuffix(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"jenisProduk": map[string]interface{}{
			"PRINT": true,
			"DTF":   true,
		},
		"dtfPass": "4 PASS",
	}, nil)
	assert.Equal(t, "PRINT,DTF 4 PASS", out.Columns["jenis_produk"])
	assert.True(t, out.IsDTF)
}

func TestNormalizeOrderUpdate_DTFPassIgnoredWithoutDTF(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"jenisProduk": map[string]interface{}{"PRINT": true},
		"dtfPass":     "4 PASS",
	}, nil)
	assert.Equal(t, "PRINT", out.Columns["jenis_produk"])
}

func TestNormalizeOrderUpdate_DTFClearsFabric(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"jenisProduk": map[string]interface{}{"DTF": true},
		"namaBahan":   "Cotton Combed",
		"fabricWidth": "150",
		"asalBahan":   "CUSTOMER",
	}, nil)

	assert.True(t, out.IsDTF)
	assert.Equal(t, "", out.Columns["nama_kain"])
	assert.Equal(t, "", out.Columns["jumlah_kain"])
	assert.Equal(t, "", out.Columns["lebar_kain"])
	// origin is forced to clear even though CUSTOMER was supplied
	assert.Equal(t, OriginIntentClear, out.Origin.Kind)
}

func TestNormalizeOrderUpdate_DTFDetectedFromStoredRecord(t *testing.T) {
	existing := &entity.Order{JenisProduk: "PRINT,DTF 6 PASS"}
	out := NormalizeOrderUpdate(map[string]interface{}{
		"namaBahan": "Cotton",
	}, existing)

	assert.True(t, out.IsDTF)
	assert.Equal(t, "", out.Columns["nama_kain"])
}

func TestNormalizeOrderUpdate_DTFFromKategoriProduk(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"kategoriProduk": "DTF",
	}, nil)
	assert.True(t, out.IsDTF)
}

func TestNormalizeOrderUpdate_FabricOrigin(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		wantKind string
	}{
		{"customer keyword", "CUSTOMER", OriginIntentCustomer},
		{"smartone keyword", "SMARTONE", OriginIntentSmartone},
		{"free text", "Toko Kain Jaya", OriginIntentFreeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeOrderUpdate(map[string]interface{}{"asalBahan": tt.raw}, nil)
			assert.Equal(t, tt.wantKind, out.Origin.Kind)
		})
	}
}

func TestNormalizeOrderUpdate_FreeTextOriginStoredAsKategoriKain(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{"asalBahan": "Toko Kain Jaya"}, nil)
	assert.Equal(t, "Toko Kain Jaya", out.Columns["kategori_kain"])
}

func TestNormalizeOrderUpdate_OriginAbsent(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{"qty": "10"}, nil)
	assert.Equal(t, OriginIntentNone, out.Origin.Kind)
}

func TestNormalizeOrderUpdate_Discount(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]interface{}
		want  interface{}
	}{
		{
			name:  "percentage gets suffix",
			input: map[string]interface{}{"discountType": "percentage", "discountValue": "10"},
			want:  "10%",
		},
		{
			name:  "fixed stays raw",
			input: map[string]interface{}{"discountType": "fixed", "discountValue": "50000"},
			want:  "50000",
		},
		{
			name:  "absent clears prior value",
			input: map[string]interface{}{"qty": "5"},
			want:  nil,
		},
		{
			name:  "type without value clears",
			input: map[string]interface{}{"discountType": "percentage"},
			want:  nil,
		},
		{
			name:  "snake_case variants accepted",
			input: map[string]interface{}{"discount_type": "percentage", "discount_value": "15"},
			want:  "15%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeOrderUpdate(tt.input, nil)
			require.Contains(t, out.Columns, "diskon")
			assert.Equal(t, tt.want, out.Columns["diskon"])
		})
	}
}

func TestNormalizeOrderUpdate_TaxAnnotation(t *testing.T) {
	t.Run("enabled with percentage writes annotation", func(t *testing.T) {
		out := NormalizeOrderUpdate(map[string]interface{}{
			"pajak":         true,
			"taxPercentage": "11",
		}, nil)
		assert.Equal(t, "Tax: 11%", out.Columns["keterangan"])
	})

	t.Run("disabled clears annotation", func(t *testing.T) {
		out := NormalizeOrderUpdate(map[string]interface{}{"pajak": false}, nil)
		require.Contains(t, out.Columns, "keterangan")
		assert.Nil(t, out.Columns["keterangan"])
	})

	t.Run("enabled without percentage clears", func(t *testing.T) {
		out := NormalizeOrderUpdate(map[string]interface{}{"pajak": true}, nil)
		require.Contains(t, out.Columns, "keterangan")
		assert.Nil(t, out.Columns["keterangan"])
	})

	t.Run("absent tax field preserves stored annotation", func(t *testing.T) {
		existing := &entity.Order{Keterangan: strPtr("Tax: 11%")}
		out := NormalizeOrderUpdate(map[string]interface{}{"qty": "10"}, existing)
		assert.NotContains(t, out.Columns, "keterangan")
	})

	t.Run("empty keterangan does not erase stored annotation", func(t *testing.T) {
		existing := &entity.Order{Keterangan: strPtr("Tax: 11%")}
		out := NormalizeOrderUpdate(map[string]interface{}{"keterangan": ""}, existing)
		assert.NotContains(t, out.Columns, "keterangan")
	})

	t.Run("explicit keterangan wins when no stored annotation", func(t *testing.T) {
		out := NormalizeOrderUpdate(map[string]interface{}{"keterangan": "rush job"}, nil)
		assert.Equal(t, "rush job", out.Columns["keterangan"])
	})

	t.Run("tax alias key accepted", func(t *testing.T) {
		out := NormalizeOrderUpdate(map[string]interface{}{
			"tax":            true,
			"tax_percentage": "10",
		}, nil)
		assert.Equal(t, "Tax: 10%", out.Columns["keterangan"])
	})
}

func TestNormalizeOrderUpdate_NonDTFKeepsFabric(t *testing.T) {
	out := NormalizeOrderUpdate(map[string]interface{}{
		"jenisProduk": map[string]interface{}{"PRINT": true, "PRESS": true},
		"namaBahan":   "Scuba",
		"fabricWidth": "160",
	}, nil)

	assert.False(t, out.IsDTF)
	assert.Equal(t, "Scuba", out.Columns["nama_kain"])
	assert.Equal(t, "160", out.Columns["lebar_kain"])
}
