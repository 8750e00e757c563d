package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
)

// orderColumns whitelists the real columns an order update may touch.
// Input keys outside this set are either aliases (resolved below) or
// junk, and never reach the write.
var orderColumns = map[string]bool{
	"no_spk":           true,
	"customer_id":      true,
	"marketing":        true,
	"jenis_produk":     true,
	"kategori_produk":  true,
	"nama_produk":      true,
	"estimasi_selesai": true,
	"nama_kain":        true,
	"jumlah_kain":      true,
	"lebar_kain":       true,
	"kategori_kain":    true,
	"gramasi":          true,
	"lebar_kertas":     true,
	"lebar_file":       true,
	"matching_warna":   true,
	"diskon":           true,
	"keterangan":       true,
	"path":             true,
	"capture":          true,
	"capture_name":     true,
	"qty":              true,
	"status":           true,
	"status_produksi":  true,
}

// fieldAlias maps the legacy camelCase form names onto one canonical
// column. Aliases are consulted in order; the first non-empty value wins
// over whatever the database-style key supplied.
type fieldAlias struct {
	canonical string
	aliases   []string
}

var orderAliases = []fieldAlias{
	{canonical: "estimasi_selesai", aliases: []string{"targetSelesai", "target_selesai"}},
	{canonical: "nama_produk", aliases: []string{"aplikasiProduk"}},
	{canonical: "jumlah_kain", aliases: []string{"fabricLength"}},
	{canonical: "lebar_kain", aliases: []string{"fabricWidth"}},
	{canonical: "gramasi", aliases: []string{"gsmKertas"}},
	{canonical: "lebar_kertas", aliases: []string{"lebarKertas"}},
	{canonical: "lebar_file", aliases: []string{"fileWidth"}},
	{canonical: "path", aliases: []string{"fileDesain"}},
	{canonical: "nama_kain", aliases: []string{"namaBahan"}},
	{canonical: "kategori_produk", aliases: []string{"kategoriProduk"}},
	{canonical: "matching_warna", aliases: []string{"matchingWarna"}},
	{canonical: "status_produksi", aliases: []string{"statusProduksi"}},
	{canonical: "customer_id", aliases: []string{"customerId"}},
}

// Fabric origin intents decided by the normalizer. The relation itself is
// connected by the service, which owns the customer lookups.
const (
	OriginIntentNone     = "none"      // field absent, leave relation alone
	OriginIntentClear    = "clear"     // DTF order, drop the relation
	OriginIntentCustomer = "customer"  // connect to the order's own customer
	OriginIntentSmartone = "smartone"  // connect to the SMARTONE house record
	OriginIntentFreeText = "free_text" // stored in kategori_kain, no relation
)

type FabricOriginIntent struct {
	Kind string
	Raw  string
}

// NormalizedOrderUpdate is the outcome of one resolution pass over a raw
// update payload: a column map ready for a single UPDATE, plus the
// decisions the service has to act on.
type NormalizedOrderUpdate struct {
	Columns  map[string]interface{}
	Origin   FabricOriginIntent
	IsDTF    bool
	Warnings []string
}

// NormalizeOrderUpdate reconciles the legacy dual naming (camelCase form
// fields vs snake_case columns) into one flat column map and applies the
// conditional business rules: DTF fabric clearing, fabric-origin
// resolution, product-flag joining, and the legacy discount/tax
// encodings. existing supplies fallback values for rules that depend on
// the stored record.
func NormalizeOrderUpdate(input map[string]interface{}, existing *entity.Order) *NormalizedOrderUpdate {
	out := &NormalizedOrderUpdate{
		Columns: make(map[string]interface{}),
		Origin:  FabricOriginIntent{Kind: OriginIntentNone},
	}

	// Database-style keys pass through when they name a real column.
	for col := range orderColumns {
		if v, ok := input[col]; ok {
			out.Columns[col] = stringValue(v)
		}
	}

	// Form-style aliases win when present and non-empty.
	for _, fa := range orderAliases {
		for _, name := range fa.aliases {
			if s := stringValue(input[name]); s != "" {
				out.Columns[fa.canonical] = s
				break
			}
		}
	}

	// Product type flags arrive as a named-boolean object; serialize in
	// canonical order, with the DTF pass count appended when selected.
	if flags, ok := input["jenisProduk"].(map[string]interface{}); ok {
		var parts []string
		for _, name := range entity.ProductTypeOrder {
			if b, _ := flags[name].(bool); b {
				parts = append(parts, name)
			}
		}
		joined := strings.Join(parts, ",")
		if containsString(parts, entity.ProductDTF) {
			if pass := stringValue(input["dtfPass"]); pass == entity.DTFPass4 || pass == entity.DTFPass6 {
				joined += " " + pass
			}
		}
		out.Columns["jenis_produk"] = joined
	}

	out.IsDTF = detectDTF(input, out.Columns, existing)

	rawOrigin := stringValue(input["asalBahan"])
	if rawOrigin == "" {
		rawOrigin = stringValue(input["asal_bahan"])
	}

	if out.IsDTF {
		// DTF orders never reference fabric, regardless of what was
		// supplied alongside.
		out.Columns["nama_kain"] = ""
		out.Columns["jumlah_kain"] = ""
		out.Columns["lebar_kain"] = ""
		out.Origin = FabricOriginIntent{Kind: OriginIntentClear}
	} else if rawOrigin != "" {
		switch rawOrigin {
		case entity.OriginCustomer:
			out.Origin = FabricOriginIntent{Kind: OriginIntentCustomer, Raw: rawOrigin}
		case entity.OriginSmartone:
			out.Origin = FabricOriginIntent{Kind: OriginIntentSmartone, Raw: rawOrigin}
		default:
			out.Origin = FabricOriginIntent{Kind: OriginIntentFreeText, Raw: rawOrigin}
			out.Columns["kategori_kain"] = rawOrigin
		}
	}

	resolveDiscount(input, out)
	resolveTax(input, existing, out)

	return out
}

// detectDTF checks the three independent signals in priority order: the
// serialized product-type string, the flags object, and the explicit
// product category. Falls back to the stored record when the payload
// does not touch a signal.
func detectDTF(input map[string]interface{}, cols map[string]interface{}, existing *entity.Order) bool {
	jenis, jenisSupplied := cols["jenis_produk"].(string)
	if !jenisSupplied && existing != nil {
		jenis = existing.JenisProduk
	}
	if strings.Contains(jenis, entity.ProductDTF) {
		return true
	}

	if flags, ok := input["jenisProduk"].(map[string]interface{}); ok {
		if b, _ := flags[entity.ProductDTF].(bool); b {
			return true
		}
	}

	kategori, kategoriSupplied := cols["kategori_produk"].(string)
	if !kategoriSupplied && existing != nil {
		kategori = existing.KategoriProduk
	}
	return kategori == entity.ProductDTF
}

// resolveDiscount encodes the typed discount selector into the legacy
// diskon column: "<value>%" for percentage, the raw value for fixed, and
// NULL otherwise — absence explicitly clears any prior value.
func resolveDiscount(input map[string]interface{}, out *NormalizedOrderUpdate) {
	dtype := stringValue(input["discountType"])
	if dtype == "" {
		dtype = stringValue(input["discount_type"])
	}
	dval := stringValue(input["discountValue"])
	if dval == "" {
		dval = stringValue(input["discount_value"])
	}

	switch dtype {
	case "percentage":
		if dval != "" {
			out.Columns["diskon"] = dval + "%"
			return
		}
	case "fixed":
		if dval != "" {
			out.Columns["diskon"] = dval
			return
		}
	}
	out.Columns["diskon"] = nil
}

// resolveTax encodes the tax selector into the shared keterangan column
// as "Tax: N%". No dedicated tax column exists in the legacy schema.
// When no tax field is supplied at all, an existing annotation is left
// untouched.
func resolveTax(input map[string]interface{}, existing *entity.Order, out *NormalizedOrderUpdate) {
	enabled, supplied := boolValue(input, "pajak")
	if !supplied {
		enabled, supplied = boolValue(input, "tax")
	}

	pct := stringValue(input["taxPercentage"])
	if pct == "" {
		pct = stringValue(input["tax_percentage"])
	}

	if !supplied {
		// Preserve a stored "Tax:" annotation unless the payload wrote
		// keterangan directly.
		if _, touched := out.Columns["keterangan"]; !touched {
			return
		}
		if existing != nil && existing.Keterangan != nil && strings.Contains(*existing.Keterangan, "Tax:") {
			if s, _ := out.Columns["keterangan"].(string); s == "" {
				delete(out.Columns, "keterangan")
			}
		}
		return
	}

	if enabled && pct != "" {
		out.Columns["keterangan"] = fmt.Sprintf("Tax: %s%%", pct)
		return
	}
	out.Columns["keterangan"] = nil
}

// stringValue coerces a JSON scalar to its string form; numbers keep
// their plain decimal representation.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func boolValue(input map[string]interface{}, key string) (value, supplied bool) {
	v, ok := input[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
