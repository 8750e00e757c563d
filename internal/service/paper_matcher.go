package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
)

// specTolerance is the relative tolerance band for GSM, width and length
// checks, taken against the scanned roll's value.
const specTolerance = 0.05

// StockSummary is the client-facing shape of a scanned roll.
type StockSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Gsm             float64 `json:"gsm"`
	Width           float64 `json:"width"`
	Length          float64 `json:"length"`
	RemainingLength float64 `json:"remainingLength"`
	Approved        bool    `json:"approved"`
}

// MatchResult is the matcher verdict. Errors itemizes every failed check
// so the operator sees exactly what mismatched.
type MatchResult struct {
	Valid  bool         `json:"valid"`
	Errors []string     `json:"errors,omitempty"`
	Stock  StockSummary `json:"stock"`
}

// MatchPaperSpec decides whether a scanned roll satisfies a requested
// paper specification. Type must match exactly (case-insensitive), GSM
// and width within the tolerance band, and length passes when the roll's
// length is untracked (zero), covers the request, or is within
// tolerance. The roll must also be approved for use.
func MatchPaperSpec(stock *entity.PaperStock, paperType string, gsm, width, length float64) MatchResult {
	var errs []string

	if !strings.EqualFold(stock.PaperType, paperType) {
		errs = append(errs, fmt.Sprintf("Paper type mismatch: requested %s, scanned roll is %s", paperType, stock.PaperType))
	}
	if !withinTolerance(gsm, stock.Gsm) {
		errs = append(errs, fmt.Sprintf("GSM mismatch: requested %s, scanned roll is %s (tolerance 5%%)",
			formatNumber(gsm), formatNumber(stock.Gsm)))
	}
	if !withinTolerance(width, stock.Width) {
		errs = append(errs, fmt.Sprintf("Width mismatch: requested %s cm, scanned roll is %s cm (tolerance 5%%)",
			formatNumber(width), formatNumber(stock.Width)))
	}
	if !lengthMatches(length, stock.Length) {
		errs = append(errs, fmt.Sprintf("Length mismatch: requested %s m, scanned roll has %s m",
			formatNumber(length), formatNumber(stock.Length)))
	}
	if !stock.Approved {
		errs = append(errs, "Paper stock not available: roll has not been approved")
	}

	return MatchResult{
		Valid:  len(errs) == 0,
		Errors: errs,
		Stock:  summarizeStock(stock),
	}
}

func withinTolerance(requested, actual float64) bool {
	return math.Abs(requested-actual) <= actual*specTolerance
}

// lengthMatches treats a zero stock length as untracked, which always
// passes. A longer roll than requested also passes.
func lengthMatches(requested, actual float64) bool {
	if actual == 0 {
		return true
	}
	if actual >= requested {
		return true
	}
	return withinTolerance(requested, actual)
}

func summarizeStock(stock *entity.PaperStock) StockSummary {
	return StockSummary{
		ID:              stock.ID,
		Name:            stock.Name,
		Type:            stock.PaperType,
		Gsm:             stock.Gsm,
		Width:           stock.Width,
		Length:          stock.Length,
		RemainingLength: stock.RemainingLength,
		Approved:        stock.Approved,
	}
}

func formatNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
