package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Rupiah renders an amount as "Rp1.500.000" with dot thousand separators.
// Fractional parts are dropped; kos prices are whole rupiah.
func Rupiah(amount decimal.Decimal) string {
	whole := amount.Truncate(0).String()

	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	out := "Rp" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// Tanggal renders a date as "2 Januari 2026".
func Tanggal(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
