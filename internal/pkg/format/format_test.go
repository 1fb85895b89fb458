package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	cases := map[int64]string{
		0:        "Rp0",
		500:      "Rp500",
		1500:     "Rp1.500",
		1500000:  "Rp1.500.000",
		25000000: "Rp25.000.000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, Rupiah(decimal.NewFromInt(amount)))
	}

	assert.Equal(t, "-Rp1.500", Rupiah(decimal.NewFromInt(-1500)))
	assert.Equal(t, "Rp1.500", Rupiah(decimal.NewFromFloat(1500.75)), "fractions are dropped")
}

func TestTanggal(t *testing.T) {
	assert.Equal(t, "2 Januari 2026", Tanggal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 Agustus 2026", Tanggal(time.Date(2026, 8, 17, 23, 59, 0, 0, time.UTC)))
}
