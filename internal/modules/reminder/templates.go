package reminder

import (
	"fmt"
	"math/rand"

	"kosku/internal/domain"
	"kosku/internal/pkg/format"
)

// Leads are the reminder boundaries in days before the rental end date.
var Leads = []int{1, 7, 15, 30}

type templateFunc func(b *domain.Booking) string

// Each lead has its own set of message variants so tenants do not receive the
// exact same text twice in a row.
var templates = map[int][]templateFunc{
	1: {
		func(b *domain.Booking) string {
			return fmt.Sprintf("Halo %s, sewa kamar %s Anda berakhir BESOK (%s). Mohon segera konfirmasi perpanjangan atau pengosongan kamar.",
				b.ContactInfo.Name, b.Room.RoomNumber, format.Tanggal(b.RentalPeriod.EndDate))
		},
		func(b *domain.Booking) string {
			return fmt.Sprintf("Pengingat terakhir: masa sewa kamar %s atas nama %s berakhir besok, %s. Hubungi pengelola untuk perpanjangan.",
				b.Room.RoomNumber, b.ContactInfo.Name, format.Tanggal(b.RentalPeriod.EndDate))
		},
	},
	7: {
		func(b *domain.Booking) string {
			return fmt.Sprintf("Halo %s, masa sewa kamar %s akan berakhir dalam 7 hari (%s). Silakan konfirmasi jika ingin memperpanjang.",
				b.ContactInfo.Name, b.Room.RoomNumber, format.Tanggal(b.RentalPeriod.EndDate))
		},
		func(b *domain.Booking) string {
			return fmt.Sprintf("Seminggu lagi! Sewa kamar %s (a.n. %s) berakhir pada %s. Jangan lupa atur perpanjangan ya.",
				b.Room.RoomNumber, b.ContactInfo.Name, format.Tanggal(b.RentalPeriod.EndDate))
		},
		func(b *domain.Booking) string {
			return fmt.Sprintf("Halo %s, tersisa 7 hari masa sewa kamar %s sampai %s. Balas pesan ini untuk perpanjangan.",
				b.ContactInfo.Name, b.Room.RoomNumber, format.Tanggal(b.RentalPeriod.EndDate))
		},
	},
	15: {
		func(b *domain.Booking) string {
			return fmt.Sprintf("Halo %s, masa sewa kamar %s berakhir dalam 15 hari (%s). Info perpanjangan bisa langsung ke pengelola.",
				b.ContactInfo.Name, b.Room.RoomNumber, format.Tanggal(b.RentalPeriod.EndDate))
		},
		func(b *domain.Booking) string {
			return fmt.Sprintf("Dua minggu lagi sewa kamar %s (a.n. %s) berakhir, tepatnya %s. Yuk rencanakan perpanjangan dari sekarang.",
				b.Room.RoomNumber, b.ContactInfo.Name, format.Tanggal(b.RentalPeriod.EndDate))
		},
	},
	30: {
		func(b *domain.Booking) string {
			return fmt.Sprintf("Halo %s, masa sewa kamar %s akan berakhir sebulan lagi pada %s. Kami info lebih awal supaya ada waktu mengatur perpanjangan.",
				b.ContactInfo.Name, b.Room.RoomNumber, format.Tanggal(b.RentalPeriod.EndDate))
		},
		func(b *domain.Booking) string {
			return fmt.Sprintf("Pemberitahuan: sewa kamar %s atas nama %s berakhir %s (30 hari lagi). Hubungi kami untuk opsi perpanjangan.",
				b.Room.RoomNumber, b.ContactInfo.Name, format.Tanggal(b.RentalPeriod.EndDate))
		},
	},
}

// pick selects one template variant uniformly at random. The rand source is
// injected so tests can pin the choice.
func pick(set []templateFunc, rng *rand.Rand) templateFunc {
	if len(set) == 1 {
		return set[0]
	}
	return set[rng.Intn(len(set))]
}

// paymentLine appends the outstanding balance when the booking still owes
// money, so the reminder doubles as a payment nudge.
func paymentLine(b *domain.Booking) string {
	if b.Pricing == nil {
		return ""
	}
	sisa := b.Pricing.Amount.Sub(b.Pricing.PaidAmount)
	if sisa.Sign() <= 0 {
		return ""
	}
	return fmt.Sprintf(" Sisa pembayaran: %s.", format.Rupiah(sisa))
}
