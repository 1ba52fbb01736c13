package licensing

import (
	"fmt"
	"testing"
	"time"
)

func TestFeeSchedule_Quote_FeeDependeDelFlag(t *testing.T) {
	fees := DefaultFeeSchedule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if q := fees.Quote(true, now); q.Fee != 15 {
		t.Fatalf("expected fee 15 for spayed/neutered, got %d", q.Fee)
	}
	if q := fees.Quote(false, now); q.Fee != 25 {
		t.Fatalf("expected fee 25 for intact, got %d", q.Fee)
	}
}

func TestFeeSchedule_Quote_Ventana365DiasExactos(t *testing.T) {
	fees := DefaultFeeSchedule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	q := fees.Quote(false, now)

	if q.IssueDate != now {
		t.Fatalf("expected issue date == now")
	}

	// 365 días exactos en milisegundos, sin ajuste de calendario
	wantMillis := int64(365) * 24 * 60 * 60 * 1000
	gotMillis := q.ExpirationDate.UnixMilli() - q.IssueDate.UnixMilli()
	if gotMillis != wantMillis {
		t.Fatalf("expected window of %d ms, got %d", wantMillis, gotMillis)
	}
}

func TestLicenseNumberFor_Formato(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dogID := "3f9c1a7e-aaaa-bbbb-cccc-0123456789ab"

	got := LicenseNumberFor(dogID, issued)
	want := fmt.Sprintf("FC-%d-6789ab", issued.UnixMilli())
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestLicenseNumberFor_IDCorto(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := LicenseNumberFor("abc", issued)
	want := fmt.Sprintf("FC-%d-abc", issued.UnixMilli())
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDerivados_ExpiredYExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		expiration  time.Time
		expired     bool
		expiresSoon bool
	}{
		{"vencida ayer", now.Add(-24 * time.Hour), true, false},
		{"vence en 10 días", now.Add(10 * 24 * time.Hour), false, true},
		{"vence en 29 días", now.Add(29 * 24 * time.Hour), false, true},
		{"vence en 31 días", now.Add(31 * 24 * time.Hour), false, false},
		{"vence en 6 meses", now.Add(180 * 24 * time.Hour), false, false},
	}

	for _, tc := range cases {
		l := License{ExpirationDate: tc.expiration}
		if got := IsExpired(l, now); got != tc.expired {
			t.Fatalf("%s: IsExpired = %v, want %v", tc.name, got, tc.expired)
		}
		if got := IsExpiringSoon(l, now); got != tc.expiresSoon {
			t.Fatalf("%s: IsExpiringSoon = %v, want %v", tc.name, got, tc.expiresSoon)
		}
		wantRenewable := tc.expired || tc.expiresSoon
		if got := Renewable(l, now); got != wantRenewable {
			t.Fatalf("%s: Renewable = %v, want %v", tc.name, got, wantRenewable)
		}
	}
}
