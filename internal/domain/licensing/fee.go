package licensing

import (
	"fmt"
	"time"
)

const licenseNumberPrefix = "FC"

// FeeSchedule es la política tarifaria como configuración nombrada, para que
// un cambio de ordenanza no requiera tocar código.
type FeeSchedule struct {
	FeeSpayedNeutered int // perro castrado/esterilizado
	FeeIntact         int
	PeriodDays        int
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		FeeSpayedNeutered: 15,
		FeeIntact:         25,
		PeriodDays:        365,
	}
}

// Quote es el resultado del cálculo de fee y ventana de vigencia.
type Quote struct {
	Fee            int
	IssueDate      time.Time
	ExpirationDate time.Time
}

// Quote calcula fee y vigencia. Pura y determinística dados sus inputs.
// La expiración es issue + PeriodDays exactos en milisegundos, sin ajuste
// de calendario ni años bisiestos.
func (f FeeSchedule) Quote(spayedNeutered bool, now time.Time) Quote {
	fee := f.FeeIntact
	if spayedNeutered {
		fee = f.FeeSpayedNeutered
	}
	return Quote{
		Fee:            fee,
		IssueDate:      now,
		ExpirationDate: now.Add(time.Duration(f.PeriodDays) * 24 * time.Hour),
	}
}

// LicenseNumberFor arma el número de licencia: FC-<issueEpochMillis>-<últimos
// 6 caracteres del ID del perro>.
func LicenseNumberFor(dogID string, issuedAt time.Time) string {
	suffix := dogID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("%s-%d-%s", licenseNumberPrefix, issuedAt.UnixMilli(), suffix)
}
