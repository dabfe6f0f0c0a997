package generator

import (
	"math/rand/v2"

	"housing-fixtures/internal/models"
)

// InvalidPlaceholder replaces numeric values in records corrupted with KindInvalid.
const InvalidPlaceholder = "invalid"

// invalidTargets are the numeric fields an invalid anomaly may overwrite.
var invalidTargets = []string{
	models.FieldPopulation,
	models.FieldHousingSize,
	models.FieldLatitude,
	models.FieldLongitude,
	models.FieldAreaPopulation,
}

// Out-of-range bounds for corrupted values. Each draw falls strictly outside the valid domain.
const (
	maxCorruptLatitude   = 200.0
	maxCorruptLongitude  = 400.0
	minCorruptPopulation = -5000
	maxCorruptPopulation = 1000000
)

// Injector corrupts records at a fixed probability.
type Injector struct {
	rng  *rand.Rand
	rate float64
}

// NewInjector creates an injector that corrupts a record with probability rate.
func NewInjector(rng *rand.Rand, rate float64) *Injector {
	return &Injector{rng: rng, rate: rate}
}

// Apply returns rec unchanged, or with exactly one anomaly applied.
func (i *Injector) Apply(rec models.HousingRecord) models.Record {
	if i.rate <= 0 || i.rng.Float64() >= i.rate {
		return rec
	}

	kind := models.AnomalyKinds[i.rng.IntN(len(models.AnomalyKinds))]
	return i.corrupt(rec, kind)
}

func (i *Injector) corrupt(rec models.HousingRecord, kind models.Kind) *models.CorruptedRecord {
	out := &models.CorruptedRecord{Anomaly: kind, Fields: rec.Fields()}

	switch kind {
	case models.KindMissing:
		keys := out.Keys()
		out.Delete(keys[i.rng.IntN(len(keys))])
	case models.KindInvalid:
		out.Set(invalidTargets[i.rng.IntN(len(invalidTargets))], InvalidPlaceholder)
	case models.KindOutOfRange:
		out.Set(models.FieldLatitude, i.beyond(MaxLatitude, maxCorruptLatitude))
		out.Set(models.FieldLongitude, i.beyond(MaxLongitude, maxCorruptLongitude))
		out.Set(models.FieldPopulation, i.corruptPopulation())
	}

	return out
}

// beyond returns a value rounded to 6 places whose magnitude lies in (limit, ceil], with a random sign.
func (i *Injector) beyond(limit, ceil float64) float64 {
	v := round(ceil-i.rng.Float64()*(ceil-limit), 6)
	if v <= limit {
		v = limit + 1e-6
	}
	if i.rng.IntN(2) == 0 {
		return -v
	}
	return v
}

// corruptPopulation draws from [minCorruptPopulation, 0] or (MaxPopulation, maxCorruptPopulation].
func (i *Injector) corruptPopulation() int {
	if i.rng.IntN(2) == 0 {
		return minCorruptPopulation + i.rng.IntN(-minCorruptPopulation+1)
	}
	return MaxPopulation + 1 + i.rng.IntN(maxCorruptPopulation-MaxPopulation)
}
