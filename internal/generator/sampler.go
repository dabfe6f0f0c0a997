package generator

import (
	"math"
	"math/rand/v2"

	"housing-fixtures/internal/models"
)

// Domains of the numeric record fields.
const (
	MinPopulation     = 1000
	MaxPopulation     = 100000
	MinHousingSize    = 800
	MaxHousingSize    = 4000
	MinArea           = 10.0
	MaxArea           = 100.0
	MinLatitude       = -90.0
	MaxLatitude       = 90.0
	MinLongitude      = -180.0
	MaxLongitude      = 180.0
	MinAreaPopulation = 1000
	MaxAreaPopulation = 500000
	MinFacilities     = 2
	MaxFacilities     = 5
)

// Sampler draws valid housing records from a random source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler over rng
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Record draws one record with every field uniform over its domain.
func (s *Sampler) Record() models.HousingRecord {
	return models.HousingRecord{
		Population:     s.intBetween(MinPopulation, MaxPopulation),
		HousingSize:    s.intBetween(MinHousingSize, MaxHousingSize),
		Area:           round(s.floatBetween(MinArea, MaxArea), 2),
		Region:         s.choice(models.Regions),
		Province:       s.choice(models.Provinces),
		Latitude:       round(s.floatBetween(MinLatitude, MaxLatitude), 6),
		Longitude:      round(s.floatBetween(MinLongitude, MaxLongitude), 6),
		AreaPopulation: s.intBetween(MinAreaPopulation, MaxAreaPopulation),
		Facilities:     s.sample(models.Facilities, s.intBetween(MinFacilities, MaxFacilities)),
	}
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Sampler) intBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Sampler) floatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Sampler) choice(items []string) string {
	return items[s.rng.IntN(len(items))]
}

// sample picks n distinct items without replacement, in draw order.
func (s *Sampler) sample(items []string, n int) []string {
	perm := s.rng.Perm(len(items))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, items[i])
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
