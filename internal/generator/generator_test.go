package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"housing-fixtures/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler_RecordWithinDomain(t *testing.T) {
	sampler := NewSampler(rand.New(rand.NewPCG(1, 2)))

	for range 10000 {
		rec := sampler.Record()

		assert.GreaterOrEqual(t, rec.Population, MinPopulation)
		assert.LessOrEqual(t, rec.Population, MaxPopulation)
		assert.GreaterOrEqual(t, rec.HousingSize, MinHousingSize)
		assert.LessOrEqual(t, rec.HousingSize, MaxHousingSize)
		assert.GreaterOrEqual(t, rec.Area, MinArea)
		assert.LessOrEqual(t, rec.Area, MaxArea)
		assert.Equal(t, rec.Area, round(rec.Area, 2))
		assert.Contains(t, models.Regions, rec.Region)
		assert.Contains(t, models.Provinces, rec.Province)
		assert.GreaterOrEqual(t, rec.Latitude, MinLatitude)
		assert.LessOrEqual(t, rec.Latitude, MaxLatitude)
		assert.GreaterOrEqual(t, rec.Longitude, MinLongitude)
		assert.LessOrEqual(t, rec.Longitude, MaxLongitude)
		assert.GreaterOrEqual(t, rec.AreaPopulation, MinAreaPopulation)
		assert.LessOrEqual(t, rec.AreaPopulation, MaxAreaPopulation)

		require.GreaterOrEqual(t, len(rec.Facilities), MinFacilities)
		require.LessOrEqual(t, len(rec.Facilities), MaxFacilities)
		seen := make(map[string]bool)
		for _, f := range rec.Facilities {
			assert.Contains(t, models.Facilities, f)
			assert.False(t, seen[f], "duplicate facility %q", f)
			seen[f] = true
		}
	}
}

func TestGenerator_BuildScenario(t *testing.T) {
	gen, err := New(Options{YearFrom: 2014, YearTo: 2015, Category: "housing", RecordsPerYear: 2, Seed: 7})
	require.NoError(t, err)

	dataset, err := gen.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, dataset.Prizes, 4)

	expected := []struct {
		id      string
		year    string
		records int
	}{
		{"2014-1", "2014", 1},
		{"2014-2", "2014", 1},
		{"2015-1", "2015", 2},
		{"2015-2", "2015", 2},
	}
	for i, e := range expected {
		p := dataset.Prizes[i]
		assert.Equal(t, e.id, p.ID)
		assert.Equal(t, e.year, p.Year)
		assert.Equal(t, "housing", p.Category)
		assert.Len(t, p.Data, e.records)
	}
}

func TestGenerator_BuildCountsAndIDs(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		perYear int
	}{
		{name: "historical range", from: 2014, to: 2024, perYear: 5},
		{name: "single year", from: 2020, to: 2020, perYear: 3},
		{name: "no prizes", from: 2014, to: 2016, perYear: 0},
	}

	idPattern := regexp.MustCompile(`^(\d{4})-(\d+)$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(Options{YearFrom: tt.from, YearTo: tt.to, Category: "housing", RecordsPerYear: tt.perYear, AnomalyRate: 0.1})
			require.NoError(t, err)

			dataset, err := gen.Build(context.Background())
			require.NoError(t, err)
			assert.Len(t, dataset.Prizes, tt.perYear*(tt.to-tt.from+1))

			ids := make(map[string]bool)
			for _, p := range dataset.Prizes {
				year, err := strconv.Atoi(p.Year)
				require.NoError(t, err)
				assert.Len(t, p.Data, year-tt.from+1)

				m := idPattern.FindStringSubmatch(p.ID)
				require.NotNil(t, m, "unexpected id %q", p.ID)
				assert.Equal(t, p.Year, m[1])
				idx, _ := strconv.Atoi(m[2])
				assert.GreaterOrEqual(t, idx, 1)
				assert.LessOrEqual(t, idx, tt.perYear)

				assert.False(t, ids[p.ID], "duplicate id %q", p.ID)
				ids[p.ID] = true
			}
		})
	}
}

func TestGenerator_DefaultOptions(t *testing.T) {
	gen, err := New(DefaultOptions())
	require.NoError(t, err)

	dataset, err := gen.Build(context.Background())
	require.NoError(t, err)

	assert.Len(t, dataset.Prizes, 5500)
	assert.Equal(t, "2014-1", dataset.Prizes[0].ID)
	assert.Equal(t, "2024-500", dataset.Prizes[len(dataset.Prizes)-1].ID)
	assert.Len(t, dataset.Prizes[len(dataset.Prizes)-1].Data, 11)
	assert.Zero(t, Summarize(dataset).AnomalyCount())
}

func TestGenerator_SameSeedSameDataset(t *testing.T) {
	opts := Options{YearFrom: 2014, YearTo: 2016, Category: "housing", RecordsPerYear: 4, AnomalyRate: 0.5, Seed: 42}

	build := func() []byte {
		gen, err := New(opts)
		require.NoError(t, err)
		dataset, err := gen.Build(context.Background())
		require.NoError(t, err)
		out, err := json.Marshal(dataset)
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, build(), build())
}

func TestNew_InvalidOptions(t *testing.T) {
	valid := Options{YearFrom: 2014, YearTo: 2024, Category: "housing", RecordsPerYear: 1}

	tests := []struct {
		name   string
		mutate func(o *Options)
	}{
		{name: "range reversed", mutate: func(o *Options) { o.YearTo = 2010 }},
		{name: "empty category", mutate: func(o *Options) { o.Category = "" }},
		{name: "negative records", mutate: func(o *Options) { o.RecordsPerYear = -1 }},
		{name: "rate above one", mutate: func(o *Options) { o.AnomalyRate = 1.5 }},
		{name: "negative rate", mutate: func(o *Options) { o.AnomalyRate = -0.1 }},
		{name: "three digit year", mutate: func(o *Options) { o.YearFrom = 999 }},
		{name: "five digit year", mutate: func(o *Options) { o.YearTo = MaxYear + 1 }},
		{name: "span too wide", mutate: func(o *Options) { o.YearFrom, o.YearTo = MinYear, MinYear+MaxYearSpan }},
		{name: "huge span", mutate: func(o *Options) { o.YearFrom, o.YearTo = 1, 1 << 50 }},
		{name: "too many records per year", mutate: func(o *Options) { o.RecordsPerYear = MaxRecordsPerYear + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			_, err := New(opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestNew_WidestAcceptedSpan(t *testing.T) {
	opts := Options{YearFrom: MinYear, YearTo: MinYear + MaxYearSpan - 1, Category: "housing", RecordsPerYear: 0}

	gen, err := New(opts)
	require.NoError(t, err)

	dataset, err := gen.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dataset.Prizes)
}

func TestOptions_TotalRecords(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected int
	}{
		{name: "scenario", opts: Options{YearFrom: 2014, YearTo: 2015, RecordsPerYear: 2}, expected: 6},
		{name: "historical run", opts: DefaultOptions(), expected: 33000},
		{name: "single year", opts: Options{YearFrom: 2020, YearTo: 2020, RecordsPerYear: 7}, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.TotalRecords())
		})
	}
}

func TestNew_ZeroSeedPicksOne(t *testing.T) {
	gen, err := New(Options{YearFrom: 2014, YearTo: 2014, Category: "housing"})
	require.NoError(t, err)
	assert.NotZero(t, gen.Seed())
}

func TestGenerator_BuildCancelled(t *testing.T) {
	gen, err := New(Options{YearFrom: 2014, YearTo: 2014, Category: "housing", RecordsPerYear: 10})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// detectAnomaly reports whether a serialized record shows a missing key, a
// non-numeric value in a numeric field or an out-of-domain value.
func detectAnomaly(t *testing.T, raw []byte) bool {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(raw, &rec))

	if len(rec) != len(models.RecordFields) {
		return true
	}

	bounds := map[string][2]float64{
		models.FieldPopulation:     {MinPopulation, MaxPopulation},
		models.FieldHousingSize:    {MinHousingSize, MaxHousingSize},
		models.FieldLatitude:       {MinLatitude, MaxLatitude},
		models.FieldLongitude:      {MinLongitude, MaxLongitude},
		models.FieldAreaPopulation: {MinAreaPopulation, MaxAreaPopulation},
	}
	for key, b := range bounds {
		v, ok := rec[key].(float64)
		if !ok || v < b[0] || v > b[1] {
			return true
		}
	}
	return false
}

func TestGenerator_AnomalyRate(t *testing.T) {
	const records = 100000

	gen, err := New(Options{YearFrom: 2014, YearTo: 2014, Category: "housing", RecordsPerYear: records, AnomalyRate: 0.10, Seed: 2024})
	require.NoError(t, err)

	dataset, err := gen.Build(context.Background())
	require.NoError(t, err)

	detected := 0
	for _, p := range dataset.Prizes {
		for _, r := range p.Data {
			raw, err := json.Marshal(r)
			require.NoError(t, err)

			anomalous := detectAnomaly(t, raw)
			assert.Equal(t, r.Kind() != models.KindValid, anomalous, "record %s: %s", p.ID, raw)
			if anomalous {
				detected++
			}
		}
	}

	fraction := float64(detected) / records
	assert.InDelta(t, 0.10, fraction, 0.01, fmt.Sprintf("detected %d anomalies", detected))

	summary := Summarize(dataset)
	assert.Equal(t, records, summary.Records)
	assert.Equal(t, detected, summary.AnomalyCount())
	for _, k := range models.AnomalyKinds {
		assert.InDelta(t, detected/3, summary.Anomalies[k], float64(detected)/10, "kind %s", k)
	}
}
