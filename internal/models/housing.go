package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
)

// Field names of a housing record, in serialization order.
const (
	FieldPopulation     = "population"
	FieldHousingSize    = "housing_size"
	FieldArea           = "area"
	FieldRegion         = "region"
	FieldProvince       = "province"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldAreaPopulation = "area_population"
	FieldFacilities     = "facilities"
)

// RecordFields lists every key of a valid housing record in the order it is written.
var RecordFields = []string{
	FieldPopulation,
	FieldHousingSize,
	FieldArea,
	FieldRegion,
	FieldProvince,
	FieldLatitude,
	FieldLongitude,
	FieldAreaPopulation,
	FieldFacilities,
}

// Regions, Provinces and Facilities are the fixed categorical domains of a record.
var (
	Regions = []string{"Atlantic", "Central", "Prairies", "West Coast", "Northern"}

	Provinces = []string{
		"Nova Scotia", "Ontario", "Quebec", "British Columbia",
		"Alberta", "Manitoba", "Saskatchewan", "Newfoundland and Labrador",
		"Prince Edward Island", "New Brunswick", "Yukon", "Nunavut", "Northwest Territories",
	}

	Facilities = []string{
		"Hospital", "School", "University", "Supermarket",
		"Community Center", "Shopping Mall", "Park", "Library",
	}
)

// Kind tags a record as valid or names the anomaly injected into it.
type Kind string

const (
	KindValid      Kind = "valid"
	KindMissing    Kind = "missing"
	KindInvalid    Kind = "invalid"
	KindOutOfRange Kind = "out_of_range"
)

// AnomalyKinds are the corruption kinds, drawn uniformly by the injector.
var AnomalyKinds = []Kind{KindMissing, KindInvalid, KindOutOfRange}

// Record is either a HousingRecord or a CorruptedRecord.
type Record interface {
	Kind() Kind
	isRecord()
}

// HousingRecord is a single synthetic housing-market observation with every field inside its domain.
type HousingRecord struct {
	Population     int      `json:"population"`
	HousingSize    int      `json:"housing_size"`
	Area           float64  `json:"area"`
	Region         string   `json:"region"`
	Province       string   `json:"province"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AreaPopulation int      `json:"area_population"`
	Facilities     []string `json:"facilities"`
}

func (HousingRecord) Kind() Kind { return KindValid }
func (HousingRecord) isRecord() {}

// Fields converts the record into an ordered field list so it can be corrupted.
func (r HousingRecord) Fields() []Field {
	return []Field{
		{Key: FieldPopulation, Value: r.Population},
		{Key: FieldHousingSize, Value: r.HousingSize},
		{Key: FieldArea, Value: r.Area},
		{Key: FieldRegion, Value: r.Region},
		{Key: FieldProvince, Value: r.Province},
		{Key: FieldLatitude, Value: r.Latitude},
		{Key: FieldLongitude, Value: r.Longitude},
		{Key: FieldAreaPopulation, Value: r.AreaPopulation},
		{Key: FieldFacilities, Value: r.Facilities},
	}
}

// Field is one key/value pair of a corrupted record.
type Field struct {
	Key   string
	Value any
}

// CorruptedRecord is a housing record after anomaly injection. Keys may be
// missing and values may have the wrong type or lie out of range. The anomaly
// kind is kept in memory only and is never serialized.
type CorruptedRecord struct {
	Anomaly Kind
	Fields  []Field
}

func (r *CorruptedRecord) Kind() Kind { return r.Anomaly }
func (*CorruptedRecord) isRecord() {}

// Get returns the value stored under key.
func (r *CorruptedRecord) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set overwrites the value under key, appending the key if it is absent.
func (r *CorruptedRecord) Set(key string, value any) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Delete removes key from the record.
func (r *CorruptedRecord) Delete(key string) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields = append(r.Fields[:i], r.Fields[i+1:]...)
			return
		}
	}
}

// Keys returns the keys still present, in order.
func (r *CorruptedRecord) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Float64er is implemented by fixed-point and rational number types such as
// *big.Rat. Values of this kind are written as plain JSON floats.
type Float64er interface {
	Float64() (float64, bool)
}

var _ Float64er = (*big.Rat)(nil)

// MarshalJSON writes the fields as an object, preserving their order.
func (r *CorruptedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(plainValue(f.Value))
		if err != nil {
			return nil, fmt.Errorf("models: cannot encode field %q: %w", f.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func plainValue(v any) any {
	if d, ok := v.(Float64er); ok {
		// A typed nil such as (*big.Rat)(nil) encodes as null, like any nil pointer.
		if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		f, _ := d.Float64()
		return f
	}
	return v
}

// Prize groups the records generated for one year and index.
type Prize struct {
	Year     string   `json:"year"`
	Category string   `json:"category"`
	ID       string   `json:"id"`
	Data     []Record `json:"data"`
}

// HousingDataset is the top-level fixture document.
type HousingDataset struct {
	Prizes []Prize `json:"prizes"`
}

// PrizeDocument is a prize decoded from a fixture file. Records are kept raw
// because they may be corrupted.
type PrizeDocument struct {
	Year     string            `json:"year"`
	Category string            `json:"category"`
	ID       string            `json:"id"`
	Data     []json.RawMessage `json:"data"`
}

// DatasetDocument is a fixture file decoded without assuming record validity.
type DatasetDocument struct {
	Prizes []PrizeDocument `json:"prizes"`
}

// StoredPrize is a prize row loaded from the database.
type StoredPrize struct {
	ID          string          `json:"id"`
	Year        int             `json:"year"`
	Category    string          `json:"category"`
	RecordCount int             `json:"record_count"`
	Data        json.RawMessage `json:"data"`
}
