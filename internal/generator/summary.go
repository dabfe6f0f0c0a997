package generator

import "housing-fixtures/internal/models"

// Summary counts what a dataset contains.
type Summary struct {
	Prizes    int
	Records   int
	Anomalies map[models.Kind]int
}

// AnomalyCount returns the number of corrupted records.
func (s Summary) AnomalyCount() int {
	total := 0
	for _, n := range s.Anomalies {
		total += n
	}
	return total
}

// Summarize walks the dataset once and tallies prizes, records and anomaly kinds.
func Summarize(dataset *models.HousingDataset) Summary {
	s := Summary{Anomalies: make(map[models.Kind]int)}
	for _, p := range dataset.Prizes {
		s.Prizes++
		for _, r := range p.Data {
			s.Records++
			if k := r.Kind(); k != models.KindValid {
				s.Anomalies[k]++
			}
		}
	}
	return s
}
