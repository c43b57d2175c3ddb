package risk

import "sort"

// ImportanceEntry is one row of the explainability ranking.
type ImportanceEntry struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
	Value      float64 `json:"value"`
}

const maxImportanceEntries = 6

// ComputeFeatureImportance reports, for every feature present in both
// the disease's curated importance table and the feature map, its
// static importance alongside the current value, sorted descending by
// importance and truncated to the top 6. Features absent from the map
// are skipped, not defaulted. Unknown diseases fall back to the
// Alzheimer's table.
func ComputeFeatureImportance(featureMap map[string]float64, disease Disease) []ImportanceEntry {
	table, ok := importanceTables[disease]
	if !ok {
		table = importanceTables[Alzheimers]
	}

	entries := make([]ImportanceEntry, 0, len(table))
	for feature, weight := range table {
		value, present := featureMap[feature]
		if !present {
			continue
		}
		entries = append(entries, ImportanceEntry{
			Feature:    feature,
			Importance: roundTo(weight, 3),
			Value:      roundTo(value, 3),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Importance != entries[j].Importance {
			return entries[i].Importance > entries[j].Importance
		}
		return entries[i].Feature < entries[j].Feature
	})

	if len(entries) > maxImportanceEntries {
		entries = entries[:maxImportanceEntries]
	}
	return entries
}
