package search

// Hit is a scored corpus item surviving the zero-score filter
type Hit struct {
	ID      string  // document filename or sentence text
	Score   float64 // TF-IDF sum for documents, IDF sum for sentences
	Density float64 // query term density; only set for sentences
}

// idsOf extracts the identifiers of ranked hits
func idsOf(hits []Hit) []string {
	ids := make([]string, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ID
	}
	return ids
}
