package search

import (
	"sort"

	"github.com/gcbaptista/go-questions/model"
)

// rankHits orders hits by score desc, then density desc, then ID asc,
// and keeps at most n of them. Requesting more than available is not an error.
func rankHits(hits []Hit, n int) []Hit {
	sort.SliceStable(hits, func(i, j int) bool {
		hitI := hits[i]
		hitJ := hits[j]

		if hitI.Score != hitJ.Score {
			return hitI.Score > hitJ.Score
		}
		if hitI.Density != hitJ.Density {
			return hitI.Density > hitJ.Density
		}
		return hitI.ID < hitJ.ID
	})

	if n < 0 {
		n = 0
	}
	if n > len(hits) {
		n = len(hits)
	}
	return hits[:n]
}

// ScoreFiles scores every document by the TF-IDF sum of the query words it contains.
// Documents scoring exactly zero are dropped while scoring.
func ScoreFiles(query model.Query, files model.Corpus, idfs model.IDFTable) []Hit {
	words := query.Words()
	hits := make([]Hit, 0)

	for _, id := range files.IDs() {
		termFreq := make(map[string]int)
		for _, token := range files[id] {
			if query.Contains(token) {
				termFreq[token]++
			}
		}

		score := 0.0
		for _, word := range words {
			if tf := termFreq[word]; tf > 0 {
				score += float64(tf) * idfs.Lookup(word)
			}
		}

		if score != 0 {
			hits = append(hits, Hit{ID: id, Score: score})
		}
	}
	return hits
}

// RankFiles returns the top n scored documents in ranked order
func RankFiles(query model.Query, files model.Corpus, idfs model.IDFTable, n int) []Hit {
	return rankHits(ScoreFiles(query, files, idfs), n)
}

// TopFiles returns the identifiers of the n documents best matching query, ranked by TF-IDF.
// Ties are broken by identifier ascending.
func TopFiles(query model.Query, files model.Corpus, idfs model.IDFTable, n int) []string {
	return idsOf(RankFiles(query, files, idfs, n))
}

// ScoreSentences scores every sentence by the IDF sum of the query words it contains,
// without term frequency weighting, and records its query term density.
// Sentences scoring exactly zero are dropped while scoring.
func ScoreSentences(query model.Query, sentences model.Corpus, idfs model.IDFTable) []Hit {
	words := query.Words()
	hits := make([]Hit, 0)

	for _, text := range sentences.IDs() {
		tokens := sentences[text]

		present := make(map[string]struct{})
		matching := 0
		for _, token := range tokens {
			if query.Contains(token) {
				present[token] = struct{}{}
				matching++
			}
		}

		score := 0.0
		for _, word := range words {
			if _, ok := present[word]; ok {
				score += idfs.Lookup(word)
			}
		}
		if score == 0 {
			continue
		}

		hits = append(hits, Hit{
			ID:      text,
			Score:   score,
			Density: queryTermDensity(matching, len(tokens)),
		})
	}
	return hits
}

// queryTermDensity is the share of sentence tokens that match a query word
func queryTermDensity(matching, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matching) / float64(total)
}

// RankSentences returns the top n scored sentences in ranked order
func RankSentences(query model.Query, sentences model.Corpus, idfs model.IDFTable, n int) []Hit {
	return rankHits(ScoreSentences(query, sentences, idfs), n)
}

// TopSentences returns the n sentences best matching query, ranked by IDF sum.
// Equal scores prefer the higher query term density, then the sentence text ascending.
func TopSentences(query model.Query, sentences model.Corpus, idfs model.IDFTable, n int) []string {
	return idsOf(RankSentences(query, sentences, idfs, n))
}
