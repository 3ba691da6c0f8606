// Package fuzzy scores how closely a short pattern aligns with a longer text
// and picks the best candidates from a list.
//
// Scores come from a subsequence alignment: every character of the pattern
// must appear in the text in order. Consecutive runs, matches at the start
// and matches after separators score higher; unmatched characters cost a
// little. The scale is a ranking, not a percentage.
package fuzzy

import (
	"sort"

	"github.com/agnivade/levenshtein"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/abdidvp/ftf/internal/domain"
)

// Score returns the alignment score of pattern within text. ok is false
// when pattern is empty or is not a subsequence of text.
func Score(pattern, text string) (score int, ok bool) {
	if pattern == "" {
		return 0, false
	}
	matches := sfuzzy.FindNoSort(pattern, []string{text})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// Match is one candidate that aligned with a query.
type Match struct {
	Candidate string `json:"candidate"`
	Score     int    `json:"score"`
	Distance  int    `json:"distance"`
	Index     int    `json:"index"`
}

// Matcher selects candidates for a query. The zero value is ready to use.
type Matcher struct{}

// NewMatcher returns a Matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// FindBest returns the highest scoring candidate.
func (m *Matcher) FindBest(query string, candidates []string) (Match, bool) {
	all := m.rank(query, candidates)
	if len(all) == 0 {
		return Match{}, false
	}
	return all[0], true
}

// FindAll returns every candidate scoring at least minScore, best first.
// Equal scores are ordered by edit distance to the query, then by input
// position.
func (m *Matcher) FindAll(query string, candidates []string, minScore int) []Match {
	all := m.rank(query, candidates)
	out := all[:0]
	for _, match := range all {
		if match.Score >= minScore {
			out = append(out, match)
		}
	}
	return out
}

func (m *Matcher) rank(query string, candidates []string) []Match {
	if query == "" {
		return nil
	}
	found := sfuzzy.FindNoSort(query, candidates)
	out := make([]Match, 0, len(found))
	for _, f := range found {
		out = append(out, Match{
			Candidate: f.Str,
			Score:     f.Score,
			Distance:  levenshtein.ComputeDistance(query, f.Str),
			Index:     f.Index,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Closest returns the candidate with the smallest edit distance to word, as
// long as that distance is at most maxDistance. An exact match is never
// returned: the word is already correct.
func Closest(word string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if c == word {
			return "", false
		}
		d := levenshtein.ComputeDistance(word, c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// SelectCorrections sorts corrections by priority, keeping the relative
// order of equal priorities, and keeps at most limit of them. A limit of
// zero or less keeps everything.
func SelectCorrections(corrections []domain.CorrectedCommand, limit int) []domain.CorrectedCommand {
	sort.SliceStable(corrections, func(i, j int) bool {
		return corrections[i].Less(corrections[j])
	})
	if limit > 0 && len(corrections) > limit {
		corrections = corrections[:limit]
	}
	return corrections
}
