// Package nameutil handles romanized Japanese player names: normalization,
// romanization variants, match semantics and similarity ranking. All matching
// in the providers and the aggregator goes through this package.
package nameutil

import (
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// romanizationRewrites maps a romanization cluster to its canonical spelling
// (first entry) plus the other spellings the same sound appears under.
// Rewrite order matters and is fixed.
var romanizationRewrites = []struct {
	cluster string
	others  []string
}{
	{"ou", []string{"o", "oh", "oo"}},
	{"oo", []string{"o", "oh", "ou"}},
	{"oh", []string{"o", "oo", "ou"}},
	{"uu", []string{"u", "uh"}},
	{"ei", []string{"e"}},
	{"ii", []string{"i"}},
	{"shi", []string{"si"}},
	{"chi", []string{"ti"}},
	{"tsu", []string{"tu"}},
	{"fu", []string{"hu"}},
	{"ji", []string{"zi", "di"}},
	{"zu", []string{"du"}},
	{"sha", []string{"sya"}},
	{"shu", []string{"syu"}},
	{"sho", []string{"syo"}},
	{"cha", []string{"tya"}},
	{"chu", []string{"tyu"}},
	{"cho", []string{"tyo"}},
	{"ja", []string{"zya", "dya"}},
	{"ju", []string{"zyu", "dyu"}},
	{"jo", []string{"zyo", "dyo"}},
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, strips punctuation, collapses whitespace and rewrites
// romanization clusters to their canonical spelling. Idempotent: the rewrite
// pass runs until a fixpoint ("oooh" -> "oo" -> "o").
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")

	for i := 0; i < 10; i++ {
		prev := s
		for _, r := range romanizationRewrites {
			s = strings.ReplaceAll(s, r.cluster, r.others[0])
		}
		if s == prev {
			break
		}
	}
	return s
}

// Variants generates the forms a name may be written under: the normalized
// form, every single-cluster romanization substitution of it, and (for
// two-token names) the token order swap. The input itself is included so
// exact-form comparisons still work.
func Variants(name string) []string {
	normalized := Normalize(name)
	seen := map[string]bool{}
	var out []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	add(name)
	add(normalized)

	for _, r := range romanizationRewrites {
		if !strings.Contains(normalized, r.cluster) {
			continue
		}
		for _, alt := range r.others {
			add(strings.ReplaceAll(normalized, r.cluster, alt))
		}
	}

	if parts := strings.Fields(name); len(parts) == 2 {
		swapped := parts[1] + " " + parts[0]
		add(swapped)
		add(Normalize(swapped))
	}
	return out
}

// SplitName splits a full name into (first, last). Two-token names are
// assumed to be in the league's customary Last-First order.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	case 2:
		return parts[1], parts[0]
	default:
		return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
	}
}

// Match reports whether a search query matches a candidate name. Strict mode
// accepts only equal normalized forms. Loose mode additionally accepts:
// "Last, First" candidates matched by last name, first name or the western
// "First Last" rendering; any romanization/order variant of the query; and,
// for single-token queries, equality with any single token of the candidate.
func Match(search, candidate string, strict bool) bool {
	if Normalize(search) == Normalize(candidate) {
		return true
	}
	if strict {
		return false
	}

	if last, first, ok := strings.Cut(candidate, ","); ok {
		last, first = strings.TrimSpace(last), strings.TrimSpace(first)
		searchNorm := Normalize(search)
		if searchNorm == Normalize(last) || searchNorm == Normalize(first) ||
			searchNorm == Normalize(first+" "+last) {
			return true
		}
	}

	candidateNorm := Normalize(candidate)
	for _, v := range Variants(search) {
		if v == candidateNorm {
			return true
		}
	}

	if searchParts := strings.Fields(search); len(searchParts) == 1 {
		searchNorm := Normalize(searchParts[0])
		for _, part := range strings.Fields(strings.ReplaceAll(candidate, ",", " ")) {
			if Normalize(part) == searchNorm {
				return true
			}
		}
	}
	return false
}

// Similarity scores two names in [0,1] on their normalized forms.
func Similarity(a, b string) float64 {
	return matchr.JaroWinkler(Normalize(a), Normalize(b), false)
}

// SortBySimilarity stably orders names so the best matches for query come
// first. Used to rank search results before presenting candidates.
func SortBySimilarity(query string, names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Similarity(query, names[i]) > Similarity(query, names[j])
	})
}
