package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ---------------------------------------------------------------------------
// Gallery fuzzy search
//
// "/" filters the gallery by caption. Substring matches rank first, then
// near-misses within an edit-distance budget, so a typo'd query still finds
// the card.
// ---------------------------------------------------------------------------

// maxEditRatio is the levenshtein distance, relative to query length, above
// which a caption no longer counts as a match.
const maxEditRatio = 0.5

type scoredCard struct {
	card  card
	score int
}

// matchCaption scores caption against query. Lower scores rank earlier;
// ok=false means no match. An exact substring scores by position, so
// prefix matches beat mid-word ones; otherwise the best whole-query edit
// distance over caption windows decides.
func matchCaption(caption, query string) (score int, ok bool) {
	c := strings.ToLower(strings.TrimSpace(caption))
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, true
	}
	if idx := strings.Index(c, q); idx >= 0 {
		return idx, true
	}

	budget := int(float64(len(q)) * maxEditRatio)
	if budget < 1 {
		budget = 1
	}
	best := budget + 1
	// Slide a query-sized window across the caption; cheaper than full
	// alignment and good enough for short captions.
	for start := 0; start+len(q) <= len(c); start++ {
		dist := levenshtein.ComputeDistance(c[start:start+len(q)], q)
		if dist < best {
			best = dist
		}
	}
	if len(c) < len(q) {
		if dist := levenshtein.ComputeDistance(c, q); dist < best {
			best = dist
		}
	}
	if best > budget {
		return 0, false
	}
	// Edit-distance matches always rank after substring matches.
	return 1000 + best, true
}

// filterCards returns the cards matching query, best match first. Ties keep
// collection order, so the gallery doesn't reshuffle as the query grows.
func filterCards(cards []card, query string) []card {
	if strings.TrimSpace(query) == "" {
		return cards
	}
	var matched []scoredCard
	for _, c := range cards {
		if score, ok := matchCaption(c.name, query); ok {
			matched = append(matched, scoredCard{card: c, score: score})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score < matched[j].score
	})
	out := make([]card, len(matched))
	for i, sc := range matched {
		out[i] = sc.card
	}
	return out
}
