package fuzzy

import (
	"strings"
)

// DefaultThreshold is the minimum score Match requires before it reports a hit.
const DefaultThreshold = 0.6

// MatchResult carries the match decision together with the raw score,
// so callers can rank hits instead of just filtering them.
type MatchResult struct {
	Matches bool
	Score   float64
}

// EditDistance returns the Levenshtein distance between a and b,
// case-insensitively. Insertions, deletions and substitutions all cost 1.
// Inputs are compared rune-by-rune so Cyrillic names count characters, not bytes.
func EditDistance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	la, lb := len(ra), len(rb)

	dp := make([][]int, la+1)
	for i := 0; i <= la; i++ {
		dp[i] = make([]int, lb+1)
		dp[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min3(
				dp[i-1][j]+1,      // deletion
				dp[i][j-1]+1,      // insertion
				dp[i-1][j-1]+cost, // substitution
			)
		}
	}
	return dp[la][lb]
}

// Similarity maps edit distance onto [0, 1], where 1 is a perfect match.
// Two empty strings are defined to match perfectly.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(EditDistance(a, b))/float64(maxLen)
}

// Match reports whether search fuzzily matches text.
//
// An exact (case-insensitive) substring hit short-circuits with score 1 —
// a short query embedded in a long name is a perfect match, not a fraction.
// Otherwise the score is the best of the whole-string similarity and the
// per-word similarities, so a misspelled word inside a multi-word name is
// not dragged down by its neighbours.
func Match(text, search string, threshold float64) MatchResult {
	textLower := strings.ToLower(text)
	searchLower := strings.ToLower(search)

	if strings.Contains(textLower, searchLower) {
		return MatchResult{Matches: true, Score: 1}
	}

	score := Similarity(textLower, searchLower)
	for _, word := range strings.Fields(textLower) {
		if s := Similarity(word, searchLower); s > score {
			score = s
		}
	}

	return MatchResult{Matches: score >= threshold, Score: score}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
