package funnel

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// ContentWords is the body length asked of the generator.
	ContentWords = 100
	// PhraseWords is the length of every generated related-search phrase.
	PhraseWords = 5
	// CandidatePhrases is how many phrases the operator picks from.
	CandidatePhrases = 6
	// CandidateWebResults is how many web results are generated per phrase.
	CandidateWebResults = 6
)

// Phrase is a candidate related search. Placeholder marks padding that did
// not come from the generator.
type Phrase struct {
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
}

func PlaceholderPhrase(n int, topic string) string {
	return fmt.Sprintf("Related search %d for %s", n, topic)
}

// NormalizePhrases collapses whitespace, truncates each phrase to maxWords,
// drops empty phrases and keeps at most max of them.
func NormalizePhrases(raw []string, maxWords, max int) []string {
	out := make([]string, 0, max)
	for _, p := range raw {
		words := strings.Fields(p)
		if len(words) == 0 {
			continue
		}
		if len(words) > maxWords {
			words = words[:maxWords]
		}
		out = append(out, strings.Join(words, " "))
		if len(out) == max {
			break
		}
	}
	return out
}

// PadPhrases fills phrases up to n with placeholders numbered by slot.
func PadPhrases(phrases []string, topic string, n int) []Phrase {
	out := make([]Phrase, 0, n)
	for _, p := range phrases {
		if len(out) == n {
			break
		}
		out = append(out, Phrase{Text: p})
	}
	for len(out) < n {
		out = append(out, Phrase{Text: PlaceholderPhrase(len(out)+1, topic), Placeholder: true})
	}
	return out
}

func WordCount(s string) int {
	return len(strings.Fields(s))
}

// LimitWords cuts s after its n-th word, keeping the original spacing of
// what remains.
func LimitWords(s string, n int) string {
	s = strings.TrimSpace(s)
	count := 0
	inWord := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			if inWord && count == n {
				return s[:i]
			}
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			count++
		}
	}
	return s
}
