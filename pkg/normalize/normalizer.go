// Package normalize collapses emphatic letter repetition in informal tokens
// ("heeeellloooo") into canonical word forms.
//
// Normalize picks a single answer: the token is de-emphasized at three bias
// levels, the two-letter level is encoded phonetically, and the dictionary
// word under that code with the longest common subsequence wins. Combinations
// needs no dictionary and lists every plausible de-emphasized spelling.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/hazyhaar/unemph/pkg/doubles"
	"github.com/hazyhaar/unemph/pkg/textmatch"
)

// minMatch is the LCS length a dictionary word must exceed to be accepted.
const minMatch = 3

// Options tune a Normalizer.
type Options struct {
	// StemCleanTokens stems tokens that have no emphatic runs when stemming
	// is requested. When false those tokens come back cleaned but unstemmed.
	StemCleanTokens bool
	// FoldAccents strips accents before non-word characters are removed.
	FoldAccents bool
	// Logger receives a debug record per dictionary lookup.
	Logger *slog.Logger
}

// Candidate is a dictionary word scored against the de-emphasized token.
type Candidate struct {
	Word string `json:"word"`
	LCS  int    `json:"lcs"`
}

// Trace records every intermediate value of a normalization.
type Trace struct {
	Token      string      `json:"token"`
	Stem       bool        `json:"stem"`
	Cleaned    string      `json:"cleaned"`
	Runs       []Run       `json:"runs"`
	Normalized string      `json:"normalized,omitempty"`
	Unbiased   string      `json:"unbiased,omitempty"`
	Biased     string      `json:"biased,omitempty"`
	Code       string      `json:"code,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
	Match      string      `json:"match,omitempty"`
	Result     string      `json:"result"`
}

// Normalizer resolves emphasized tokens against one double-letter dictionary.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	dict   *doubles.Dictionary
	opts   Options
	logger *slog.Logger
}

// NewNormalizer returns a Normalizer backed by dict. A nil dict behaves as an
// empty dictionary.
func NewNormalizer(dict *doubles.Dictionary, opts Options) *Normalizer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{dict: dict, opts: opts, logger: logger}
}

// Normalize returns the best canonical form of token, stemmed if stem is set.
func (n *Normalizer) Normalize(token string, stem bool) string {
	return n.Explain(token, stem).Result
}

// Explain normalizes token and returns the full trace of the decision.
func (n *Normalizer) Explain(token string, stem bool) *Trace {
	cleaned := n.clean(token)
	tr := &Trace{
		Token:   token,
		Stem:    stem,
		Cleaned: cleaned,
		Runs:    FindRuns(cleaned),
	}

	if len(tr.Runs) == 0 {
		switch {
		case !stem:
			tr.Result = token
		case n.opts.StemCleanTokens:
			tr.Result = textmatch.Stem(cleaned)
		default:
			tr.Result = cleaned
		}
		return tr
	}

	normalized, unbiased, biased := cleaned, cleaned, cleaned
	for _, r := range tr.Runs {
		normalized = strings.Replace(normalized, r.Text, r.Clamp(1), 1)
		unbiased = strings.Replace(unbiased, r.Text, r.Clamp(2), 1)
		biased = strings.Replace(biased, r.Text, r.Clamp(3), 1)
	}
	tr.Normalized, tr.Unbiased, tr.Biased = normalized, unbiased, biased
	tr.Code = textmatch.PhoneticCode(unbiased)

	var words []string
	if n.dict != nil {
		words, _ = n.dict.Lookup(tr.Code)
	}
	best := 0
	for _, word := range words {
		l := textmatch.LCSLength(word, unbiased)
		tr.Candidates = append(tr.Candidates, Candidate{Word: word, LCS: l})
		// Strictly longer only: the first word wins a tie.
		if l > minMatch && l > best {
			tr.Match, best = word, l
		}
	}

	result := normalized
	if tr.Match != "" {
		result = tr.Match
	}
	if stem {
		result = textmatch.Stem(result)
	}
	tr.Result = result

	n.logger.Debug("normalize",
		"token", token,
		"unbiased", unbiased,
		"code", tr.Code,
		"candidates", len(tr.Candidates),
		"match", tr.Match,
		"result", result,
	)
	return tr
}

// Combinations lists the de-emphasized spellings of token using this
// normalizer's cleaning options.
func (n *Normalizer) Combinations(token string, stem bool) []string {
	return combinations(token, n.clean(token), stem)
}

func (n *Normalizer) clean(token string) string {
	if n.opts.FoldAccents {
		return CleanFolded(token)
	}
	return Clean(token)
}
