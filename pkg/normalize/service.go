package normalize

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hazyhaar/unemph/pkg/doubles"
	"github.com/hazyhaar/unemph/pkg/textmatch"
)

// ErrUnknownDict is returned when a request names a dictionary that is not loaded.
var ErrUnknownDict = errors.New("unknown dictionary")

// ServiceOptions configure a Service.
type ServiceOptions struct {
	Options
	// DefaultDict answers requests that name no dictionary. Empty selects
	// the bundled list.
	DefaultDict string
	// CacheSize bounds the result cache. Zero disables caching.
	CacheSize int
	// CacheTTL expires cached results. Zero keeps them until evicted.
	CacheTTL time.Duration
}

// Result is the answer to a single normalization request.
type Result struct {
	Token  string `json:"token"`
	Dict   string `json:"dict"`
	Stem   bool   `json:"stem"`
	Result string `json:"result"`
}

// CombinationResult lists the de-emphasized spellings of a token.
type CombinationResult struct {
	Token      string   `json:"token"`
	Stem       bool     `json:"stem"`
	Candidates []string `json:"candidates"`
}

// LookupResult is the phonetic bucket a word falls into.
type LookupResult struct {
	Dict  string   `json:"dict"`
	Word  string   `json:"word"`
	Code  string   `json:"code"`
	Words []string `json:"words"`
}

type cacheKey struct {
	dict  string
	token string
	stem  bool
}

// Service serves normalization requests against a Registry. Normalizers are
// built lazily per dictionary and results are cached.
type Service struct {
	reg         *doubles.Registry
	opts        Options
	defaultDict string
	combiner    *Normalizer
	cache       *expirable.LRU[cacheKey, string]

	// mu guards normalizers and gen. gen counts reloads; a result computed
	// under an older generation is never cached.
	mu          sync.Mutex
	gen         uint64
	normalizers map[*doubles.Dictionary]*Normalizer
}

// NewService returns a Service over reg. The registry must already be loaded.
func NewService(reg *doubles.Registry, opts ServiceOptions) *Service {
	s := &Service{
		reg:         reg,
		opts:        opts.Options,
		defaultDict: opts.DefaultDict,
		combiner:    NewNormalizer(nil, opts.Options),
		normalizers: make(map[*doubles.Dictionary]*Normalizer),
	}
	if opts.CacheSize > 0 {
		s.cache = expirable.NewLRU[cacheKey, string](opts.CacheSize, nil, opts.CacheTTL)
	}
	return s
}

// Normalize resolves token against the named dictionary ("" for the default).
// Errors only when the dictionary is unknown.
func (s *Service) Normalize(dictID, token string, stem bool) (*Result, error) {
	n, gen, err := s.resolve(dictID)
	if err != nil {
		return nil, err
	}
	id := n.dict.Manifest.ID
	key := cacheKey{dict: id, token: token, stem: stem}
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return &Result{Token: token, Dict: id, Stem: stem, Result: v}, nil
		}
	}

	v := n.Normalize(token, stem)
	s.store(gen, key, v)
	return &Result{Token: token, Dict: id, Stem: stem, Result: v}, nil
}

// Explain returns the full decision trace for token.
func (s *Service) Explain(dictID, token string, stem bool) (*Trace, error) {
	n, _, err := s.resolve(dictID)
	if err != nil {
		return nil, err
	}
	return n.Explain(token, stem), nil
}

// Combinations lists the de-emphasized spellings of token.
func (s *Service) Combinations(token string, stem bool) *CombinationResult {
	return &CombinationResult{
		Token:      token,
		Stem:       stem,
		Candidates: s.combiner.Combinations(token, stem),
	}
}

// Lookup returns the phonetic code of word and the dictionary words sharing it.
func (s *Service) Lookup(dictID, word string) (*LookupResult, error) {
	d, err := s.dict(dictID)
	if err != nil {
		return nil, err
	}
	code := textmatch.PhoneticCode(word)
	words, _ := d.Lookup(code)
	if words == nil {
		words = []string{}
	}
	return &LookupResult{Dict: d.Manifest.ID, Word: word, Code: code, Words: words}, nil
}

// Dicts returns metadata for every loaded dictionary.
func (s *Service) Dicts() []doubles.DictInfo {
	return s.reg.ListDicts()
}

// Registry returns the underlying registry.
func (s *Service) Registry() *doubles.Registry {
	return s.reg
}

// Reload reloads the registry and drops every cached normalizer and result.
func (s *Service) Reload() error {
	if err := s.reg.Reload(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.normalizers = make(map[*doubles.Dictionary]*Normalizer)
	if s.cache != nil {
		s.cache.Purge()
	}
	return nil
}

func (s *Service) dict(id string) (*doubles.Dictionary, error) {
	if id == "" {
		id = s.defaultDict
	}
	d, ok := s.reg.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, id)
	}
	return d, nil
}

// resolve returns the normalizer for the named dictionary and the generation
// it belongs to. The registry read happens under mu so a dictionary swapped
// out by Reload is never registered again.
func (s *Service) resolve(id string) (*Normalizer, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.dict(id)
	if err != nil {
		return nil, 0, err
	}
	n, ok := s.normalizers[d]
	if !ok {
		n = NewNormalizer(d, s.opts)
		s.normalizers[d] = n
	}
	return n, s.gen, nil
}

// store caches v unless a reload happened since the result's generation.
func (s *Service) store(gen uint64, key cacheKey, v string) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.cache.Add(key, v)
	}
}
