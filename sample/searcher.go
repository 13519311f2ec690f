package sample

import (
	"context"
	"strings"
	"sync"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/rivo/duplo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/jtejido/elft"
)

// Searcher searches hash templates against a database made by Extractor.
// Search may be called concurrently once Load has returned.
type Searcher struct {
	opts        Options
	databaseDir string

	mu       sync.RWMutex
	store    *duplo.Store
	manifest *manifest
}

// NewSearcher returns a searcher for the database in databaseDir. Nothing is
// read until Load.
func NewSearcher(configDir, databaseDir string) (*Searcher, error) {
	opts, err := LoadOptions(configDir)
	if err != nil {
		return nil, err
	}
	return &Searcher{opts: opts, databaseDir: databaseDir}, nil
}

func (s *Searcher) Identification() elft.SubmissionIdentification {
	return identification()
}

func (s *Searcher) Load(ctx context.Context, maxSize uint64) elft.ReturnStatus {
	store, m, err := readDatabase(s.databaseDir, maxSize)
	if err != nil {
		return elft.StatusFailure("failed to load database: %v", err)
	}
	s.mu.Lock()
	s.store, s.manifest = store, m
	s.mu.Unlock()
	return elft.StatusOK()
}

// byCandidate orders the heap so the weakest candidate is on top. Equal
// similarities put the later identifier on top so smaller identifiers are
// kept.
var byCandidate utils.Comparator = func(a, b interface{}) int {
	ca, cb := a.(elft.Candidate), b.(elft.Candidate)
	if c := elft.CompareBySimilarity(ca, cb); c != 0 {
		return c
	}
	return -strings.Compare(ca.Identifier, cb.Identifier)
}

// topCandidates returns at most n candidates, best first.
func topCandidates(best map[string]elft.Candidate, n int) []elft.Candidate {
	heap := binaryheap.NewWith(byCandidate)
	ids := maps.Keys(best)
	slices.Sort(ids)
	for _, id := range ids {
		heap.Push(best[id])
		if heap.Size() > n {
			heap.Pop()
		}
	}

	out := make([]elft.Candidate, heap.Size())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := heap.Pop()
		out[i] = v.(elft.Candidate)
	}
	return out
}

func (s *Searcher) Search(ctx context.Context, probeTemplate []byte, maxCandidates uint16) elft.SearchResult {
	s.mu.RLock()
	store, m := s.store, s.manifest
	s.mu.RUnlock()
	if store == nil {
		return elft.SearchResult{Status: elft.StatusFailure("database not loaded")}
	}

	probe, err := decodeTemplate(probeTemplate)
	if err != nil {
		return elft.SearchResult{Status: elft.StatusFailure("%v", err)}
	}
	if probe.Type != elft.Probe {
		return elft.SearchResult{Status: elft.StatusFailure("%s is a %s template", probe.Identifier, probe.Type)}
	}

	best := make(map[string]elft.Candidate)
	for _, en := range probe.Entries {
		if err := ctx.Err(); err != nil {
			return elft.SearchResult{Status: elft.StatusFailure("%v", err)}
		}
		for _, match := range store.Query(en.Hash) {
			idx, ok := match.ID.(int)
			if !ok || idx < 0 || idx >= len(m.Entries) {
				return elft.SearchResult{Status: elft.StatusFailure("database entry %v not in manifest", match.ID)}
			}
			ref := m.Entries[idx]
			similarity := -match.Score
			if similarity < 0 {
				similarity = 0
			}
			if c, seen := best[ref.Identifier]; !seen || similarity > c.Similarity {
				best[ref.Identifier] = elft.NewCandidate(ref.Identifier, ref.FRGP, similarity)
			}
		}
	}

	candidates := topCandidates(best, int(maxCandidates))
	decision := len(candidates) > 0 && candidates[0].Similarity >= s.opts.DecisionThreshold
	return elft.SearchResult{Status: elft.StatusOK(), Decision: decision, Candidates: candidates}
}

func (s *Searcher) ExtractCorrespondence(ctx context.Context, probeTemplate []byte,
	result elft.SearchResult) elft.CorrespondenceResult {
	return elft.CorrespondenceResult{Status: elft.StatusNotImplemented("hash templates hold no minutiae")}
}
