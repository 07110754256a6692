// Package scanner walks a buffer against a sig.Catalog: it runs a
// catalog-wide multi-pattern search, dispatches each hit to the owning
// signature's Parser, and resolves the resulting candidate matches into a
// non-conflicting, offset-ordered result set.
package scanner

import (
	"context"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/shirou/binscan/internal/sig"
)

// Scanner holds a built multi-pattern automaton over one Catalog's magic
// patterns. Build once per Catalog; Scan is safe to call concurrently since
// neither the automaton nor the catalog is mutated after Build.
type Scanner struct {
	catalog *sig.Catalog
	automaton *ahocorasick.Automaton
	// patternOwner maps a pattern index (as handed to the automaton, in
	// catalog/magic declaration order) back to the owning signature index.
	patternOwner []ownerRef
}

type ownerRef struct {
	sigIndex int
}

// Build constructs a Scanner's automaton from catalog's signatures. Short
// signatures are not fed to the automaton; they are checked directly against
// buffer offset 0 during Scan instead, since an automaton match at a
// non-zero offset for a short signature is definitionally unusable.
func Build(catalog *sig.Catalog) (*Scanner, error) {
	s := &Scanner{catalog: catalog}

	// One pattern entry per (signature, magic variant); patternOwner maps
	// an automaton pattern index back to its owning signature.
	var patterns [][]byte
	for i, entry := range catalog.Entries() {
		if entry.Short {
			continue
		}
		for _, m := range entry.Magic {
			patterns = append(patterns, m)
			s.patternOwner = append(s.patternOwner, ownerRef{sigIndex: i})
		}
	}

	if len(patterns) > 0 {
		a, err := ahocorasick.NewAutomaton(patterns)
		if err != nil {
			return nil, err
		}
		s.automaton = a
	}
	return s, nil
}

// candidate is an unvalidated magic hit awaiting its owning signature's
// Parser.
type candidate struct {
	sigIndex int
	offset   int
}

// Scan runs the full pipeline: multi-pattern search, short-signature offset-0
// checks, per-hit Parser dispatch, and overlap resolution. Results are
// returned in strictly ascending offset order. ctx is checked between
// validator invocations so a caller can abort a scan of a very large buffer
// between hits; it is never consulted inside a single Parser call.
func Scan(ctx context.Context, s *Scanner, buffer []byte) ([]sig.Result, error) {
	var candidates []candidate

	if s.automaton != nil {
		for _, m := range s.automaton.Match(buffer) {
			candidates = append(candidates, candidate{sigIndex: s.patternOwner[m.Pattern].sigIndex, offset: m.Start})
		}
	}

	for i, entry := range s.catalog.Entries() {
		if !entry.Short {
			continue
		}
		for _, m := range entry.Magic {
			if len(buffer) >= len(m) && string(buffer[:len(m)]) == string(m) {
				candidates = append(candidates, candidate{sigIndex: i, offset: 0})
			}
		}
	}

	var results []sig.Result
	for _, c := range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry := s.catalog.Entries()[c.sigIndex]
		res, parseErr := entry.Parser(buffer, c.offset)
		if parseErr != nil {
			continue
		}
		res.Name = entry.Name
		if res.Description == "" {
			res.Description = entry.Description
		}
		results = append(results, res)
	}

	return resolveOverlaps(results), nil
}

// resolveOverlaps keeps, among mutually overlapping results, the one with
// higher confidence, tie-breaking by larger size then lower offset, and
// returns the survivors sorted by ascending offset.
func resolveOverlaps(results []sig.Result) []sig.Result {
	if len(results) == 0 {
		return nil
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Offset != results[j].Offset {
			return results[i].Offset < results[j].Offset
		}
		return results[i].Confidence > results[j].Confidence
	})

	var kept []sig.Result
	for _, r := range results {
		end := r.Offset + r.Size
		conflictIdx := -1
		for i, k := range kept {
			kEnd := k.Offset + k.Size
			if r.Offset < kEnd && end > k.Offset {
				conflictIdx = i
				break
			}
		}
		if conflictIdx == -1 {
			kept = append(kept, r)
			continue
		}
		if better(r, kept[conflictIdx]) {
			kept[conflictIdx] = r
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Offset < kept[j].Offset })
	return kept
}

// better reports whether a should replace b under the confidence/size/offset
// policy: higher confidence wins, ties broken by larger size, then by lower
// offset.
func better(a, b sig.Result) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.Size != b.Size {
		return a.Size > b.Size
	}
	return a.Offset < b.Offset
}
