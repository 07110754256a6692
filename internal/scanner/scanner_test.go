package scanner

import (
	"context"
	"testing"

	"github.com/shirou/binscan/internal/sig"
)

func buildCatalog(t *testing.T, entries ...sig.Signature) *sig.Catalog {
	t.Helper()
	for _, e := range entries {
		sig.Register(e)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	c, err := sig.NewCatalog(names, nil)
	if err != nil {
		t.Fatalf("NewCatalog() unexpected error: %v", err)
	}
	return c
}

func alwaysAccept(name string) sig.Parser {
	return func(buffer []byte, offset int) (sig.Result, *sig.Error) {
		return sig.Result{Offset: offset, Size: 4, Confidence: sig.ConfidenceMedium}, nil
	}
}

func TestScanFindsMagicHit(t *testing.T) {
	catalog := buildCatalog(t, sig.Signature{
		Name:   "scan-find-hit",
		Magic:  [][]byte{{0xDE, 0xAD, 0xBE, 0xEF}},
		Parser: alwaysAccept("scan-find-hit"),
	})

	s, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	buffer := []byte{0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF, 0x00}
	results, err := Scan(context.Background(), s, buffer)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Offset != 2 || results[0].Name != "scan-find-hit" {
		t.Errorf("results[0] = %+v", results[0])
	}
}

func TestScanShortSignatureOnlyAtOffsetZero(t *testing.T) {
	catalog := buildCatalog(t, sig.Signature{
		Name:   "scan-short-sig",
		Short:  true,
		Magic:  [][]byte{{0xAA}},
		Parser: alwaysAccept("scan-short-sig"),
	})
	s, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	t.Run("matches at offset 0", func(t *testing.T) {
		results, err := Scan(context.Background(), s, []byte{0xAA, 0, 0})
		if err != nil {
			t.Fatalf("Scan() unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
	})

	t.Run("ignores the same byte elsewhere", func(t *testing.T) {
		results, err := Scan(context.Background(), s, []byte{0, 0xAA, 0})
		if err != nil {
			t.Fatalf("Scan() unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("len(results) = %d, want 0 for a short signature found off offset 0", len(results))
		}
	})
}

func TestScanDropsFailedParse(t *testing.T) {
	reject := func(buffer []byte, offset int) (sig.Result, *sig.Error) {
		return sig.Result{}, sig.Errf("never valid")
	}
	catalog := buildCatalog(t, sig.Signature{
		Name:   "scan-always-reject",
		Magic:  [][]byte{{0xBB}},
		Parser: reject,
	})
	s, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	results, err := Scan(context.Background(), s, []byte{0xBB, 0xBB})
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0 when every candidate fails to parse", len(results))
	}
}

func TestScanContextCancellation(t *testing.T) {
	catalog := buildCatalog(t, sig.Signature{
		Name:   "scan-ctx-cancel",
		Magic:  [][]byte{{0xCC}},
		Parser: alwaysAccept("scan-ctx-cancel"),
	})
	s, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Scan(ctx, s, []byte{0xCC, 0xCC, 0xCC})
	if err == nil {
		t.Errorf("Scan() expected error on a pre-cancelled context, got nil")
	}
}

func TestResolveOverlapsKeepsHigherConfidence(t *testing.T) {
	low := sig.Result{Name: "low", Offset: 0, Size: 10, Confidence: sig.ConfidenceLow}
	high := sig.Result{Name: "high", Offset: 5, Size: 10, Confidence: sig.ConfidenceHigh}

	kept := resolveOverlaps([]sig.Result{low, high})
	if len(kept) != 1 || kept[0].Name != "high" {
		t.Errorf("resolveOverlaps() = %+v, want only the higher-confidence overlapping hit", kept)
	}
}

func TestResolveOverlapsTieBreaksBySizeThenOffset(t *testing.T) {
	small := sig.Result{Name: "small", Offset: 10, Size: 5, Confidence: sig.ConfidenceMedium}
	big := sig.Result{Name: "big", Offset: 8, Size: 20, Confidence: sig.ConfidenceMedium}

	kept := resolveOverlaps([]sig.Result{small, big})
	if len(kept) != 1 || kept[0].Name != "big" {
		t.Errorf("resolveOverlaps() = %+v, want the larger same-confidence hit to win", kept)
	}
}

func TestResolveOverlapsNonOverlappingBothSurvive(t *testing.T) {
	a := sig.Result{Name: "a", Offset: 0, Size: 4, Confidence: sig.ConfidenceLow}
	b := sig.Result{Name: "b", Offset: 100, Size: 4, Confidence: sig.ConfidenceLow}

	kept := resolveOverlaps([]sig.Result{b, a})
	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2 for non-overlapping hits", len(kept))
	}
	if kept[0].Offset != 0 || kept[1].Offset != 100 {
		t.Errorf("kept not sorted by ascending offset: %+v", kept)
	}
}
