// Package binscan identifies and extracts embedded firmware artifacts from
// a binary blob: filesystems, compressed streams, bootloader images,
// partition tables, and the like.
package binscan

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/scanner"
	"github.com/shirou/binscan/internal/sig"
	_ "github.com/shirou/binscan/internal/signatures"
)

// SignatureResult is one validated hit in a scanned buffer.
type SignatureResult = sig.Result

// ExtractionResult reports the outcome of carving a hit to disk.
type ExtractionResult = sig.ExtractionResult

// InitOptions selects a subset of the catalog by name.
type InitOptions struct {
	Include []string // if non-empty, only these signatures are considered
	Exclude []string // signatures to drop from the default (or Include) set
}

// Config is an opaque, immutable scan configuration produced by Init.
type Config struct {
	catalog *sig.Catalog
	scanner *scanner.Scanner
}

// Entries returns the signatures selected by this Config, sorted by name.
func (c *Config) Entries() []sig.Signature { return c.catalog.Entries() }

// Init builds a Config from a subset of the signature catalog. Unknown
// names in Include or Exclude are reported as a ConfigError.
func Init(opts InitOptions) (*Config, error) {
	catalog, err := sig.NewCatalog(opts.Include, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("binscan: config error: %w", err)
	}
	s, err := scanner.Build(catalog)
	if err != nil {
		return nil, fmt.Errorf("binscan: building scanner: %w", err)
	}
	return &Config{catalog: catalog, scanner: s}, nil
}

// Scan runs every signature in config against buffer and returns its
// validated, overlap-resolved hits in ascending offset order.
func Scan(ctx context.Context, config *Config, buffer []byte) ([]SignatureResult, error) {
	return scanner.Scan(ctx, config.scanner, buffer)
}

// Binwalk is the minimal-ceremony entry point: the full catalog, no
// filtering.
type Binwalk struct {
	config *Config
}

// New builds a Binwalk over the full signature catalog.
func New() *Binwalk {
	config, err := Init(InitOptions{})
	if err != nil {
		// The full catalog is registered at init() time and always valid;
		// a failure here means a programming error, not a runtime one.
		panic(fmt.Sprintf("binscan: default catalog failed to initialize: %v", err))
	}
	return &Binwalk{config: config}
}

// Scan runs the full catalog against buffer.
func (b *Binwalk) Scan(ctx context.Context, buffer []byte) ([]SignatureResult, error) {
	return Scan(ctx, b.config, buffer)
}

// ScanFile memory-maps path and scans its contents.
func (b *Binwalk) ScanFile(ctx context.Context, path string) ([]SignatureResult, error) {
	return ScanFile(ctx, b.config, path)
}

// ScanFile memory-maps path and scans its contents against config.
func ScanFile(ctx context.Context, config *Config, path string) ([]SignatureResult, error) {
	buffer, err := binutil.ReadFileViaMmap(path)
	if err != nil {
		return nil, fmt.Errorf("binscan: %w", err)
	}
	return Scan(ctx, config, buffer)
}

// Extract carves result out of buffer under outputDir through a chroot
// boundary, dispatching to result.Name's internal extractor. Results whose
// signature has no Internal extractor, or declined extraction, report
// ExtractionResult{} with a nil error: this is not a failure, just nothing
// to carve.
func Extract(ctx context.Context, config *Config, result SignatureResult, buffer []byte, outputDir string) (ExtractionResult, error) {
	entry, ok := config.catalog.Get(result.Name)
	if !ok {
		return ExtractionResult{}, fmt.Errorf("binscan: unknown signature %q", result.Name)
	}
	if result.ExtractionDeclined || entry.Extractor == nil || entry.Extractor.Internal == nil {
		return ExtractionResult{}, nil
	}
	if err := ctx.Err(); err != nil {
		return ExtractionResult{}, err
	}
	return entry.Extractor.Internal(buffer, result.Offset, outputDir), nil
}

// ExtractorFor exposes a signature's extractor contract so a driver can
// dispatch External extractors itself (the core never shells out).
func ExtractorFor(config *Config, name string) (*sig.Extractor, bool) {
	entry, ok := config.catalog.Get(name)
	if !ok {
		return nil, false
	}
	return entry.Extractor, true
}

// Target names one scan unit for ScanAll: either an in-memory buffer or a
// file path, mutually exclusive.
type Target struct {
	Name   string // label carried through into ScanOutcome, not read from disk
	Path   string
	Buffer []byte
}

// ScanOutcome pairs a Target's results with any error encountered scanning
// it.
type ScanOutcome struct {
	Target  Target
	Results []SignatureResult
	Err     error
}

// ScanAll scans every target concurrently, bounded by GOMAXPROCS, and
// returns one outcome per target in input order.
func ScanAll(ctx context.Context, config *Config, targets []Target) []ScanOutcome {
	outcomes := make([]ScanOutcome, len(targets))

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t Target) {
			defer wg.Done()
			defer func() { <-sem }()

			buffer := t.Buffer
			if buffer == nil && t.Path != "" {
				data, err := binutil.ReadFileViaMmap(t.Path)
				if err != nil {
					outcomes[i] = ScanOutcome{Target: t, Err: fmt.Errorf("binscan: %w", err)}
					return
				}
				buffer = data
			}
			results, err := Scan(ctx, config, buffer)
			outcomes[i] = ScanOutcome{Target: t, Results: results, Err: err}
		}(i, t)
	}
	wg.Wait()
	return outcomes
}
