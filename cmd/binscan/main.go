package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/shirou/binscan"
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var (
	doExtract   = flag.Bool("e", false, "Extract carved artifacts to disk")
	outputDir   = flag.String("o", "extracted", "Output directory for extracted artifacts")
	list        = flag.Bool("l", false, "List the signature catalog, sorted by name")
	includeList = flag.String("include", "", "Comma-separated list of signature names to restrict the scan to")
	excludeList = flag.String("exclude", "", "Comma-separated list of signature names to drop from the scan")
	verbose     = flag.Bool("v", false, "Enable verbose (debug) logging")
)

const programName = "binscan"

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		showCatalog()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file...\n", programName)
		flag.PrintDefaults()
		os.Exit(1)
	}

	config, err := binscan.Init(binscan.InitOptions{
		Include: splitNames(*includeList),
		Exclude: splitNames(*excludeList),
	})
	if err != nil {
		slog.Error("initializing signature catalog", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range args {
		if err := processFile(config, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", programName, path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func processFile(config *binscan.Config, path string) error {
	buffer, err := binutil.ReadFileViaMmap(path)
	if err != nil {
		return fmt.Errorf("cannot read: %w", err)
	}

	ctx := context.Background()
	results, err := binscan.Scan(ctx, config, buffer)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	for _, r := range results {
		fmt.Printf("%d\t%s\n", r.Offset, r.Description)
	}

	if *doExtract {
		recurseExtract(ctx, config, buffer, results, *outputDir, map[[2]int]bool{}, 0)
	}
	return nil
}

// recurseExtract drives recursive re-extraction: a carved child file
// discovered by an internal extractor is itself scanned and extracted,
// unless its signature set DoNotRecurse or the offset/size pair was already
// visited at this level. depth stops the recursion at maxDepth (8) levels to
// guard against pathological nested containers. External extractors are only reported,
// never shelled out to, since the core never invokes a third-party tool
// itself.
func recurseExtract(ctx context.Context, config *binscan.Config, buffer []byte, results []sig.Result, outDir string, visited map[[2]int]bool, depth int) {
	const maxDepth = 8
	if depth >= maxDepth {
		slog.Warn("recursion depth limit reached", "depth", depth)
		return
	}

	for _, r := range results {
		key := [2]int{r.Offset, r.Size}
		if visited[key] {
			continue
		}
		visited[key] = true

		ext, ok := binscan.ExtractorFor(config, r.Name)
		if !ok || ext == nil {
			continue
		}

		if ext.External != nil {
			slog.Info("external extraction required", "signature", r.Name, "offset", r.Offset,
				"command", ext.External.Command, "args", ext.External.Args)
			continue
		}
		if ext.Internal == nil {
			continue
		}

		dir := fmt.Sprintf("%s/%s.%d", outDir, r.Name, r.Offset)
		res, err := binscan.Extract(ctx, config, r, buffer, dir)
		if err != nil || !res.Success {
			slog.Warn("extraction failed", "signature", r.Name, "offset", r.Offset, "error", err)
			continue
		}
		if ext.DoNotRecurse {
			continue
		}

		child, ok := readFirstCarvedFile(dir)
		if !ok {
			continue
		}
		childResults, err := binscan.Scan(ctx, config, child)
		if err != nil {
			continue
		}
		recurseExtract(ctx, config, child, childResults, dir, map[[2]int]bool{}, depth+1)
	}
}

func readFirstCarvedFile(dir string) ([]byte, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return nil, false
	}
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		return nil, false
	}
	return data, true
}

func showCatalog() {
	config, err := binscan.Init(binscan.InitOptions{})
	if err != nil {
		slog.Error("initializing signature catalog", "error", err)
		os.Exit(1)
	}
	entries := config.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	for _, e := range entries {
		fmt.Printf("%-20s %s\n", e.Name, e.Description)
	}
}
