// Package driver orchestrates front-end runs for the CLI: loading
// files, running the lexer, collecting diagnostics and caching
// results.
package driver

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/source"
	"ripple/internal/token"
)

// TokenizeResult is the outcome of lexing one file.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
}

// Options configures driver runs.
type Options struct {
	// MaxDiagnostics bounds each file's diagnostic bag.
	MaxDiagnostics int
	// Cache, when non-nil, is consulted before lexing and updated
	// after.
	Cache *DiskCache
}

// Tokenize lexes one file to EOF.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(file, opts), nil
}

// TokenizeVirtual lexes in-memory content (tests, stdin).
func TokenizeVirtual(name string, content []byte, opts Options) *TokenizeResult {
	return tokenizeFile(source.NewVirtual(name, content), opts)
}

func tokenizeFile(file *source.File, opts Options) *TokenizeResult {
	if cached, ok := opts.Cache.Get(file); ok {
		return cached
	}

	bag := diag.NewBag(maxDiag(opts))
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	res := &TokenizeResult{
		File:   file,
		Tokens: tokens,
		Bag:    bag,
	}
	opts.Cache.Put(file, res)
	return res
}

// TokenizeAll lexes several files concurrently, bounded by GOMAXPROCS.
// Each file gets its own lexer and bag, so nothing is shared between
// goroutines; results come back in input order.
func TokenizeAll(paths []string, opts Options) ([]*TokenizeResult, error) {
	results := make([]*TokenizeResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			res, err := Tokenize(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MergeBags collects every file's diagnostics into one bag, ordered by
// file path for deterministic output.
func MergeBags(results []*TokenizeResult) *diag.Bag {
	ordered := make([]*TokenizeResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].File.Path < ordered[j].File.Path
	})

	total := 0
	for _, r := range ordered {
		total += r.Bag.Len()
	}
	merged := diag.NewBag(total)
	for _, r := range ordered {
		merged.Merge(r.Bag)
	}
	return merged
}

func maxDiag(opts Options) int {
	if opts.MaxDiagnostics <= 0 {
		return 100
	}
	return opts.MaxDiagnostics
}
