// Package dedup finds duplicate files by jodyhash fingerprint.
//
// Files are first bucketed by size, then every file in a multi-member
// bucket is hashed by chaining fixed-size reads through one 64-bit
// accumulator. Equal (size, hash) pairs are reported as duplicate
// candidate groups; the hash is not cryptographic, so callers that
// need certainty must byte-compare the members.
package dedup

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jbruchon/go-jodyhash"
)

// readSize is the chunk size files are read and chained in. A multiple
// of the word size, so only the final chunk carries a tail.
const readSize = 32768

type options struct {
	workers int
	logger  *slog.Logger
}

// Option configures a Scanner.
type Option func(*options)

// WithWorkers configures the number of concurrent hashing workers.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger configures structured logging. If nil is passed, logging
// stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Group is a set of paths whose contents share one fingerprint.
type Group struct {
	Size  int64
	Hash  uint64
	Paths []string
}

// Scanner walks file trees and groups files by fingerprint.
type Scanner struct {
	workers int
	logger  *slog.Logger
}

// NewScanner creates a Scanner with the given options.
func NewScanner(opts ...Option) *Scanner {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{workers: o.workers, logger: o.logger}
}

// Duplicates walks roots and returns every group of two or more files
// with equal size and equal fingerprint, ordered by size descending.
// Unreadable files are logged and skipped; walk errors abort the scan.
func (s *Scanner) Duplicates(ctx context.Context, roots ...string) ([]Group, error) {
	var total int
	bySize := make(map[int64][]string)
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			bySize[info.Size()] = append(bySize[info.Size()], path)
			total++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	var (
		mu     sync.Mutex
		groups = make(map[[2]uint64][]string)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for size, paths := range bySize {
		if len(paths) < 2 {
			continue
		}
		for _, path := range paths {
			size, path := size, path
			g.Go(func() error {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				sum, err := HashFile(path)
				if err != nil {
					// Files can vanish or become unreadable
					// mid-scan; that disqualifies the file,
					// not the scan.
					s.logger.Warn("skipping unreadable file",
						"path", path, "error", err)
					return nil
				}
				key := [2]uint64{uint64(size), sum}
				mu.Lock()
				groups[key] = append(groups[key], path)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Group, 0, len(groups))
	for key, paths := range groups {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		out = append(out, Group{
			Size:  int64(key[0]),
			Hash:  key[1],
			Paths: paths,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Hash < out[j].Hash
	})
	s.logger.Info("scan complete",
		"files", total, "groups", len(out))
	return out, nil
}

// HashFile returns the 64-bit block fingerprint of the file at path,
// chaining readSize chunks through one accumulator.
func HashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return HashReader(f)
}

// HashReader fingerprints r until EOF.
func HashReader(r io.Reader) (uint64, error) {
	var acc uint64
	buf := make([]byte, readSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if herr := jodyhash.BlockHash64(&acc, buf[:n]); herr != nil {
				return 0, herr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return acc, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Changed reports whether the file at path no longer matches a
// previously recorded fingerprint.
func Changed(path string, oldSum uint64) (bool, error) {
	sum, err := HashFile(path)
	if err != nil {
		return false, err
	}
	return sum != oldSum, nil
}
