// SPDX-License-Identifier: MIT

package textio

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

const zstdSuffix = ".zst"

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// Open returns a reader over the decoded contents of path.
// The caller must Close it; closing the stdin reader is a no-op.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, zstdSuffix) {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("creating zstd decoder for %s: %w", path, err)
	}

	return &zstdFile{Decoder: dec, f: f}, nil
}

// zstdFile closes the decoder and then the file underneath it.
type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()

	return z.f.Close()
}

// Expand resolves every pattern to the paths it matches, in pattern order
// and lexical order within a pattern. Stdin and patterns with no match are
// kept as given.
func Expand(patterns []string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		if p == Stdin {
			paths = append(paths, p)
			continue
		}
		if !doublestar.ValidatePathPattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, p)
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, p, err)
		}
		if len(matches) == 0 {
			paths = append(paths, p)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}

	return paths, nil
}
