package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the vertex that point idx becomes. Generation resolves all n
// names before sampling; they must be non-empty and pairwise distinct, or the
// run fails with ErrConstructFailed.
type IDFn func(idx int) string

// DefaultIDFn names a vertex by its point index in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names vertices the way spreadsheets name columns:
// A..Z, then AA..AZ, BA.., ZZ, AAA. Every idx ≥ 0 gets a distinct name.
func LetterIDFn(idx int) string {
	var buf [16]byte // 26^13 > MaxInt64
	i := len(buf)
	for k := idx + 1; k > 0; k = (k - 1) / 26 {
		i--
		buf[i] = byte('A' + (k-1)%26)
	}

	return string(buf[i:])
}

// PrefixIDFn returns a scheme that appends the decimal index to prefix,
// e.g. PrefixIDFn("p") yields "p0", "p1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs restores DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithLetterIDs names vertices A, B, ..., Z, AA, AB, ...
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixIDs names vertices prefix0, prefix1, ...
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// vertexIDs resolves the names of points 0..n-1.
// Complexity: O(n) calls to fn, O(n) space.
func vertexIDs(n int, fn IDFn) ([]string, error) {
	ids := make([]string, n)
	owner := make(map[string]int, n)
	for i := range ids {
		id, err := callIDFn(fn, i)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, fmt.Errorf("id scheme: empty name for point %d: %w", i, ErrConstructFailed)
		}
		if j, dup := owner[id]; dup {
			return nil, fmt.Errorf("id scheme: points %d and %d both named %q: %w", j, i, id, ErrConstructFailed)
		}
		owner[id] = i
		ids[i] = id
	}

	return ids, nil
}

// callIDFn turns a panicking scheme into ErrConstructFailed.
func callIDFn(fn IDFn, idx int) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("id scheme: panic at point %d: %v: %w", idx, r, ErrConstructFailed)
		}
	}()

	return fn(idx), nil
}
