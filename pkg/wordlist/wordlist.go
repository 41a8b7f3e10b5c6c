// Package wordlist reads the flat word-list input format: one word per
// line. Words are trimmed, lowercased, and deduplicated in order; malformed
// records are reported individually so one bad line does not discard an
// otherwise usable dictionary.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordlattice/wordlattice/pkg/lattice"
)

// RecordError describes a single rejected input record.
type RecordError struct {
	Line int    // 1-based line number
	Word string // the raw record, after trimming
	Err  error  // lattice.ErrEmptyWord or lattice.ErrReservedRune
}

func (e RecordError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Word, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// Options configures word-list reading.
type Options struct {
	// FailFast aborts on the first malformed record instead of collecting
	// record errors and continuing.
	FailFast bool

	// KeepCase disables the default lowercasing of input words.
	KeepCase bool
}

// ReadWords reads one word per line from r. Blank lines are skipped,
// surrounding whitespace is trimmed, words are lowercased unless
// Options.KeepCase is set, and duplicates are dropped with the first
// occurrence's position preserved.
//
// Malformed records (empty after trimming counts as blank, embedded
// reserved runes) are returned as RecordErrors alongside the valid words;
// with Options.FailFast the first such record is returned as the error.
func ReadWords(r io.Reader, opts Options) ([]string, []RecordError, error) {
	var words []string
	var bad []RecordError
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if !opts.KeepCase {
			word = strings.ToLower(word)
		}

		if err := lattice.ValidateWord(word); err != nil {
			rec := RecordError{Line: line, Word: word, Err: err}
			if opts.FailFast {
				return nil, nil, rec
			}
			bad = append(bad, rec)
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read words: %w", err)
	}
	return words, bad, nil
}

// LoadFile reads a word list from a file. See [ReadWords].
func LoadFile(path string, opts Options) ([]string, []RecordError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWords(f, opts)
}
