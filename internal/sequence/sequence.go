package sequence

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Sample is a bundled example sequence for trying the pipeline without input.
const Sample = "MKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQAPILSRVGDGTQDNLSGAEKAVQVKVKALPDAQFEVVHSLAKWKRQTLGQHDFSAGEGLYTHMKALRPDEDRLSPLHSVYVDQWDWERVMGDGERQFSTLKSTVEAIWAGIKATEAAVSEEFGLAPFLPDQIHFVHSQELLSRYPDLDAKGRERAIAKDLGAVFLVGIGGKLSDGHRHDVRAPDYDDWSTPSELGHAGLNGDILVWNPVLEDAFELSSMGIRVDADTLKHQLALTGDEDRLELEWHQALLRGEMPQTIGGGIGQSRLTMLLLQLPHIGQVQAGVWPAAVRESVPSLL"

// LogPrefixLen is how much of a sequence goes into log lines.
const LogPrefixLen = 50

var ErrNoRecords = errors.New("no FASTA records found")

// Record is one FASTA entry.
type Record struct {
	ID          string
	Description string
	Seq         string // upper-case, no whitespace
}

// ReadFASTA reads all records from r. Input without a '>' header is treated
// as a single unnamed record so that a pasted raw sequence also works.
func ReadFASTA(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16<<20)

	var (
		records []Record
		current *Record
		seq     bytes.Buffer
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Seq = Clean(seq.String())
		records = append(records, *current)
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, ">"):
			flush()
			header := strings.TrimSpace(line[1:])
			id, desc, _ := strings.Cut(header, " ")
			current = &Record{ID: id, Description: strings.TrimSpace(desc)}
		case strings.HasPrefix(line, ";"):
			// comment line
		default:
			if current == nil && strings.TrimSpace(line) == "" {
				continue
			}
			if current == nil {
				current = &Record{}
			}
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// Clean drops whitespace and upper-cases residue letters.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Prefix returns at most n runes of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
