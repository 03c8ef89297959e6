package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Record is one row of the input file. Records are immutable after
// loading and keep their input-file order. Duplicate numbers are
// permitted and processed independently.
type Record struct {
	Name           string
	Number         string
	AdditionalInfo string
}

// Encoding selects how the input file bytes are decoded.
type Encoding string

const (
	// UTF8 decodes the file as UTF-8, stripping a byte order mark if present.
	UTF8 Encoding = "utf-8"

	// Windows1251 decodes the file as Windows-1251 (Cyrillic).
	Windows1251 Encoding = "windows-1251"
)

// Load reads records from the file at path, decoding it as UTF-8.
func Load(path string) ([]Record, error) {
	return LoadWithEncoding(path, UTF8)
}

// LoadWithEncoding reads records from the file at path using the given
// encoding. The first line is skipped unconditionally. The returned
// error wraps the underlying *os.PathError, so a missing file can be
// detected with errors.Is(err, fs.ErrNotExist).
func LoadWithEncoding(path string, enc Encoding) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	r, err := decodingReader(f, enc)
	if err != nil {
		return nil, err
	}

	var records []Record
	scanner := bufio.NewScanner(r)

	first := true
	for scanner.Scan() {
		if first {
			first = false // header line, content never inspected
			continue
		}
		records = append(records, parseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	return records, nil
}

// decodingReader wraps r with the transformer for the given encoding.
func decodingReader(r io.Reader, enc Encoding) (io.Reader, error) {
	switch enc {
	case UTF8, "":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case Windows1251:
		return transform.NewReader(r, charmap.Windows1251.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported roster encoding: %s", enc)
	}
}

// parseLine splits a line on its first two commas. Missing fields stay
// empty; anything after the second comma belongs to the third field.
func parseLine(line string) Record {
	line = strings.TrimSuffix(line, "\r")

	parts := strings.SplitN(line, ",", 3)
	var rec Record
	rec.Name = parts[0]
	if len(parts) > 1 {
		rec.Number = parts[1]
	}
	if len(parts) > 2 {
		rec.AdditionalInfo = parts[2]
	}
	return rec
}
