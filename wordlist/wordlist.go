// Package wordlist loads and stores vocabularies. Entries are validated
// against the puzzle variant here, so malformed words never reach the solver.
package wordlist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

// Read parses one word per line. Blank lines and lines starting with '#' are
// skipped.
func Read(r io.Reader, v puzzle.Variant) ([]puzzle.Word, error) {
	var words []puzzle.Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := v.ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// ReadCSV takes the last field of every record, so both a bare column and an
// index,word layout load.
func ReadCSV(r io.Reader, v puzzle.Variant) ([]puzzle.Word, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	var words []puzzle.Word
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		s := strings.TrimSpace(record[len(record)-1])
		if s == "" {
			continue
		}
		w, err := v.ParseWord(s)
		if err != nil {
			line, _ := reader.FieldPos(len(record) - 1)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	return words, nil
}

// Load reads path, choosing the CSV reader for .csv files.
func Load(path string, v puzzle.Variant) ([]puzzle.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []puzzle.Word
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		words, err = ReadCSV(f, v)
	} else {
		words, err = Read(f, v)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Write stores one word per line.
func Write(w io.Writer, words []puzzle.Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(string(word) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
