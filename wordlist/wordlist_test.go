package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

func TestRead(t *testing.T) {
	in := "# answers\nSPEED\n\nabide\r\n  eagle  \n"
	words, err := Read(strings.NewReader(in), puzzle.Wordle)
	require.NoError(t, err)
	if diff := cmp.Diff([]puzzle.Word{"speed", "abide", "eagle"}, words); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejectsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("speed\nabides\n"), puzzle.Wordle)
	require.ErrorIs(t, err, puzzle.ErrMalformedWord)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Read(strings.NewReader("sp3ed\n"), puzzle.Wordle)
	assert.ErrorIs(t, err, puzzle.ErrWordSymbol)
}

func TestReadCSV(t *testing.T) {
	in := "2*4+5=13\n1,12+35=47\n\"2\",10+37=47\n"
	words, err := ReadCSV(strings.NewReader(in), puzzle.Nerdle)
	require.NoError(t, err)
	if diff := cmp.Diff([]puzzle.Word{"2*4+5=13", "12+35=47", "10+37=47"}, words); diff != "" {
		t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadCSV(strings.NewReader("2*4+5=13\n3,2*4+5=1\n"), puzzle.Nerdle)
	require.ErrorIs(t, err, puzzle.ErrWordLength)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadAndWrite(t *testing.T) {
	dir := t.TempDir()
	want := []puzzle.Word{"crane", "pious", "dumpy"}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))
	assert.Equal(t, "crane\npious\ndumpy\n", buf.String())

	txt := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(txt, buf.Bytes(), 0o644))
	got, err := Load(txt, puzzle.Wordle)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	csvPath := filepath.Join(dir, "words.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte("0,crane\n1,pious\n2,dumpy\n"), 0o644))
	got, err = Load(csvPath, puzzle.Wordle)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Load(filepath.Join(dir, "missing.txt"), puzzle.Wordle)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
