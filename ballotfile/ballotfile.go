// Package ballotfile reads an election file into a tally.
//
// The file is a stream of whitespace separated tokens: the candidate count N,
// N candidate names, then groups of N candidate ids, one group per ballot.
// An id of -1 ends a ballot's preferences. Reading stops at EOF or at the
// first token that is not an integer; a short final group is dropped.
package ballotfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"rcv/tally"
)

func Load(path string, opts tally.Options) (*tally.Tally, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(tally.ErrInput, "couldn't open file '%s': %v", path, err)
	}
	defer f.Close()
	opts.Trace(tally.LevelFileIO, "file opened", zap.String("file", path))
	return Read(f, path, opts)
}

// Read parses r. name is used only in log and error messages. On error no
// partial tally is returned.
func Read(r io.Reader, name string, opts tally.Options) (*tally.Tally, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, wrapScan(sc, name, "failed to read number of candidates")
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, errors.Wrapf(tally.ErrInput, "%s: failed to read number of candidates: %q", name, sc.Text())
	}
	if n < 1 || n > tally.MaxCandidates {
		return nil, errors.Wrapf(tally.ErrInput, "%s: candidate count %d outside 1..%d", name, n, tally.MaxCandidates)
	}
	opts.Trace(tally.LevelFileIO, "candidate count", zap.String("file", name), zap.Int("count", n))

	names := make([]string, n)
	for i := range names {
		if !sc.Scan() {
			return nil, wrapScan(sc, name, "failed to read candidate names")
		}
		names[i] = sc.Text()
		opts.Trace(tally.LevelFileIO, "candidate", zap.String("file", name), zap.Int("candidate", i), zap.String("name", names[i]))
	}

	t, err := tally.New(names, opts)
	if err != nil {
		return nil, errors.Wrapf(tally.ErrInput, "%s: %v", name, err)
	}

	prefs := make([]int, n)
	for readGroup(sc, prefs) {
		b := t.AddBallot(prefs)
		opts.Trace(tally.LevelFileIO, "vote", zap.String("file", name), zap.Int("id", b.ID), zap.String("preferences", formatPrefs(prefs)))
	}
	if err := sc.Err(); err != nil {
		t.Release()
		return nil, errors.Wrapf(tally.ErrInput, "%s: %v", name, err)
	}
	opts.Trace(tally.LevelFileIO, "end of file reached", zap.String("file", name))
	return t, nil
}

// readGroup fills prefs with the next ballot. It returns false at EOF or on
// the first non-integer token.
func readGroup(sc *bufio.Scanner, prefs []int) bool {
	for i := range prefs {
		if !sc.Scan() {
			return false
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return false
		}
		prefs[i] = v
	}
	return true
}

func wrapScan(sc *bufio.Scanner, name, msg string) error {
	if err := sc.Err(); err != nil {
		return errors.Wrapf(tally.ErrInput, "%s: %s: %v", name, msg, err)
	}
	return errors.Wrapf(tally.ErrInput, "%s: %s", name, msg)
}

func formatPrefs(prefs []int) string {
	parts := make([]string, len(prefs))
	for i, p := range prefs {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}
