package domain

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// Sigil is the marker that prefixes the embedded spec hash in a lockfile.
const Sigil = "# ENVHASH:"

// EncodeSigil returns the marker line for hash, terminated by a single newline.
func EncodeSigil(hash string) string {
	return Sigil + " " + hash + "\n"
}

// DecodeSigil scans every line of r and returns the trimmed trailer of the
// first marker line. It does not assume the marker is on line one.
func DecodeSigil(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if trailer, ok := strings.CutPrefix(line, Sigil); ok {
			return strings.TrimSpace(trailer), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", zerr.Wrap(ErrLockfileReadFailed, err.Error())
	}

	return "", zerr.Wrap(ErrNoSigil, "no line starts with "+Sigil)
}
