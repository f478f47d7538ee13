package discovery

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Header is the part of a HOA automaton header shown when listing a corpus
type Header struct {
	Name   string
	States int
	APs    []string
}

var (
	namePattern   = regexp.MustCompile(`^name:\s*"((?:[^"\\]|\\.)*)"`)
	statesPattern = regexp.MustCompile(`^States:\s*(\d+)`)
	apPattern     = regexp.MustCompile(`^AP:\s*(\d+)((?:\s+"(?:[^"\\]|\\.)*")*)`)
	quotedPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// HeaderParser reads HOA headers
type HeaderParser struct{}

// NewHeaderParser creates a new HeaderParser
func NewHeaderParser() *HeaderParser {
	return &HeaderParser{}
}

// ReadHeader reads the header of the HOA file at path, up to --BODY--.
// Unknown header items are ignored.
func (p *HeaderParser) ReadHeader(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer f.Close()

	header := &Header{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "--BODY--" {
			break
		}
		if m := namePattern.FindStringSubmatch(line); m != nil {
			header.Name = m[1]
			continue
		}
		if m := statesPattern.FindStringSubmatch(line); m != nil {
			header.States, _ = strconv.Atoi(m[1])
			continue
		}
		if m := apPattern.FindStringSubmatch(line); m != nil {
			for _, q := range quotedPattern.FindAllStringSubmatch(m[2], -1) {
				header.APs = append(header.APs, q[1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return header, nil
}
