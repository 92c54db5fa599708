package bank

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rhythmIDRe = regexp.MustCompile(`^R(\d{3})$`)

// RhythmID is the canonical id for a 1-based bank index: R001, R002, ...
func RhythmID(idx1 int) string {
	if idx1 <= 0 {
		panic("rhythm index must be 1-based")
	}
	return fmt.Sprintf("R%03d", idx1)
}

// RhythmIndex parses a canonical rhythm id back to its 1-based index.
func RhythmIndex(rid string) (int, error) {
	m := rhythmIDRe.FindStringSubmatch(strings.TrimSpace(rid))
	if m == nil {
		return 0, fmt.Errorf("invalid rhythm id %q (expected R###)", rid)
	}
	idx1, _ := strconv.Atoi(m[1])
	if idx1 <= 0 {
		return 0, fmt.Errorf("invalid rhythm id %q (index must be >= 1)", rid)
	}
	return idx1, nil
}
