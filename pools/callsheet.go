package pools

import (
	"fmt"
	"strings"

	"rhythmdeck/model"
)

// CallSheet renders the teacher-facing plain-text fallback for a
// computed pools document: one block per attendance interval.
func CallSheet(doc model.PoolsDoc) string {
	var lines []string
	lines = append(lines,
		"Rhythm Bingo — Call Sheet (text fallback)",
		"",
		"Recommendation: for today's attendance, use student cards 1–k and the caller symbol for that interval.",
		"All listed rhythms guarantee bingo for every marked card, and at least one full-card is possible.",
		"")
	for _, p := range doc.Pools {
		lines = append(lines, fmt.Sprintf("%s  (%d–%d children)  Use student cards 1–%d",
			p.Symbol, p.ChildrenMin, p.ChildrenMax, p.KEffective))
		if len(p.CallableRhythmIDs) > 0 {
			lines = append(lines, strings.Join(p.CallableRhythmIDs, " "))
		} else {
			lines = append(lines, "(no callable rhythms — check deck_qc)")
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
