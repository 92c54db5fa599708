// Package render holds the thin collaborators that turn validated bars
// into artifacts: LilyPond tile sources (and optional invocation of the
// lilypond binary) and an SMF preview. Notation layout itself lives in
// LilyPond, not here.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"rhythmdeck/util"
)

// tileTemplate is the fixed single-line RhythmicStaff tile. %(RHYTHM)
// is replaced by one bank line; the tokens are LilyPond rhythm input
// as-is.
const tileTemplate = `\version "2.22.2"

#(set-global-staff-size 30)

\paper {
  indent = 0
  tagline = ##f
  top-margin = 0\mm
  bottom-margin = 0\mm
  left-margin = 0\mm
  right-margin = 0\mm
}

\layout {
  ragged-right = ##t
  ragged-last = ##t

  \context {
    \RhythmicStaff
    \remove "Time_signature_engraver"
  }
}

\score {
  \new RhythmicStaff {
    \time 4/4
    \stemUp
    \override StaffSymbol.line-count = #1
    \override StaffSymbol.staff-space = #(magstep -2)
    \override BarLine.stencil = ##f
    \override StaffSymbol.stencil = ##f
    \override Rest.font-size = #2
    \override Rest.Y-offset = #0

    %(RHYTHM)

    \bar ""
  }
}
`

// TilePath returns the .ly source path for a 1-based rhythm index.
func TilePath(tilesDir string, idx1 int) string {
	return filepath.Join(tilesDir, fmt.Sprintf("rhythm_%03d.ly", idx1))
}

// WriteTileSources writes one .ly tile source per bank line.
func WriteTileSources(tilesDir string, lines []string) error {
	if err := util.EnsureDir(tilesDir); err != nil {
		return err
	}
	for i, rhythm := range lines {
		src := strings.Replace(tileTemplate, "%(RHYTHM)", rhythm, 1)
		path := TilePath(tilesDir, i+1)
		if err := os.WriteFile(path, []byte(src), 0666); err != nil {
			return err
		}
	}
	return nil
}

// HaveLilypond reports whether the lilypond binary is on PATH.
func HaveLilypond() bool {
	_, err := exec.LookPath("lilypond")
	return err == nil
}

// RenderTiles invokes lilypond per tile source: -dpreview for tight
// cropping, --svg for vector output. Call WriteTileSources first.
func RenderTiles(tilesDir string, count int) error {
	for i := 1; i <= count; i++ {
		src := TilePath(tilesDir, i)
		out := filepath.Join(tilesDir, fmt.Sprintf("rhythm_%03d", i))
		cmd := exec.Command("lilypond", "-dpreview", "--svg", "-o", out, src)
		if msg, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("lilypond failed on %s: %v\n%s", src, err, msg)
		}
	}
	return nil
}
