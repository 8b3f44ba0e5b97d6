// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/core"
)

const (
	// GapToken is printed for a GAP slot.
	GapToken = "---"
	// Separator is printed between the two aligned sequences.
	Separator = "==="
)

// FormatFrame renders f as comma-joined "%f,%f,%f" triples.
func FormatFrame(f core.Frame) string {
	var sb strings.Builder
	for k, p := range f {
		if k > 0 {
			sb.WriteByte(',')
		}
		for v, x := range p {
			if v > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%f", x)
		}
	}

	return sb.String()
}

// FormatSlot renders s as GapToken or FormatFrame(s.Frame).
func FormatSlot(s align.Slot) string {
	if s.IsGap() {
		return GapToken
	}

	return FormatFrame(s.Frame)
}

// WriteAlignment writes res.A, Separator and res.B to w, one line per slot.
func WriteAlignment(w io.Writer, res align.Result) error {
	bw := bufio.NewWriter(w)
	for _, s := range res.A {
		bw.WriteString(FormatSlot(s))
		bw.WriteByte('\n')
	}
	bw.WriteString(Separator)
	bw.WriteByte('\n')
	for _, s := range res.B {
		bw.WriteString(FormatSlot(s))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
