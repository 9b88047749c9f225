package camera

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteBBox draws the viewport as a box diagram: the y bounds on the left
// axis, the x bounds under the bottom axis, and the resolution as arrows
// along the top and right edges. Lines carry no trailing whitespace.
//
//	          ∧       <-------800------->
//	+3.00e+00╶┤      ┌───────────────────┐ ∧
//	          │      │                   │ ╎
//	          │      │                   │ 600
//	          ...
func (c *Camera) WriteBBox(w io.Writer) error {
	_, err := io.WriteString(w, c.Diagram())
	return err
}

// Diagram returns the text written by WriteBBox.
func (c *Camera) Diagram() string {
	p := c.pos
	arrow := widthArrow(p.res.Width)
	n := len(arrow)

	inner := strings.Repeat(" ", n)
	rule := strings.Repeat("─", n)
	side := "          │      │" + inner + "│ "

	lines := []string{
		"          ∧       " + arrow,
		fmt.Sprintf("%+.2e╶┤      ┌%s┐ ∧", p.ymax, rule),
		side + "╎",
		side + "╎",
		side + strconv.Itoa(p.res.Height),
		side + "╎",
		side + "╎",
		fmt.Sprintf("%+.2e╶┤      └%s┘ v", p.ymin, rule),
		"          │",
		"          ╎",
		"           ╶╶╶───┬" + rule + "┬─────>",
		fmt.Sprintf("             %+.2e%s%+.2e", p.xmin, strings.Repeat(" ", max(n-8, 0)), p.xmax),
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// widthArrow centres the width in a dashed arrow. Odd-length numbers get
// one extra dash so both sides stay balanced.
func widthArrow(width int) string {
	s := strconv.Itoa(width)
	pad := max(16+len(s)%2-len(s), 0)
	left := pad / 2
	return "<" + strings.Repeat("-", left) + s + strings.Repeat("-", pad-left) + ">"
}
