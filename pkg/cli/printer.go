package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lintang-b-s/Pyramidx/pkg/engine"
)

const impossibleMessage = "It's impossible to reach a goal with these numbers!"

type Printer struct {
	out   io.Writer
	label *color.Color
	value *color.Color
	fail  *color.Color
}

func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:   out,
		label: color.New(color.Bold),
		value: color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed),
	}
	if !colored {
		p.label.DisableColor()
		p.value.DisableColor()
		p.fail.DisableColor()
	}
	return p
}

// PrintResult writes the max sum and the path, or the infeasibility message.
func (p *Printer) PrintResult(res *engine.Result) {
	if !res.Feasible {
		p.fail.Fprintln(p.out, impossibleMessage)
		return
	}
	p.label.Fprint(p.out, "Max sum: ")
	p.value.Fprintln(p.out, res.MaxSum)
	p.label.Fprint(p.out, "Path: ")
	fmt.Fprintln(p.out, FormatPath(res.Path))
}

func (p *Printer) PrintHeader(name string) {
	p.label.Fprintf(p.out, "== %s\n", name)
}

func (p *Printer) PrintError(err error) {
	p.fail.Fprintf(p.out, "Couldn't parse input: %v\n", err)
}

func FormatPath(path []int32) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, ", ")
}
