package soak

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Report aggregates the games of one soak run.
type Report struct {
	// Configuration
	Config   tetris.Config
	Games    int
	Workers  int
	Duration time.Duration
	Seed     uint64

	// Results
	Results  []GameResult
	WallTime time.Duration

	clears *intmap.Map[int, int64]
}

// Bucket counts the locks that cleared Rows rows at once.
type Bucket struct {
	Rows  int
	Count int64
}

func (r *Report) add(res GameResult) {
	if r.clears == nil {
		r.clears = intmap.New[int, int64](tetris.PieceSize)
	}
	for rows := 1; rows <= tetris.PieceSize; rows++ {
		if n, ok := res.clears.Get(rows); ok {
			c, _ := r.clears.Get(rows)
			r.clears.Put(rows, c+n)
		}
	}
	r.Results = append(r.Results, res)
}

// Histogram lists line clears by rows cleared, one bucket per possible
// count, including empty ones.
func (r *Report) Histogram() []Bucket {
	out := make([]Bucket, 0, tetris.PieceSize)
	for rows := 1; rows <= tetris.PieceSize; rows++ {
		var n int64
		if r.clears != nil {
			n, _ = r.clears.Get(rows)
		}
		out = append(out, Bucket{Rows: rows, Count: n})
	}
	return out
}

func (r *Report) TotalUpdates() int64 {
	var n int64
	for _, res := range r.Results {
		n += res.Updates
	}
	return n
}

func (r *Report) TotalPieces() int64 {
	var n int64
	for _, res := range r.Results {
		n += int64(res.Pieces)
	}
	return n
}

func (r *Report) TotalLines() int64 {
	var n int64
	for _, res := range r.Results {
		n += int64(res.Lines)
	}
	return n
}

func (r *Report) GameOvers() int {
	n := 0
	for _, res := range r.Results {
		if res.Over {
			n++
		}
	}
	return n
}

// Best returns the highest scoring game, the first one on ties.
func (r *Report) Best() (GameResult, bool) {
	if len(r.Results) == 0 {
		return GameResult{}, false
	}
	best := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.Score > best.Score {
			best = res
		}
	}
	return best, true
}

const reportTemplate = `
# Soak Report

## Configuration
- **Games:** {{.Games}}
- **Workers:** {{.Workers}}
- **Simulated Time per Game:** {{.Duration}}
- **Base Seed:** {{.Seed}}
- **Well:** {{.Config.Rows}}x{{.Config.Columns}}, {{.Config.Randomizer}} randomizer

## Results
- **Wall Time:** {{.WallTime}}
- **Updates:** {{comma .TotalUpdates}} ({{rate .TotalUpdates .WallTime}}/s)
- **Pieces:** {{comma .TotalPieces}}
- **Lines:** {{comma .TotalLines}}
- **Games Over:** {{.GameOvers}} of {{len .Results}}

## Games
| Session | Seed | Pieces | Lines | Score | Level | Over |
|---------|------|-------:|------:|------:|------:|------|
{{range .Results}}| {{.Session}} | {{.Seed}} | {{.Pieces}} | {{.Lines}} | {{comma .Score}} | {{.Level}} | {{.Over}} |
{{end}}
## Line Clears
| Rows | Count |
|-----:|------:|
{{range .Histogram}}| {{.Rows}} | {{comma .Count}} |
{{end}}`

var funcs = template.FuncMap{
	"comma": func(v any) string {
		switch val := v.(type) {
		case int:
			return humanize.Comma(int64(val))
		case int64:
			return humanize.Comma(val)
		default:
			return fmt.Sprint(v)
		}
	},
	"rate": func(n int64, d time.Duration) string {
		if d <= 0 {
			return "n/a"
		}
		return humanize.CommafWithDigits(float64(n)/d.Seconds(), 1)
	},
}

var tmpl = template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate))

// Generate writes the report as Markdown.
func (r *Report) Generate(w io.Writer) error {
	return tmpl.Execute(w, r)
}

// Summary writes a short colored digest for a terminal.
func (r *Report) Summary(w io.Writer) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%d games", len(r.Results))
	fmt.Fprintf(w, " in %s: %s pieces, %s lines\n",
		r.WallTime.Round(time.Millisecond), humanize.Comma(r.TotalPieces()), humanize.Comma(r.TotalLines()))

	if best, ok := r.Best(); ok {
		color.New(color.FgGreen).Fprintf(w, "best: %s points (seed %d, level %d)\n",
			humanize.Comma(int64(best.Score)), best.Seed, best.Level)
	}
	if missing := r.Games - len(r.Results); missing > 0 {
		color.New(color.FgYellow).Fprintf(w, "%d games did not finish\n", missing)
	}
}
