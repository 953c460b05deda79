package tspfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/annealtsp/tsp"
)

// ExternalIDs maps tour positions to the 1-based ids the cities were read
// with. Entries outside points are reported as-is plus one.
func ExternalIDs(points []tsp.Point, tour tsp.Tour) []int {
	out := make([]int, len(tour))
	for k, idx := range tour {
		if idx >= 0 && idx < len(points) {
			out[k] = points[idx].ID + 1
			continue
		}
		out[k] = idx + 1
	}

	return out
}

// FormatCost renders a cost with six significant digits.
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'g', 6, 64)
}

// WriteReport prints the best cost and the visiting order in external ids.
func WriteReport(w io.Writer, points []tsp.Point, res tsp.Result) error {
	ids := ExternalIDs(points, res.Tour)
	parts := make([]string, len(ids))
	for k, id := range ids {
		parts[k] = strconv.Itoa(id)
	}

	_, err := fmt.Fprintf(w, "Best tour cost: %s\nOptimal tour sequence: %s\n",
		FormatCost(res.Cost), strings.Join(parts, " "))

	return err
}

// WriteSummary prints run statistics in human-readable form.
func WriteSummary(w io.Writer, points []tsp.Point, res tsp.Result, elapsed time.Duration) error {
	b := tsp.Bounds(points)
	st := res.Stats

	var sb strings.Builder
	fmt.Fprintf(&sb, "cities:        %s\n", humanize.Comma(int64(len(points))))
	fmt.Fprintf(&sb, "bounds:        [%g, %g] .. [%g, %g]\n", b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
	fmt.Fprintf(&sb, "iterations:    %s\n", humanize.Comma(int64(st.Iterations)))
	fmt.Fprintf(&sb, "accepted:      %s (uphill %s)\n", humanize.Comma(int64(st.Accepted)), humanize.Comma(int64(st.Uphill)))
	fmt.Fprintf(&sb, "improvements:  %s\n", humanize.Comma(int64(st.Improvements)))
	if st.PolishMoves > 0 {
		fmt.Fprintf(&sb, "2-opt moves:   %s\n", humanize.Comma(int64(st.PolishMoves)))
	}
	fmt.Fprintf(&sb, "final temp:    %g\n", st.FinalTemperature)
	if st.StoppedEarly {
		sb.WriteString("stopped early: temperature floor reached\n")
	}
	fmt.Fprintf(&sb, "best cost:     %s\n", humanize.FormatFloat("#,###.##", res.Cost))
	fmt.Fprintf(&sb, "elapsed:       %s\n", elapsed.Round(time.Millisecond))

	_, err := io.WriteString(w, sb.String())

	return err
}
