package world

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/bodyguard/monitor"
)

// Summary summarizes the rewards of a single learner
type Summary struct {
	Average float64
	Total   float64
}

func summarize(m *monitor.Value) Summary {
	return Summary{Average: m.CumulativeAverage(), Total: m.Sum()}
}

// Stats are the statistics of a world
type Stats struct {
	Iterations int // decisions made by the Guard
	Guard      Summary
	Hostile    Summary
}

// Stats returns the current statistics of the world
func (w *World) Stats() Stats {
	return Stats{
		Iterations: w.guard.IterationCount(),
		Guard:      summarize(w.guard.Monitor()),
		Hostile:    summarize(w.hostile.Monitor()),
	}
}

func (s Stats) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statistics over %v iterations\n\n",
		aurora.Bold(s.Iterations))
	writeSummary(&b, aurora.Green("Guard"), s.Guard)
	writeSummary(&b, aurora.Red("Hostile"), s.Hostile)
	return b.String()
}

func writeSummary(b *strings.Builder, name aurora.Value, s Summary) {
	fmt.Fprintf(b, "  %v:\n", name)
	fmt.Fprintf(b, "      average reward: %v\n", aurora.Cyan(s.Average))
	fmt.Fprintf(b, "      total reward:   %v\n\n", aurora.Cyan(s.Total))
}
