package main

import (
	"fmt"
	"io"
	"time"

	"arialint/internal/observ"
)

// printTimings writes the phase report; a "detect" phase aggregated from
// directory workers also shows its sample count.
func printTimings(out io.Writer, timer *observ.Timer) error {
	if out == nil || timer == nil {
		return nil
	}
	report := timer.Report()
	for _, phase := range report.Phases {
		line := fmt.Sprintf("%s %.1f ms", phase.Name, phase.DurationMS)
		if phase.Count > 1 {
			line += fmt.Sprintf(" (%d files)", phase.Count)
		}
		if phase.Note != "" {
			line += " " + phase.Note
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	if len(report.Phases) > 0 {
		if _, err := fmt.Fprintf(out, "total %.1f ms\n", report.TotalMS); err != nil {
			return err
		}
	}
	return nil
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
