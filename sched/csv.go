package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvColumns is the export header. Downstream tooling matches it verbatim,
// so the column names and their order are load-bearing.
var csvColumns = []string{
	"t", "beta", "alpha", "alpha_bar", "1-alpha_bar",
	"sqrt(alpha_bar)", "sqrt(1-alpha_bar)", "SNR", "SNR(dB)",
}

// WriteCSV writes the schedule as a CSV table, one row per step in step
// order.
func WriteCSV(w io.Writer, records []TimestepRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.T),
			formatFloat(r.Beta),
			formatFloat(r.Alpha),
			formatFloat(r.AlphaBar),
			formatFloat(r.OneMinusAlphaBar),
			formatFloat(r.SqrtAlphaBar),
			formatFloat(r.SqrtOneMinusAlphaBar),
			formatFloat(r.SNR),
			formatFloat(r.SNRDb),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", r.T, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// formatFloat renders the shortest decimal representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
