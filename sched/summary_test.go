package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_LinearSchedule(t *testing.T) {
	records := Generate(ScheduleParams{BetaStart: 0.1, BetaEnd: 0.3, Timesteps: 2, Family: FamilyLinear})
	s := Summarize(records)

	assert.Equal(t, 2, s.Steps)
	assert.InDelta(t, 0.2, s.MeanBeta, 1e-15)
	assert.InDelta(t, 0.63, s.TerminalAlphaBar, 1e-15)
	assert.Equal(t, records[1].SNRDb, s.TerminalSNRDb)

	// SNR decreases over the schedule, so the terminal value is the minimum.
	assert.Equal(t, records[1].SNRDb, s.MinSNRDb)
	assert.Equal(t, records[0].SNRDb, s.MaxSNRDb)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	require.Equal(t, Summary{}, s)
}
