package sched

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantCSVHeader = "t,beta,alpha,alpha_bar,1-alpha_bar,sqrt(alpha_bar),sqrt(1-alpha_bar),SNR,SNR(dB)"

func TestWriteCSV_HeaderAndRowCount(t *testing.T) {
	// GIVEN a 2-step linear schedule
	records := Generate(ScheduleParams{BetaStart: 0.1, BetaEnd: 0.3, Timesteps: 2, Family: FamilyLinear})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	// THEN the output starts with the exact compatibility header followed
	// by one row per step
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, wantCSVHeader, lines[0])

	row1 := strings.Split(lines[1], ",")
	require.Len(t, row1, 9)
	assert.Equal(t, "1", row1[0])
	assert.Equal(t, "0.1", row1[1])
	assert.Equal(t, "0.9", row1[2])

	row2 := strings.Split(lines[2], ",")
	assert.Equal(t, "2", row2[0])
}

func TestWriteCSV_EmptySchedule(t *testing.T) {
	// No records still emits the header line.
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, wantCSVHeader+"\n", buf.String())
}

func TestWriteCSV_RowsInStepOrder(t *testing.T) {
	records := Generate(ScheduleParams{BetaStart: 0.0001, BetaEnd: 0.02, Timesteps: 10, Family: FamilyQuad})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 9)
		assert.Equal(t, strconv.Itoa(i+1), fields[0])
	}
}
