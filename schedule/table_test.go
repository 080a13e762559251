package schedule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flywise/schedule"
	"github.com/katalvlaran/flywise/timetable"
)

func TestParseTable_Valid(t *testing.T) {
	input := `# morning wave
SFO DEN FW101 08:00 09:00 100 250 400

DEN JFK FW202 10:00 11:00 50 120 200
`
	flights, err := schedule.ParseTable(strings.NewReader(input), "schedule.txt")
	require.NoError(t, err)
	require.Len(t, flights, 2)

	assert.Equal(t, "SFO", flights[0].Origin)
	assert.Equal(t, "FW101", flights[0].FlightNumber)
	assert.Equal(t, 8*60, flights[0].Depart)
	assert.Equal(t, 9*60, flights[0].Arrive)
	assert.Equal(t, 100, flights[0].Economy)
	assert.Equal(t, 250, flights[0].Business)
	assert.Equal(t, 400, flights[0].First)
	assert.Equal(t, "JFK", flights[1].Dest)
}

func TestParseTable_OnlyCommentsAndBlanks(t *testing.T) {
	flights, err := schedule.ParseTable(strings.NewReader("# nothing\n\n   \n"), "empty.txt")
	require.NoError(t, err)
	assert.Empty(t, flights)
}

// TestParseTable_RowErrors: the first bad row fails the whole load and
// the error carries the source name and physical line number.
func TestParseTable_RowErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr error
		wantTag string
	}{
		{
			name:    "wrong field count",
			input:   "SFO DEN FW101 08:00 09:00 100 250\n",
			wantErr: schedule.ErrFieldCount,
			wantTag: "bad.txt:1:",
		},
		{
			name:    "malformed clock",
			input:   "# header comment\nSFO DEN FW101 8am 09:00 100 250 400\n",
			wantErr: timetable.ErrBadClock,
			wantTag: "bad.txt:2:",
		},
		{
			name:    "arrival before departure",
			input:   "SFO DEN FW101 09:00 08:00 100 250 400\n",
			wantErr: timetable.ErrNonPositiveLeg,
			wantTag: "bad.txt:1:",
		},
		{
			name:    "zero duration",
			input:   "SFO DEN FW101 09:00 09:00 100 250 400\n",
			wantErr: timetable.ErrNonPositiveLeg,
			wantTag: "bad.txt:1:",
		},
		{
			name:    "non-integer fare",
			input:   "SFO DEN FW101 08:00 09:00 cheap 250 400\n",
			wantErr: nil, // strconv error, no package sentinel
			wantTag: "bad.txt:1:",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.ParseTable(strings.NewReader(tc.input), "bad.txt")
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Contains(t, err.Error(), tc.wantTag)
		})
	}
}

// TestParseTable_NegativeFareRejected: the struct validator rejects a
// negative fare before the record becomes a Flight.
func TestParseTable_NegativeFareRejected(t *testing.T) {
	_, err := schedule.ParseTable(
		strings.NewReader("SFO DEN FW101 08:00 09:00 -1 250 400\n"), "bad.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt:1:")
}

// TestParseTable_NoPartialSchedule: rows before the bad one are not
// returned — a single bad row invalidates the whole load.
func TestParseTable_NoPartialSchedule(t *testing.T) {
	input := "SFO DEN FW101 08:00 09:00 100 250 400\nbroken line\n"
	flights, err := schedule.ParseTable(strings.NewReader(input), "bad.txt")
	require.Error(t, err)
	assert.Nil(t, flights)
	assert.Contains(t, err.Error(), "bad.txt:2:")
}
