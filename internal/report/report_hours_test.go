package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestWorkedDuration(t *testing.T) {
	tests := []struct {
		name string
		rec  DailyRecord
		want string
	}{
		{
			name: "full day with lunch",
			rec: DailyRecord{
				Entry: ptr(at(2, 9, 0)), LunchStart: ptr(at(2, 12, 0)),
				LunchEnd: ptr(at(2, 13, 0)), Exit: ptr(at(2, 17, 0)),
			},
			want: "7h 0m",
		},
		{
			name: "no lunch punches",
			rec:  DailyRecord{Entry: ptr(at(2, 9, 0)), Exit: ptr(at(2, 17, 30))},
			want: "8h 30m",
		},
		{
			name: "half a lunch is ignored",
			rec:  DailyRecord{Entry: ptr(at(2, 9, 0)), LunchStart: ptr(at(2, 12, 0)), Exit: ptr(at(2, 17, 0))},
			want: "8h 0m",
		},
		{
			name: "missing exit",
			rec:  DailyRecord{Entry: ptr(at(2, 9, 0)), LunchStart: ptr(at(2, 12, 0))},
			want: "N/A",
		},
		{
			name: "missing entry",
			rec:  DailyRecord{Exit: ptr(at(2, 17, 0))},
			want: "N/A",
		},
		{
			name: "negative span",
			rec:  DailyRecord{Entry: ptr(at(2, 17, 0)), Exit: ptr(at(2, 9, 0))},
			want: "N/A",
		},
		{
			name: "lunch longer than the day",
			rec: DailyRecord{
				Entry: ptr(at(2, 9, 0)), LunchStart: ptr(at(2, 8, 0)),
				LunchEnd: ptr(at(2, 18, 0)), Exit: ptr(at(2, 10, 0)),
			},
			want: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWorked(WorkedDuration(tt.rec)))
		})
	}
}

func TestFormatWorked_FloorsSeconds(t *testing.T) {
	assert.Equal(t, "0h 59m", FormatWorked(59*time.Minute+59*time.Second, true))
	assert.Equal(t, "0h 0m", FormatWorked(0, true))
	assert.Equal(t, "25h 1m", FormatWorked(25*time.Hour+time.Minute, true))
	assert.Equal(t, "N/A", FormatWorked(time.Hour, false))
}
