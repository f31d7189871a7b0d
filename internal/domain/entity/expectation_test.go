package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindow_Overlaps(t *testing.T) {
	day := func(d int) *time.Time {
		v := time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	period := TimeWindow{Start: day(10), End: day(20)}

	tests := []struct {
		name   string
		window TimeWindow
		want   bool
	}{
		{name: "inside", window: TimeWindow{Start: day(12), End: day(15)}, want: true},
		{name: "covers", window: TimeWindow{Start: day(1), End: day(31)}, want: true},
		{name: "ends on start", window: TimeWindow{Start: day(1), End: day(10)}, want: true},
		{name: "starts on end", window: TimeWindow{Start: day(20), End: day(25)}, want: true},
		{name: "before", window: TimeWindow{Start: day(1), End: day(9)}, want: false},
		{name: "after", window: TimeWindow{Start: day(21), End: day(31)}, want: false},
		{name: "open start", window: TimeWindow{End: day(11)}, want: true},
		{name: "open end after", window: TimeWindow{Start: day(21)}, want: false},
		{name: "unbounded", window: TimeWindow{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Overlaps(period))
			assert.Equal(t, tt.want, period.Overlaps(tt.window))
		})
	}
}
