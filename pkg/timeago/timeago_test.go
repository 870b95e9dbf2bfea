package timeago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{name: "zero", age: 0, want: "just now"},
		{name: "under a minute", age: 59 * time.Second, want: "just now"},
		{name: "one minute", age: 60 * time.Second, want: "1m ago"},
		{name: "ninety seconds rounds down", age: 90 * time.Second, want: "1m ago"},
		{name: "fifty-nine minutes", age: 59 * time.Minute, want: "59m ago"},
		{name: "one hour", age: time.Hour, want: "1h ago"},
		{name: "ninety minutes rounds down", age: 90 * time.Minute, want: "1h ago"},
		{name: "twenty-three hours", age: 23 * time.Hour, want: "23h ago"},
		{name: "one day", age: 24 * time.Hour, want: "1d ago"},
		{name: "three days", age: 3*24*time.Hour + 5*time.Hour, want: "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(now.Add(-tt.age), now))
		})
	}
}
