package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminder(t *testing.T) {
	tests := []struct {
		streak  int
		written bool
		want    string
	}{
		{0, false, "No streak yet. Start one with today's entry?"},
		{1, false, "Keep your 1 day streak going. Write today's entry?"},
		{12, false, "Keep your 12 days streak going. Write today's entry?"},
		{3, true, "Today's entry is in. Streak: 3 days."},
	}
	for _, tt := range tests {
		title, msg := Reminder(tt.streak, tt.written)
		assert.Equal(t, "Journal reminder", title)
		assert.Equal(t, tt.want, msg)
	}
}

func TestInfoUsesSender(t *testing.T) {
	orig := Send
	t.Cleanup(func() { Send = orig })

	var gotTitle, gotMsg string
	Send = func(title, message string) error {
		gotTitle, gotMsg = title, message
		return errors.New("no display")
	}

	err := Info("t", "m")
	assert.EqualError(t, err, "no display")
	assert.Equal(t, "t", gotTitle)
	assert.Equal(t, "m", gotMsg)
}
