package gameid

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	value int
}

func (f *fixedRand) Intn(n int) int {
	return f.value % n
}

func TestGenerateFormat(t *testing.T) {
	id := Generate()
	assert.NoError(t, Validate(id))
}

func TestGenerateDeterministic(t *testing.T) {
	mock := quartz.NewMock(t)
	mock.Set(time.UnixMilli(1700000000000))

	gen := NewGenerator(mock, &fixedRand{value: 42})
	assert.Equal(t, "game_1700000000000_42", gen.Generate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"game_1700000000000_42", false},
		{"game_1_0", false},
		{"game_1700000000000_99999", false},
		{"game_1700000000000_100000", true},
		{"game__42", true},
		{"match_1700000000000_42", true},
		{"game_1700000000000", true},
		{"", true},
	}
	for _, tt := range tests {
		err := Validate(tt.id)
		if tt.wantErr {
			assert.Error(t, err, "id %q", tt.id)
		} else {
			assert.NoError(t, err, "id %q", tt.id)
		}
	}
}

func TestTimestamp(t *testing.T) {
	ms, err := Timestamp("game_1700000000000_42")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), ms)

	_, err = Timestamp("not-an-id")
	assert.Error(t, err)
}
