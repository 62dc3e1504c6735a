package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string passes through", "3001", "3001"},
		{"comma and quotes", "hello, \"world\"\nfoo", "\"hello, \"\"world\"\"\nfoo\""},
		{"carriage return", "a\rb", "\"a\rb\""},
		{"int renders bare", 42, "42"},
		{"int64 renders bare", int64(7), "7"},
		{"float renders bare", 2.5, "2.5"},
		{"nil renders empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCell(tt.in))
		})
	}
}

func TestEncode(t *testing.T) {
	t.Run("zero rows returns header only", func(t *testing.T) {
		out := Encode([]string{"part_num", "color_id", "quantity"}, nil, Options{})
		assert.Equal(t, "part_num,color_id,quantity", out)
	})

	t.Run("rows with mixed cell types", func(t *testing.T) {
		rows := [][]any{
			{"3001", 5, 3},
			{"pan,cake", nil, 1},
		}
		out := Encode([]string{"part_num", "color_id", "quantity"}, rows, Options{})
		assert.Equal(t, "part_num,color_id,quantity\n3001,5,3\n\"pan,cake\",,1", out)
	})

	t.Run("BOM prefix", func(t *testing.T) {
		out := Encode([]string{"a"}, nil, Options{IncludeBOM: true})
		assert.Equal(t, rune(0xFEFF), []rune(out)[0])
		assert.Equal(t, BOM+"a", out)
	})
}
