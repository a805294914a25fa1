package memory

import (
	"reflect"
	"testing"
)

func TestLedgerMarkIsIdempotent(t *testing.T) {
	l := NewLedger()
	l.Mark("q1")
	l.Mark("q1")

	if !l.Seen("q1") {
		t.Error("Seen(q1) = false after Mark")
	}
	if l.Seen("q2") {
		t.Error("Seen(q2) = true, never marked")
	}
}

func TestFilterNew(t *testing.T) {
	l := NewLedger()
	l.Mark("already searched")

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"preserves order", []string{"b", "a", "c"}, []string{"b", "a", "c"}},
		{"drops searched", []string{"already searched", "fresh"}, []string{"fresh"}},
		{"drops blank", []string{"", "  ", "\t", "ok"}, []string{"ok"}},
		{"drops in-batch duplicates", []string{"dup", "dup", "other"}, []string{"dup", "other"}},
		{"all filtered", []string{"already searched", ""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.FilterNew(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterNew(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
