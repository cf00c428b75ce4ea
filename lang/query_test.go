package lang

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		query string
		want  any
	}{
		{"top-level key", sample(), `title`, "Hi"},
		{"root binding", sample(), `data.title`, "Hi"},
		{"integer value", sample(), `count`, int64(3)},
		{"list index", sample(), `nav[1]`, "about"},
		{"integer key", sample(), `data["7"]`, true},
		{"builtin", sample(), `len(nav)`, 2},
		{"list root", NewList(NewString("a"), NewString("b")), `data[0] + data[1]`, "ab"},
		{"filter", NewList(NewInteger(1), NewInteger(5), NewInteger(9)), `filter(data, # > 3)`, []any{int64(5), int64(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(context.Background(), tt.value, tt.query)
			if err != nil {
				t.Fatalf("Query(%q): %v", tt.query, err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Query(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{"syntax", `title +`, ErrQueryCompile},
		{"unknown name", `missing.field`, ErrQueryCompile},
		{"runtime", `nav[10]`, ErrQueryEvaluate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Query(context.Background(), sample(), tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Query(%q): expected %v, got %v", tt.query, tt.wantErr, err)
			}
		})
	}
}
