package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectChartLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"tracker"},
			want: []string{"tracker"},
		},
		{
			name: "direct chart id first token",
			in:   []string{"tracker", "chart-1712000000000-7"},
			want: []string{"tracker", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "direct chart id after value flag",
			in:   []string{"tracker", "--dir", "./tmp-test-ws", "chart-1712000000000-7"},
			want: []string{"tracker", "--dir", "./tmp-test-ws", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "direct chart id after equals flag",
			in:   []string{"tracker", "--dir=./tmp-test-ws", "chart-1712000000000-7"},
			want: []string{"tracker", "--dir=./tmp-test-ws", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "direct chart id after bool flag",
			in:   []string{"tracker", "--pretty", "chart-1712000000000-7"},
			want: []string{"tracker", "--pretty", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "direct chart id after double dash",
			in:   []string{"tracker", "--dir", "./tmp-test-ws", "--", "chart-1712000000000-7"},
			want: []string{"tracker", "--dir", "./tmp-test-ws", "--", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"tracker", "charts", "show", "chart-1712000000000-7"},
			want: []string{"tracker", "charts", "show", "chart-1712000000000-7"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"tracker", "wat"},
			want: []string{"tracker", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectChartLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectChartLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
