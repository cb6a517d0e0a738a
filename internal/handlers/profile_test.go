package handlers

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseSkills(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "list", raw: `["js","css"]`, want: []string{"js", "css"}},
		{name: "comma string", raw: `"js, css"`, want: []string{"js", "css"}},
		{name: "string with blanks", raw: `"js, , css,"`, want: []string{"js", "css"}},
		{name: "empty string", raw: `""`, want: nil},
		{name: "number", raw: `42`, want: nil},
	}
	for _, tc := range cases {
		got := parseSkills(json.RawMessage(tc.raw))
		if len(got) != len(tc.want) {
			t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
			}
		}
	}

	if got := parseSkills(nil); got != nil {
		t.Fatalf("nil raw: want=nil got=%v", got)
	}
}

func TestParseDate(t *testing.T) {
	if got := parseDate("2020-06-01"); got != time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("date-only layout: got=%v", got)
	}
	if got := parseDate("2020-06-01T12:30:00Z"); got.Hour() != 12 {
		t.Fatalf("rfc3339 layout: got=%v", got)
	}
	if got := parseDate(""); !got.IsZero() {
		t.Fatalf("empty: want zero got=%v", got)
	}
	if got := parseDate("junk"); !got.IsZero() {
		t.Fatalf("junk: want zero got=%v", got)
	}
	if got := parseOptionalDate(""); got != nil {
		t.Fatalf("optional empty: want nil got=%v", got)
	}
	if got := parseOptionalDate("2020-06-01"); got == nil || got.Year() != 2020 {
		t.Fatalf("optional date: got=%v", got)
	}
}
