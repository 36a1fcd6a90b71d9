package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"50":    50,
		" 50.5": 50.5,
		"50,5":  50.5,
		"":      0,
		"abc":   0,
	}
	for in, want := range cases {
		if got := ParseAmount(in); got != want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatBs(t *testing.T) {
	if got := FormatBs(100); got != "Bs. 100" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatBs(12.5); got != "Bs. 12.5" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestParseSeat(t *testing.T) {
	if n, ok := ParseSeat(" 3 "); !ok || n != 3 {
		t.Fatalf("expected seat 3, got %d %v", n, ok)
	}
	for _, raw := range []string{"", "A1", "3b", "x"} {
		if _, ok := ParseSeat(raw); ok {
			t.Fatalf("seat %q should not parse", raw)
		}
	}
}

func TestSeatHelpers(t *testing.T) {
	in := []int{3, 1, 2}
	out := SortedCopy(in)
	if !reflect.DeepEqual(out, []int{1, 2, 3}) || in[0] != 3 {
		t.Fatalf("SortedCopy mutated input or failed: %v %v", in, out)
	}
	if got := JoinSeats(out); got != "1,2,3" {
		t.Fatalf("unexpected join %q", got)
	}
}

func TestDateHelpers(t *testing.T) {
	loc := time.FixedZone("BOT", -4*3600)
	now := time.Date(2026, 3, 9, 17, 45, 0, 0, loc)
	if got := StartOfDay(now); !got.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start of day %s", got)
	}
	if FormatCompactDate(now) != "20260309" || FormatHourMinute(now) != "17:45" || FormatDate(now) != "2026-03-09" {
		t.Fatalf("unexpected formatting")
	}
	if FormatDateShort("2026-03-09") != "09/03/2026" || FormatDateShort("soon") != "soon" {
		t.Fatalf("unexpected short date")
	}
	if _, err := ParseDate("2026-13-01", loc); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFormatEvent(t *testing.T) {
	got := FormatEvent("", "", "sales", "commit", "ticket=BOL-1\nseats=1,2")
	want := "[SALES] action=commit request_id=- msg=ticket=BOL-1 seats=1,2"
	if got != want {
		t.Fatalf("FormatEvent = %q, want %q", got, want)
	}
	if got := FormatEvent("r1", "abc", "http", "x", "ok"); got != "[HTTP] action=x request_id=r1 trace_id=abc msg=ok" {
		t.Fatalf("unexpected line %q", got)
	}
}
