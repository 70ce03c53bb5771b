package model

import (
	"testing"
	"time"
)

func TestLoanActive(t *testing.T) {
	end := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	loan := Loan{EndDate: end}

	cases := []struct {
		name string
		ref  time.Time
		want bool
	}{
		{name: "before end", ref: end.AddDate(0, 0, -1), want: true},
		{name: "on end date", ref: end, want: true},
		{name: "on end date with time of day", ref: end.Add(14 * time.Hour), want: true},
		{name: "after end", ref: end.AddDate(0, 0, 1), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := loan.Active(tc.ref); got != tc.want {
				t.Fatalf("Active(%v) = %v, want %v", tc.ref, got, tc.want)
			}
		})
	}
}

func TestLoanRepaymentsLeft(t *testing.T) {
	cases := []struct {
		name   string
		tenure int
		paid   int
		want   int
	}{
		{name: "fresh loan", tenure: 12, paid: 0, want: 12},
		{name: "partially repaid", tenure: 12, paid: 4, want: 8},
		{name: "fully repaid", tenure: 12, paid: 12, want: 0},
		{name: "overshooting history", tenure: 12, paid: 30, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loan := Loan{Tenure: tc.tenure, EMIsPaidOnTime: tc.paid}
			if got := loan.RepaymentsLeft(); got != tc.want {
				t.Fatalf("RepaymentsLeft() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2026, time.June, 15, 23, 45, 12, 999, loc)

	got := DateOnly(ts)
	want := time.Date(2026, time.June, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("DateOnly(%v) = %v, want %v", ts, got, want)
	}
	if got.Location() != loc {
		t.Fatalf("expected location preserved, got %v", got.Location())
	}
}
