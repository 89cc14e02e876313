package utils

import (
	"strings"
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), "2026-08-24"},
		{"wednesday maps back", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), "2026-08-24"},
		{"sunday maps back six days", time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), "2026-08-24"},
	}
	for _, tc := range cases {
		if got := WeekStart(tc.in).Format("2006-01-02"); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestValidateStruct_LabelsViolations(t *testing.T) {
	type row struct {
		Qty int `validate:"gte=0"`
	}

	if err := ValidateStruct(&row{Qty: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ValidateStruct(&row{Qty: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); !strings.HasPrefix(got, "input validation failed") {
		t.Fatalf("expected labeled error, got %q", got)
	}
}
