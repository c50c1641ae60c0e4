package normalization

import (
	"testing"
)

func TestDateTime_EpochMillis(t *testing.T) {
	// JSON numbers decode as float64.
	out, err := DateTime(float64(1486308100304))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2017-02-05 15:21:40" {
		t.Fatalf("expected 2017-02-05 15:21:40, got %q", out)
	}
}

func TestDateTime_ISOString(t *testing.T) {
	out, err := DateTime("2017-02-05T15:19:43.674Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2017-02-05 15:19:43" {
		t.Fatalf("expected 2017-02-05 15:19:43, got %q", out)
	}
}

func TestDateTime_OffsetKeptAsGiven(t *testing.T) {
	// Offsets are discarded, not converted.
	out, err := DateTime("2017-02-05T15:19:43+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2017-02-05 15:19:43" {
		t.Fatalf("expected 2017-02-05 15:19:43, got %q", out)
	}
}

func TestDateTime_CanonicalPassthrough(t *testing.T) {
	out, err := DateTime("2017-02-05 15:19:43")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2017-02-05 15:19:43" {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestDateTime_OutputAlways19Chars(t *testing.T) {
	inputs := []any{
		float64(0),
		float64(1486308100304),
		"2017-02-05T15:19:43.674Z",
		"2017-02-05 15:19:43",
	}
	for _, in := range inputs {
		out, err := DateTime(in)
		if err != nil {
			t.Fatalf("input %v: unexpected error: %v", in, err)
		}
		if len(out) != len(DateTimeLayout) {
			t.Fatalf("input %v: expected %d chars, got %q", in, len(DateTimeLayout), out)
		}
	}
}

func TestDateTime_Malformed(t *testing.T) {
	for _, in := range []any{nil, "garbage", "2017-02", true, "9999-99-99 99:99:99"} {
		if _, err := DateTime(in); err == nil {
			t.Fatalf("input %v: expected error", in)
		}
	}
}
