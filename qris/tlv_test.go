package qris

import (
	// Go Internal Packages
	"reflect"
	"sort"
	"strings"
	"testing"

	// Local Packages
	errors "qris-stream/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    TagMap
	}{
		{
			name:    "single record",
			payload: "000201",
			want:    TagMap{"00": "01"},
		},
		{
			name:    "multiple records",
			payload: "0002010102115802ID",
			want:    TagMap{"00": "01", "01": "11", "58": "ID"},
		},
		{
			name:    "empty value",
			payload: "0100",
			want:    TagMap{"01": ""},
		},
		{
			name:    "duplicate tag overwrites",
			payload: "010211010212",
			want:    TagMap{"01": "12"},
		},
		{
			name:    "empty payload",
			payload: "",
			want:    TagMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.payload)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.payload, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"truncated header", "00"},
		{"truncated length", "000"},
		{"non-numeric length", "00AB12"},
		{"negative length", "00-1"},
		{"value shorter than declared", "000501"},
		{"trailing garbage header", "0002015"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.payload)
			if err == nil {
				t.Fatalf("Parse(%q) accepted a malformed payload", tt.payload)
			}
			if !errors.Is(errors.Invalid, err) {
				t.Errorf("Parse(%q) error kind = %v, want Invalid", tt.payload, err)
			}
		})
	}
}

func TestSerialize_NumericOrder(t *testing.T) {
	// Ordering must be numeric-ascending regardless of map iteration order.
	m := TagMap{"63": "ABCD", "00": "01", "58": "ID", "01": "12", "54": "10000", "26": "x"}

	out, err := m.Serialize()
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if out != "0002010102122601x5405100005802ID6304ABCD" {
		t.Errorf("Serialize = %q, tags not in numeric order", out)
	}
}

func TestSerialize_Exclude(t *testing.T) {
	m := TagMap{"00": "01", "01": "12", "63": "ABCD"}

	out, err := m.Serialize(TagCRC)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if strings.Contains(out, "63") {
		t.Errorf("Serialize = %q, excluded tag 63 still present", out)
	}
	if out != "000201010212" {
		t.Errorf("Serialize = %q, want %q", out, "000201010212")
	}
}

func TestSerialize_OversizedValue(t *testing.T) {
	m := TagMap{"00": "01", "62": strings.Repeat("x", 100)}

	_, err := m.Serialize()
	if err == nil {
		t.Fatal("Serialize accepted a 100-character value")
	}
	if !errors.Is(errors.Invalid, err) {
		t.Errorf("Serialize error kind = %v, want Invalid", err)
	}
}

func TestSerialize_MaxLengthValue(t *testing.T) {
	value := strings.Repeat("x", 99)
	m := TagMap{"26": value}

	out, err := m.Serialize()
	if err != nil {
		t.Fatalf("Serialize rejected a 99-character value: %v", err)
	}
	if out != "2699"+value {
		t.Errorf("Serialize = %q, want 2-digit length 99", out[:4])
	}
}

func TestRoundTrip(t *testing.T) {
	maps := []TagMap{
		{"00": "01"},
		{"00": "01", "01": "11", "58": "ID", "59": "Toko Budi", "60": "Jakarta"},
		{"26": "0014ID.CO.QRIS.WWW0215ID10200211754370303UMI", "54": "10000"},
		{"62": strings.Repeat("y", 99), "00": ""},
	}

	for _, m := range maps {
		out, err := m.Serialize()
		if err != nil {
			t.Fatalf("Serialize(%v) returned error: %v", m, err)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", out, err)
		}
		if !reflect.DeepEqual(back, m) {
			t.Errorf("round trip of %v through %q gave %v", m, out, back)
		}
	}
}

func TestSortedTags(t *testing.T) {
	m := TagMap{"61": "", "05": "", "00": "", "58": "", "99": "", "01": ""}

	tags := m.SortedTags()
	if !sort.StringsAreSorted(tags) {
		// For fixed-width 2-digit tags numeric and lexical order agree.
		t.Errorf("SortedTags = %v, not ascending", tags)
	}
	if len(tags) != len(m) {
		t.Errorf("SortedTags returned %d tags, want %d", len(tags), len(m))
	}
}
