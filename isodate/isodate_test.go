package isodate

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	d, err := Parse("2007-01-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2007 || d.Month() != time.January || d.Day() != 4 {
		t.Errorf("unexpected date: %v", d)
	}
	if d.String() != "2007-01-04" {
		t.Errorf("got %q, want 2007-01-04", d.String())
	}

	if _, err = Parse("04.01.2007"); err == nil {
		t.Error("expected an error for a non-wire-format date")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2010, time.December, 28)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2010-12-28"` {
		t.Errorf("got %s, want \"2010-12-28\"", data)
	}
	var back Date
	if err = json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	d := New(1999, time.March, 9)
	data, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back Date
	if err = yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}
}
