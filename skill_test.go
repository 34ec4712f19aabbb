package lumen

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIconRoundTrip(t *testing.T) {
	for i := IconNone; i < iconCount; i++ {
		got, err := ParseIcon(i.String())
		if err != nil || got != i {
			t.Errorf("ParseIcon(%q) = %v, %v", i.String(), got, err)
		}
	}
}

func TestParseIconUnknown(t *testing.T) {
	if _, err := ParseIcon("cobol"); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("err = %v, want ErrUnknownIcon", err)
	}
	if _, err := Icon(200).MarshalText(); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("MarshalText err = %v", err)
	}
}

func TestSkillJSON(t *testing.T) {
	var s Skill
	if err := json.Unmarshal([]byte(`{"name":"Go","color":"#00ADD8","icon":"code"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Icon != IconCode || s.Name != "Go" {
		t.Errorf("skill = %+v", s)
	}
	if err := json.Unmarshal([]byte(`{"name":"X","icon":"nope"}`), &s); err == nil {
		t.Error("unknown icon should fail to decode")
	}
}

func TestMonogram(t *testing.T) {
	tests := map[Icon]string{
		IconJavaScript: "JS",
		IconCPlusPlus:  "C++",
		IconDocker:     "DOCKER",
		IconNone:       "",
	}
	for icon, want := range tests {
		if got := icon.Monogram(); got != want {
			t.Errorf("%s monogram = %q, want %q", icon, got, want)
		}
	}
}

func TestDefaultSkillColorsParse(t *testing.T) {
	for _, s := range append(append([]Skill{}, DefaultLanguages...), DefaultTools...) {
		if _, err := ParseColor(s.Color); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
	}
}
