package dict

import (
	"reflect"
	"testing"
)

func TestIsSuffix(t *testing.T) {
	m := English()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "plain suffix", token: "=ing", want: true},
		{name: "null suffix", token: "=.zzz", want: true},
		{name: "bare marker", token: "=", want: false},
		{name: "exempt bracketed equals", token: "=[!]", want: false},
		{name: "exempt verb marker", token: "=.v", want: false},
		{name: "exempt equality", token: "=.eq", want: false},
		{name: "ordinary word", token: "dog.n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsSuffix(tt.token); got != tt.want {
				t.Errorf("IsSuffix(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestRussianExemptions(t *testing.T) {
	// The Russian dictionary has no bare "=" entries, so the exempt
	// tokens of the English table are real suffixes there.
	m := Russian()
	if !m.IsSuffix("=.v") {
		t.Error("IsSuffix(=.v) = false under Russian markers, want true")
	}
}

func TestStripSubscript(t *testing.T) {
	m := English()

	tests := []struct {
		token string
		want  string
	}{
		{"dog.n", "dog"},
		{"happy.a.x", "happy.a"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := m.StripSubscript(tt.token); got != tt.want {
			t.Errorf("StripSubscript(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestSuffixBody(t *testing.T) {
	m := English()
	if got := m.SuffixBody("=ing"); got != "ing" {
		t.Errorf("SuffixBody(=ing) = %q, want ing", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	data := []byte(`
suffix_marker = "~"
suffix_exempt = ["~eq"]
`)
	m, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !m.IsSuffix("~ing") {
		t.Error("IsSuffix(~ing) = false with overridden marker, want true")
	}
	if m.IsSuffix("~eq") {
		t.Error("IsSuffix(~eq) = true for exempt token, want false")
	}
	// Untouched fields keep English defaults.
	if m.LeftWallDisplay != "LEFT-WALL" {
		t.Errorf("LeftWallDisplay = %q, want LEFT-WALL", m.LeftWallDisplay)
	}
}

func TestLoadEmptyEqualsEnglish(t *testing.T) {
	m, err := Load([]byte(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(m, English()) {
		t.Errorf("Load(empty) = %+v, want the English preset", m)
	}
}

func TestLoadRejectsEmptyMarker(t *testing.T) {
	if _, err := Load([]byte(`suffix_marker = ""`)); err == nil {
		t.Error("Load() accepted empty suffix marker, want error")
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("en"); err != nil {
		t.Errorf("ByName(en) error = %v", err)
	}
	if _, err := ByName("klingon"); err == nil {
		t.Error("ByName(klingon) = nil error, want error")
	}
}
