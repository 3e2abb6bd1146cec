package transition

import (
	"testing"

	"listdep/util"
)

func TestTemplateParseErrors(t *testing.T) {
	for _, bad := range []string{"", "S0", "X0|w", "S|w", "S0q|w", "S0|z", "S0|wp", "S0|w+N0"} {
		if _, err := ParseFeatureTemplate(bad); err == nil {
			t.Error("Expected a parse error for template", bad)
		}
	}
}

func TestTemplateExtract(t *testing.T) {
	system := testSystem()
	state := testInitialState()
	applyOrFail(t, system, state, "RS-ROOT")
	// stack is now token 1 (Who <- ROOT), input token 2 (did)
	tests := []struct {
		template string
		expected string
	}{
		{"S0|w", "S0|w=Who"},
		{"S0|w|p", "S0|w|p=Who|WP"},
		{"S0|m", "S0|m=who"},
		{"N0|w", "N0|w=did"},
		{"N1|p", "N1|p=PRP"},
		{"N2|w", "N2|w=see"},
		{"S1|p", "S1|p=ROOT"},
		{"S2|p", "S2|p=_"},
		{"S0h|w", "S0h|w=ROOT"},
		{"S0h|p+N0|p", "S0h|p+N0|p=ROOT+VBD"},
		{"S0|l", "S0|l=ROOT"},
		{"N0|l", "N0|l=_"},
		{"N0l|p", "N0l|p=_"},
		{"S0|p+N0|p", "S0|p+N0|p=WP+VBD"},
	}
	for _, test := range tests {
		template, err := ParseFeatureTemplate(test.template)
		if err != nil {
			t.Error("Template", test.template, "failed to parse:", err)
			continue
		}
		if got := template.Extract(state); got != test.expected {
			t.Error("Expected", test.expected, "got", got)
		}
	}
}

func TestDependentChain(t *testing.T) {
	system := testSystem()
	state := testInitialState()
	applyOrFail(t, system, state, "NS", "LR-ATT", "NS")
	// token 1 attached under 2, stack is token 2
	for _, test := range []struct{ template, expected string }{
		{"S0l|w", "S0l|w=Who"},
		{"S0l|l", "S0l|l=ATT"},
		{"S0r|w", "S0r|w=_"},
		{"S0ll|w", "S0ll|w=_"},
	} {
		template, err := ParseFeatureTemplate(test.template)
		if err != nil {
			t.Fatal("Template", test.template, "failed to parse:", err)
		}
		if got := template.Extract(state); got != test.expected {
			t.Error("Expected", test.expected, "got", got)
		}
	}
}

func TestLoadFeatureConf(t *testing.T) {
	conf := `
feature groups:
  - group: base
    features: ["S0|w", "S0|p", "N0|w|p"]
  - group: context
    features: ["S0|p+N0|p", "N1|p"]
`
	setup, err := LoadFeatureConf([]byte(conf))
	if err != nil {
		t.Fatal("Loading feature conf failed:", err)
	}
	if setup.NumFeatures() != 5 {
		t.Error("Expected 5 features, got", setup.NumFeatures())
	}
	extractor := new(Extractor)
	if err := extractor.LoadSetup(setup); err != nil {
		t.Fatal("Loading setup into extractor failed:", err)
	}
	if len(extractor.Templates) != 5 {
		t.Error("Expected 5 templates, got", len(extractor.Templates))
	}
	features := extractor.Features(testInitialState())
	if len(features) != 5 {
		t.Error("Expected 5 feature values, got", len(features))
	}
}

func TestExtractorInterning(t *testing.T) {
	extractor := &Extractor{EFeatures: util.NewEnumSet(16)}
	if err := extractor.LoadFeatures([]string{"S0|w", "N0|p"}); err != nil {
		t.Fatal("Loading features failed:", err)
	}
	features := extractor.Features(testInitialState())
	for _, feature := range features {
		if _, exists := extractor.EFeatures.IndexOf(feature); !exists {
			t.Error("Feature", feature, "was not interned")
		}
	}
}
