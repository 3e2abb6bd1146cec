package transition

import (
	"fmt"
	"strings"

	. "listdep/alg/transition"
	"listdep/util"
)

// Feature templates address tokens around the two cursors and render
// chosen attributes into categorical feature strings, e.g.
//
//	S0|w|p       form and POS of the stack token
//	N1|p         POS one past the input token
//	S0h|p        POS of the stack token's head
//	S0|p+N0|p    conjoined POS pair
//
// Addresses are a base (S for the reduction-aware stack list, L for
// the raw lambda index, N for the input buffer), a non-negative
// offset, and an optional chain of h (head), l (leftmost dependent)
// and r (rightmost dependent). Attributes are w (form), m (lemma),
// p (POS) and l (arc label). Unresolvable addresses render as "_".

const FEATURE_NULL = "_"

type templateElement struct {
	source string
	base   byte
	offset int
	chain  []byte
	attrs  []byte
}

type FeatureTemplate struct {
	source   string
	elements []templateElement
}

func (f *FeatureTemplate) String() string {
	return f.source
}

// ParseFeatureTemplate compiles a template specification; unknown
// addresses or attributes are configuration errors.
func ParseFeatureTemplate(source string) (*FeatureTemplate, error) {
	template := &FeatureTemplate{source: source}
	for _, elementSource := range strings.Split(source, "+") {
		element, err := parseElement(elementSource)
		if err != nil {
			return nil, fmt.Errorf("feature template %q: %v", source, err)
		}
		template.elements = append(template.elements, element)
	}
	return template, nil
}

func parseElement(source string) (templateElement, error) {
	element := templateElement{source: source}
	parts := strings.Split(source, "|")
	if len(parts) < 2 {
		return element, fmt.Errorf("element %q needs an address and at least one attribute", source)
	}
	address := parts[0]
	if len(address) < 2 {
		return element, fmt.Errorf("address %q too short", address)
	}
	switch address[0] {
	case 'S', 'L', 'N':
		element.base = address[0]
	default:
		return element, fmt.Errorf("unknown address base %q", address[:1])
	}
	pos := 1
	for pos < len(address) && address[pos] >= '0' && address[pos] <= '9' {
		element.offset = element.offset*10 + int(address[pos]-'0')
		pos++
	}
	if pos == 1 {
		return element, fmt.Errorf("address %q is missing an offset", address)
	}
	for ; pos < len(address); pos++ {
		switch address[pos] {
		case 'h', 'l', 'r':
			element.chain = append(element.chain, address[pos])
		default:
			return element, fmt.Errorf("unknown address suffix %q in %q", address[pos:pos+1], address)
		}
	}
	for _, attr := range parts[1:] {
		if len(attr) != 1 {
			return element, fmt.Errorf("unknown attribute %q", attr)
		}
		switch attr[0] {
		case 'w', 'm', 'p', 'l':
			element.attrs = append(element.attrs, attr[0])
		default:
			return element, fmt.Errorf("unknown attribute %q", attr)
		}
	}
	return element, nil
}

// Extract renders the template against a configuration.
func (f *FeatureTemplate) Extract(c *ParseState) string {
	values := make([]string, len(f.elements))
	for i, element := range f.elements {
		values[i] = element.extract(c)
	}
	return f.source + "=" + strings.Join(values, "+")
}

func (e templateElement) extract(c *ParseState) string {
	token := e.resolve(c)
	values := make([]string, len(e.attrs))
	for i, attr := range e.attrs {
		values[i] = attribute(c, token, attr)
	}
	return strings.Join(values, "|")
}

func (e templateElement) resolve(c *ParseState) *ParseToken {
	var token *ParseToken
	switch e.base {
	case 'S':
		token = c.StackToken(-e.offset)
	case 'L':
		token = c.LambdaToken(-e.offset)
	case 'N':
		token = c.InputToken(e.offset)
	}
	for _, link := range e.chain {
		if token == NullToken {
			break
		}
		switch link {
		case 'h':
			if !token.HasHead() {
				return NullToken
			}
			token = c.TokenAt(token.Head)
		case 'l':
			token = c.LeftmostDependent(token.ID)
		case 'r':
			token = c.RightmostDependent(token.ID)
		}
	}
	return token
}

func attribute(c *ParseState, token *ParseToken, attr byte) string {
	if token == NullToken {
		return FEATURE_NULL
	}
	switch attr {
	case 'w':
		return token.Form
	case 'm':
		if token.Lemma == "" {
			return FEATURE_NULL
		}
		return token.Lemma
	case 'p':
		return token.POS
	case 'l':
		if !token.HasHead() {
			return FEATURE_NULL
		}
		return string(token.Label)
	}
	return FEATURE_NULL
}

// Extractor generates the feature representation of a configuration
// from an ordered set of templates. EFeatures, when set, interns every
// generated value so downstream model code can work with indices.
type Extractor struct {
	Templates []*FeatureTemplate
	EFeatures *util.EnumSet
}

var _ FeatureExtractor = &Extractor{}

func (x *Extractor) LoadFeature(source string) error {
	template, err := ParseFeatureTemplate(source)
	if err != nil {
		return err
	}
	x.Templates = append(x.Templates, template)
	return nil
}

func (x *Extractor) LoadFeatures(sources []string) error {
	for _, source := range sources {
		if err := x.LoadFeature(source); err != nil {
			return err
		}
	}
	return nil
}

func (x *Extractor) LoadSetup(setup *FeatureSetup) error {
	for _, group := range setup.FeatureGroups {
		if err := x.LoadFeatures(group.Features); err != nil {
			return fmt.Errorf("feature group %q: %v", group.Group, err)
		}
	}
	return nil
}

func (x *Extractor) Features(from Configuration) []string {
	c, ok := from.(*ParseState)
	if !ok {
		panic("Got wrong configuration type")
	}
	features := make([]string, len(x.Templates))
	for i, template := range x.Templates {
		features[i] = template.Extract(c)
		if x.EFeatures != nil && !x.EFeatures.Frozen {
			x.EFeatures.Add(features[i])
		}
	}
	return features
}

// DefaultFeatures is a standard baseline template set for the
// list-based system, usable when no feature configuration is given.
var DefaultFeatures = []string{
	"S0|w", "S0|p", "S0|w|p",
	"N0|w", "N0|p", "N0|w|p",
	"N1|w", "N1|p", "N2|p",
	"S1|p", "S1|w",
	"S0|w+N0|w", "S0|p+N0|p", "S0|w|p+N0|w|p",
	"S0h|p", "S0l|p", "S0r|p", "N0l|p",
	"S0|l", "S0r|l",
}
