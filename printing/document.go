package printing

// The three output adapters (plain text, HTML, ESC/POS) all render the
// same structured document instead of re-deriving layout from strings.
// A Line carries its structural role so each adapter can decide how a
// rule, a title or a total looks in its own medium.

type LineKind int

const (
	// KindRule is a full-width separator; Text holds the rule character
	KindRule LineKind = iota
	// KindTitle is a centered, emphasized heading
	KindTitle
	// KindTotal is an emphasized money line (TOTAL / SUBTOTAL)
	KindTotal
	// KindPlain is ordinary left-aligned text
	KindPlain
	// KindBlank is an empty spacer line
	KindBlank
)

type Line struct {
	Kind LineKind
	Text string
}

type Document struct {
	Lines []Line
}

func (d *Document) Rule(ch string)   { d.Lines = append(d.Lines, Line{Kind: KindRule, Text: ch}) }
func (d *Document) Title(s string)   { d.Lines = append(d.Lines, Line{Kind: KindTitle, Text: s}) }
func (d *Document) Total(s string)   { d.Lines = append(d.Lines, Line{Kind: KindTotal, Text: s}) }
func (d *Document) Plain(s string)   { d.Lines = append(d.Lines, Line{Kind: KindPlain, Text: s}) }
func (d *Document) Blank()           { d.Lines = append(d.Lines, Line{Kind: KindBlank}) }
