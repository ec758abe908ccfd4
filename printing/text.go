package printing

import "strings"

// textWidth is the column width of the plain-text rendering, sized for
// an 80mm thermal roll in the printer's default font
const textWidth = 40

// RenderText encodes a ticket document as a newline-joined string,
// used for file download and as the line source for ESC/POS printing.
func RenderText(doc Document) string {
	var b strings.Builder
	for _, line := range doc.Lines {
		switch line.Kind {
		case KindRule:
			b.WriteString(strings.Repeat(line.Text, textWidth))
		case KindBlank:
			// bare newline below
		default:
			b.WriteString(line.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
