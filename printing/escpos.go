package printing

import (
	"bytes"
	"strings"
)

// ESC/POS control sequences for the Elgin i8 (and compatible thermal
// printers). The full command reference lives in the printer manual;
// only the subset tickets need is encoded here.
var (
	escInit       = []byte{0x1B, 0x40}       // ESC @  reset printer
	escAlignLeft  = []byte{0x1B, 0x61, 0x00} // ESC a 0
	escAlignMid   = []byte{0x1B, 0x61, 0x01} // ESC a 1
	escFontNormal = []byte{0x1B, 0x21, 0x00} // ESC ! 0
	escBoldOn     = []byte{0x1B, 0x45, 0x01} // ESC E 1
	escBoldOff    = []byte{0x1B, 0x45, 0x00} // ESC E 0
	escFeed       = []byte{0x0A, 0x0A, 0x0A}
	escCut        = []byte{0x1D, 0x56, 0x00} // GS V 0  partial cut
)

// escposWidth is the printable column count in the default font
const escposWidth = 32

// RenderESCPOS translates a ticket document into a raw byte stream for
// a directly attached serial/USB thermal printer: reset + left align up
// front, centered rules, center+bold titles, bold totals, plain text
// for everything else, then paper feed and a partial cut.
func RenderESCPOS(doc Document) []byte {
	var buf bytes.Buffer
	buf.Write(escInit)
	buf.Write(escAlignLeft)
	buf.Write(escFontNormal)

	for _, line := range doc.Lines {
		switch line.Kind {
		case KindRule:
			buf.Write(escAlignMid)
			buf.WriteString(strings.Repeat("-", escposWidth))
			buf.WriteByte('\n')
			buf.Write(escAlignLeft)
		case KindTitle:
			buf.Write(escAlignMid)
			buf.Write(escBoldOn)
			buf.WriteString(line.Text)
			buf.WriteByte('\n')
			buf.Write(escBoldOff)
			buf.Write(escAlignLeft)
		case KindTotal:
			buf.Write(escBoldOn)
			buf.WriteString(line.Text)
			buf.WriteByte('\n')
			buf.Write(escBoldOff)
		case KindBlank:
			buf.WriteByte('\n')
		default:
			buf.WriteString(line.Text)
			buf.WriteByte('\n')
		}
	}

	buf.Write(escFeed)
	buf.Write(escCut)
	return buf.Bytes()
}
