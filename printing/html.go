package printing

import (
	"html"
	"strings"
)

// RenderHTML wraps a ticket document in a minimal printable HTML page
// sized for an 80mm thermal roll. The caller opens it in a new window
// and triggers the platform print dialog, which delegates printer
// selection entirely to the host OS.
func RenderHTML(doc Document, title string) string {
	var body strings.Builder
	for _, line := range doc.Lines {
		switch line.Kind {
		case KindRule:
			body.WriteString(`  <div class="rule"></div>` + "\n")
		case KindTitle:
			body.WriteString(`  <div class="title">` + html.EscapeString(line.Text) + "</div>\n")
		case KindTotal:
			body.WriteString(`  <div class="total">` + html.EscapeString(line.Text) + "</div>\n")
		case KindBlank:
			body.WriteString("  <br>\n")
		default:
			body.WriteString(`  <div class="line">` + html.EscapeString(line.Text) + "</div>\n")
		}
	}

	return `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>` + html.EscapeString(title) + `</title>
  <style>
    @media print {
      @page {
        size: 80mm auto;
        margin: 0;
      }
      body {
        margin: 0;
      }
    }
    body {
      font-family: 'Courier New', monospace;
      font-size: 12pt;
      line-height: 1.4;
      max-width: 80mm;
      margin: 0 auto;
      padding: 10mm;
    }
    .rule {
      border-top: 2px dashed #000;
      margin: 6px 0;
    }
    .title {
      font-weight: bold;
      text-align: center;
    }
    .total {
      font-weight: bold;
      font-size: 14pt;
    }
    .line {
      margin: 2px 0;
    }
  </style>
</head>
<body>
` + body.String() + `</body>
</html>
`
}
