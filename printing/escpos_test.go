package printing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderESCPOSFraming(t *testing.T) {
	doc, _ := BuildDocument(deliverySnapshot(), PrintReceipt)
	raw := RenderESCPOS(doc)

	t.Run("starts with initialize and left align", func(t *testing.T) {
		prefix := append(append([]byte{}, escInit...), escAlignLeft...)
		prefix = append(prefix, escFontNormal...)
		assert.True(t, bytes.HasPrefix(raw, prefix))
	})

	t.Run("ends with feed and partial cut", func(t *testing.T) {
		suffix := append(append([]byte{}, escFeed...), escCut...)
		assert.True(t, bytes.HasSuffix(raw, suffix))
	})
}

func TestRenderESCPOSEmphasis(t *testing.T) {
	var doc Document
	doc.Title("CUPOM FISCAL")
	doc.Total("TOTAL: R$ 67,30")
	doc.Plain("TIPO: ENTREGA")
	raw := RenderESCPOS(doc)

	t.Run("titles are centered and bold", func(t *testing.T) {
		want := append(append([]byte{}, escAlignMid...), escBoldOn...)
		want = append(want, []byte("CUPOM FISCAL\n")...)
		assert.True(t, bytes.Contains(raw, want))
	})

	t.Run("totals are bold but left aligned", func(t *testing.T) {
		want := append(append([]byte{}, escBoldOn...), []byte("TOTAL: R$ 67,30\n")...)
		want = append(want, escBoldOff...)
		assert.True(t, bytes.Contains(raw, want))
	})

	t.Run("plain lines carry no control codes", func(t *testing.T) {
		assert.True(t, bytes.Contains(raw, []byte("TIPO: ENTREGA\n")))
		idx := bytes.Index(raw, []byte("TIPO: ENTREGA"))
		assert.NotEqual(t, byte(0x1B), raw[idx-1])
	})
}

func TestRenderESCPOSRules(t *testing.T) {
	var doc Document
	doc.Rule("=")
	raw := RenderESCPOS(doc)

	// rules print as centered 32-column dashes regardless of rule char
	want := append(append([]byte{}, escAlignMid...), []byte("--------------------------------\n")...)
	want = append(want, escAlignLeft...)
	assert.True(t, bytes.Contains(raw, want))
}

func TestRenderHTML(t *testing.T) {
	doc, _ := BuildDocument(deliverySnapshot(), PrintKitchen)
	page := RenderHTML(doc, "Comanda Cozinha - Pedido #e5f6g7h8")

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "size: 80mm auto")
	assert.Contains(t, page, "Courier New")
	assert.Contains(t, page, "<title>Comanda Cozinha - Pedido #e5f6g7h8</title>")
	assert.Contains(t, page, "PEDIDO PARA COZINHA")
	assert.Contains(t, page, "2x Pizza Grande")

	t.Run("content is escaped", func(t *testing.T) {
		var d Document
		d.Plain(`<script>alert("x")</script>`)
		out := RenderHTML(d, "t")
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
	})
}
