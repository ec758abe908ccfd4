package printing

import (
	"fmt"
	"strings"

	"pizzeria-pos/models"
)

// PrintType selects which of the two ticket layouts to produce
type PrintType string

const (
	PrintKitchen PrintType = "kitchen" // preparation ticket for the kitchen
	PrintReceipt PrintType = "receipt" // customer-facing fiscal receipt
)

var ErrUnknownPrintType = fmt.Errorf("unknown print type")

// ValidPrintType reports whether pt is one of the two supported layouts
func ValidPrintType(pt PrintType) bool {
	return pt == PrintKitchen || pt == PrintReceipt
}

// BuildDocument assembles the structured ticket for a snapshot.
// The caller picks the output encoding afterwards (text, HTML, ESC/POS).
func BuildDocument(snap OrderSnapshot, printType PrintType) (Document, error) {
	switch printType {
	case PrintKitchen:
		return kitchenDocument(snap), nil
	case PrintReceipt:
		return receiptDocument(snap), nil
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownPrintType, printType)
	}
}

func kitchenDocument(snap OrderSnapshot) Document {
	var d Document
	d.Rule("=")
	d.Title("CENTRAL DAS PIZZAS")
	d.Rule("=")
	d.Plain("Data/Hora: " + snap.DateTime)
	d.Plain("Pedido: #" + snap.Number)
	d.Plain("Cliente: " + snap.CustomerName)
	phone := snap.CustomerPhone
	if phone == "" {
		phone = "N/A"
	}
	d.Plain("Telefone: " + phone)
	d.Rule("-")
	d.Title("PEDIDO PARA COZINHA")
	d.Rule("-")

	for i, item := range snap.Items {
		d.Plain(fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		if joined := JoinNames(item.Flavors); joined != "" {
			d.Plain("   SABORES - " + joined)
		}
		d.Plain("   " + FormatBRL(item.Price) + " cada")
		if item.Observations != "" {
			d.Plain("   Obs: " + item.Observations)
		}
		// order-level notes ride on the first item so the cook sees them
		if snap.Notes != "" && i == 0 {
			d.Plain("   Obs Geral: " + snap.Notes)
		}
		d.Blank()
	}

	d.Rule("-")
	d.Total("TOTAL: " + FormatBRL(snap.Total))

	d.Blank()
	if snap.DeliveryType == models.DeliveryTypeDelivery {
		d.Plain("ENTREGA")
		if snap.Address != nil {
			appendAddress(&d, snap.Address)
		}
	} else {
		d.Plain("RETIRADA NO BALCÃO")
	}
	return d
}

func receiptDocument(snap OrderSnapshot) Document {
	var d Document
	d.Rule("=")
	d.Title("CENTRAL DAS PIZZAS")
	d.Rule("=")
	d.Title("CUPOM FISCAL")
	d.Rule("=")
	d.Plain("Data/Hora: " + snap.DateTime)
	d.Plain("Pedido: #" + snap.Number)
	d.Rule("-")
	d.Plain("CLIENTE:")
	d.Plain("Nome: " + snap.CustomerName)
	if snap.CustomerPhone != "" {
		d.Plain("Telefone: " + snap.CustomerPhone)
	}
	d.Rule("-")

	for _, item := range snap.Items {
		d.Blank()
		d.Plain(fmt.Sprintf("%dX %s", item.Quantity, strings.ToUpper(item.Name)))
		if joined := JoinNames(item.Flavors); joined != "" {
			d.Plain("SABORES - " + joined)
		}
		if item.Observations != "" {
			d.Plain("Obs: " + item.Observations)
		}
	}

	d.Blank()
	d.Rule("-")
	if fee := snap.DeliveryFee(); snap.DeliveryType == models.DeliveryTypeDelivery && fee > 0 {
		d.Total("SUBTOTAL: " + FormatBRL(snap.Subtotal()))
		d.Plain("TAXA ENTREGA: " + FormatBRL(fee))
		d.Total("TOTAL: " + FormatBRL(snap.Total))
	} else {
		d.Total("TOTAL: " + FormatBRL(snap.Total))
	}
	d.Rule("-")
	d.Plain("FORMA DE PAGAMENTO: " + PaymentMethodLabel(snap.PaymentMethod))
	if snap.DeliveryType == models.DeliveryTypeDelivery {
		d.Plain("TIPO: ENTREGA")
	} else {
		d.Plain("TIPO: RETIRADA")
	}

	if snap.DeliveryType == models.DeliveryTypeDelivery && snap.Address != nil {
		d.Blank()
		d.Plain("ENDEREÇO DE ENTREGA:")
		appendAddress(&d, snap.Address)
	}

	if snap.Notes != "" {
		d.Blank()
		d.Plain("OBSERVAÇÕES:")
		d.Plain(snap.Notes)
	}

	d.Blank()
	d.Rule("=")
	d.Plain("OBRIGADO PELA PREFERÊNCIA!")
	d.Rule("=")
	return d
}

func appendAddress(d *Document, addr *SnapshotAddress) {
	d.Plain(addr.Street + ", " + addr.Number)
	if addr.Complement != "" {
		d.Plain(addr.Complement)
	}
	d.Plain(addr.Neighborhood)
	d.Plain(addr.City + " - " + addr.State)
	if addr.ZipCode != "" {
		d.Plain("CEP: " + addr.ZipCode)
	}
}
