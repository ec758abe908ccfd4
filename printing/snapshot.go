package printing

import (
	"strconv"
	"strings"

	"pizzeria-pos/models"
)

// OrderSnapshot is the renderer's input contract: a fully resolved,
// storage-free view of one order. Handlers build it once and hand it
// to the ticket assemblers and to API callers doing native printing.
type OrderSnapshot struct {
	ID            string               `json:"id"`
	Number        string               `json:"number"`
	DateTime      string               `json:"date_time"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	Items         []SnapshotItem       `json:"items"`
	Total         float64              `json:"total"`
	DeliveryType  models.DeliveryType  `json:"delivery_type"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Address       *SnapshotAddress     `json:"address,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

type SnapshotItem struct {
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Flavors      []string `json:"flavors,omitempty"`
	Observations string   `json:"observations,omitempty"`
}

type SnapshotAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// Subtotal is the plain item sum (price × quantity); the delivery fee
// is whatever the order total carries on top of it.
func (s OrderSnapshot) Subtotal() float64 {
	sum := 0.0
	for _, it := range s.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// DeliveryFee is total − subtotal for DELIVERY orders, zero otherwise.
func (s OrderSnapshot) DeliveryFee() float64 {
	if s.DeliveryType != models.DeliveryTypeDelivery {
		return 0
	}
	return s.Total - s.Subtotal()
}

// BuildSnapshot flattens a loaded order (items, combos, user, address
// preloaded) into a snapshot, resolving flavor references to names
// against the given dynamic flavor table.
func BuildSnapshot(order *models.Order, flavors map[string]string) OrderSnapshot {
	snap := OrderSnapshot{
		ID:            order.ID,
		Number:        order.Number(),
		DateTime:      order.CreatedAt.Format("02/01/2006 15:04:05"),
		CustomerName:  order.User.Name,
		CustomerPhone: order.User.Phone,
		Total:         order.Total,
		DeliveryType:  order.DeliveryType,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
	}
	for _, it := range order.Items {
		snap.Items = append(snap.Items, SnapshotItem{
			Name:         it.Combo.Name,
			Quantity:     it.Quantity,
			Price:        it.Price,
			Flavors:      ResolveItemFlavors(it.SelectedFlavors, it.Extras, flavors),
			Observations: it.Observations,
		})
	}
	if order.Address != nil {
		snap.Address = &SnapshotAddress{
			Street:       order.Address.Street,
			Number:       order.Address.Number,
			Complement:   order.Address.Complement,
			Neighborhood: order.Address.Neighborhood,
			City:         order.Address.City,
			State:        order.Address.State,
			ZipCode:      order.Address.ZipCode,
		}
	}
	return snap
}

// PaymentMethodLabel maps the enum to the fixed display string printed
// on receipts. Unknown methods pass through unchanged.
func PaymentMethodLabel(method models.PaymentMethod) string {
	switch method {
	case models.PaymentCash:
		return "DINHEIRO"
	case models.PaymentCreditCard:
		return "CARTÃO DE CRÉDITO"
	case models.PaymentDebitCard:
		return "CARTÃO DE DÉBITO"
	case models.PaymentPix:
		return "PIX"
	case models.PaymentIfood:
		return "IFOOD"
	default:
		return string(method)
	}
}

// FormatBRL renders a money value the Brazilian way: comma decimal
// separator, two places, R$ prefix.
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
