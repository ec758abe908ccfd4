package printing

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// LegacyFlavors maps the historical hardcoded flavor IDs from the old
// item customizer to their display names. Orders placed before flavors
// moved into the database still reference these IDs, so this table is
// permanent. Do not edit entries.
var LegacyFlavors = map[string]string{
	"trad-1":  "Baiana",
	"trad-2":  "Banana com canela",
	"trad-3":  "Brigadeiro de panela",
	"trad-4":  "Caipira",
	"trad-5":  "Calabresa",
	"trad-6":  "Calabresa c/ cheddar",
	"trad-7":  "Churros",
	"trad-8":  "Dois queijos",
	"trad-9":  "Frango c/ catupiry",
	"trad-10": "Frango c/ cheddar",
	"trad-11": "Lombinho",
	"trad-12": "Marguerita",
	"trad-13": "Milho verde",
	"trad-14": "Mista especial",
	"trad-15": "Moda vegetariana",
	"trad-16": "Portuguesa",
	"trad-17": "Romeu e julieta",
	"esp-1":   "4 queijos",
	"esp-2":   "Atum",
	"esp-3":   "Atum acebolado",
	"esp-4":   "Atum a moda do chef",
	"esp-5":   "Atum especial",
	"esp-6":   "Bacon",
	"esp-7":   "Bacon crocante",
	"esp-8":   "Bacon especial",
	"esp-9":   "Frango a moda da casa",
	"esp-10":  "Frango a moda do chef",
	"esp-11":  "Frango especial",
	"esp-12":  "Lombinho",
	"esp-13":  "Nordestina",
	"esp-14":  "Nordestina a moda do chef",
	"esp-15":  "Nordestina especial",
	"prem-1":  "Camarão aos três queijos",
	"prem-2":  "Camarão com catupiry philadelphia",
	"prem-3":  "Camarão especial",
	"prem-4":  "Carne do Sol aos três Queijos",
	"prem-5":  "Carne do sol apimentada",
	"prem-6":  "Carne do sol com catupiry philadelphia",
	"prem-7":  "Mega nordestina",
	"prem-8":  "Sabor do chef",
	"prem-9":  "Strogonoff de Camarão",
}

// ResolveName maps a flavor ID to its display name. Lookup order: the
// dynamic flavor table, then the legacy table, then the raw ID itself.
// A reference is never dropped just because the name is unknown.
func ResolveName(id string, lookup map[string]string) string {
	if name, ok := lookup[id]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	if name, ok := LegacyFlavors[id]; ok {
		return name
	}
	return id
}

// ParseFlavorRefs extracts flavor IDs from the serialized selectedFlavors
// column. Historical rows mix shapes: a JSON array of bare IDs, an array
// of {id: ...} objects, a single object or string, and double-encoded
// JSON strings. A parse failure is logged and yields no IDs — one bad
// item must not abort rendering of the rest of the ticket.
func ParseFlavorRefs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("printing: unparseable selectedFlavors %q: %v", raw, err)
		return nil
	}
	return flattenRefs(v)
}

func flattenRefs(v interface{}) []string {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		// Double-encoded rows: the JSON string itself holds more JSON
		if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
			var inner interface{}
			if err := json.Unmarshal([]byte(s), &inner); err == nil {
				return flattenRefs(inner)
			}
		}
		return []string{s}
	case map[string]interface{}:
		if id, ok := t["id"]; ok {
			return flattenRefs(id)
		}
		return nil
	case []interface{}:
		var ids []string
		for _, e := range t {
			ids = append(ids, flattenRefs(e)...)
		}
		return ids
	case float64:
		if t == float64(int64(t)) {
			return []string{fmt.Sprintf("%d", int64(t))}
		}
		return []string{fmt.Sprintf("%v", t)}
	default:
		return nil
	}
}

// ParseSecondPizzaRefs extracts flavorsPizza2 IDs from the serialized
// extras column (the second half / second pizza of a combo slot).
func ParseSecondPizzaRefs(rawExtras string) []string {
	rawExtras = strings.TrimSpace(rawExtras)
	if rawExtras == "" {
		return nil
	}
	var extras map[string]interface{}
	if err := json.Unmarshal([]byte(rawExtras), &extras); err != nil {
		log.Printf("printing: unparseable extras %q: %v", rawExtras, err)
		return nil
	}
	refs, ok := extras["flavorsPizza2"]
	if !ok {
		return nil
	}
	return flattenRefs(refs)
}

// ResolveItemFlavors produces the ordered display-name list for one
// order item: selectedFlavors first, then extras.flavorsPizza2.
func ResolveItemFlavors(selectedFlavors, extras string, lookup map[string]string) []string {
	var names []string
	for _, id := range ParseFlavorRefs(selectedFlavors) {
		names = append(names, ResolveName(id, lookup))
	}
	for _, id := range ParseSecondPizzaRefs(extras) {
		names = append(names, ResolveName(id, lookup))
	}
	return names
}

// JoinNames renders a flavor list the way tickets print it:
// one name as-is, two joined with "E", three or more comma-joined
// with "E" before the last.
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " E " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " E " + names[len(names)-1]
	}
}
