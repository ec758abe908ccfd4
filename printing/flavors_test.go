package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNames(t *testing.T) {
	t.Run("empty list yields empty string", func(t *testing.T) {
		assert.Equal(t, "", JoinNames(nil))
		assert.Equal(t, "", JoinNames([]string{}))
	})

	t.Run("single name as-is", func(t *testing.T) {
		assert.Equal(t, "Calabresa", JoinNames([]string{"Calabresa"}))
	})

	t.Run("two names joined with E", func(t *testing.T) {
		assert.Equal(t, "Calabresa E Frango", JoinNames([]string{"Calabresa", "Frango"}))
	})

	t.Run("three or more comma-joined with E before last", func(t *testing.T) {
		assert.Equal(t, "Calabresa, Frango E Bacon",
			JoinNames([]string{"Calabresa", "Frango", "Bacon"}))
		assert.Equal(t, "A, B, C E D", JoinNames([]string{"A", "B", "C", "D"}))
	})
}

func TestResolveName(t *testing.T) {
	dynamic := map[string]string{"db-1": "Quatro Estações", "trad-5": "Calabresa Nova"}

	t.Run("dynamic table wins", func(t *testing.T) {
		assert.Equal(t, "Quatro Estações", ResolveName("db-1", dynamic))
		// dynamic overrides the legacy name for the same key
		assert.Equal(t, "Calabresa Nova", ResolveName("trad-5", dynamic))
	})

	t.Run("legacy table covers historical IDs", func(t *testing.T) {
		assert.Equal(t, "Calabresa", ResolveName("trad-5", nil))
		assert.Equal(t, "Bacon", ResolveName("esp-6", nil))
		assert.Equal(t, "Strogonoff de Camarão", ResolveName("prem-9", nil))
	})

	t.Run("unknown ID falls back to itself", func(t *testing.T) {
		assert.Equal(t, "mystery-42", ResolveName("mystery-42", dynamic))
	})
}

func TestParseFlavorRefs(t *testing.T) {
	t.Run("array of bare IDs", func(t *testing.T) {
		assert.Equal(t, []string{"trad-5", "esp-6"}, ParseFlavorRefs(`["trad-5","esp-6"]`))
	})

	t.Run("array of id objects", func(t *testing.T) {
		assert.Equal(t, []string{"trad-5", "esp-6"},
			ParseFlavorRefs(`[{"id":"trad-5"},{"id":"esp-6"}]`))
	})

	t.Run("single object and single string yield the same ID", func(t *testing.T) {
		assert.Equal(t, []string{"esp-6"}, ParseFlavorRefs(`{"id":"esp-6"}`))
		assert.Equal(t, []string{"esp-6"}, ParseFlavorRefs(`"esp-6"`))
	})

	t.Run("double-encoded JSON string", func(t *testing.T) {
		assert.Equal(t, []string{"trad-5", "esp-6"},
			ParseFlavorRefs(`"[\"trad-5\",\"esp-6\"]"`))
	})

	t.Run("mixed shapes in one array", func(t *testing.T) {
		assert.Equal(t, []string{"trad-5", "esp-6"},
			ParseFlavorRefs(`["trad-5",{"id":"esp-6"}]`))
	})

	t.Run("malformed input degrades to no IDs", func(t *testing.T) {
		assert.Nil(t, ParseFlavorRefs(`not json at all {`))
		assert.Nil(t, ParseFlavorRefs(""))
		assert.Nil(t, ParseFlavorRefs("   "))
	})
}

func TestParseSecondPizzaRefs(t *testing.T) {
	t.Run("flavorsPizza2 extracted from extras", func(t *testing.T) {
		assert.Equal(t, []string{"prem-1", "prem-2"},
			ParseSecondPizzaRefs(`{"flavorsPizza2":["prem-1",{"id":"prem-2"}]}`))
	})

	t.Run("extras without flavorsPizza2", func(t *testing.T) {
		assert.Nil(t, ParseSecondPizzaRefs(`{"extraCheese":true}`))
	})

	t.Run("malformed extras degrade to no IDs", func(t *testing.T) {
		assert.Nil(t, ParseSecondPizzaRefs(`{{{`))
		assert.Nil(t, ParseSecondPizzaRefs(""))
	})
}

func TestResolveItemFlavors(t *testing.T) {
	t.Run("object and bare-string references resolve identically", func(t *testing.T) {
		fromObject := ResolveItemFlavors(`[{"id":"esp-6"}]`, "", nil)
		fromString := ResolveItemFlavors(`["esp-6"]`, "", nil)
		assert.Equal(t, []string{"Bacon"}, fromObject)
		assert.Equal(t, fromObject, fromString)
	})

	t.Run("second pizza flavors appended after the first", func(t *testing.T) {
		names := ResolveItemFlavors(`["trad-5"]`, `{"flavorsPizza2":["esp-6"]}`, nil)
		assert.Equal(t, []string{"Calabresa", "Bacon"}, names)
	})

	t.Run("bad selectedFlavors does not drop extras flavors", func(t *testing.T) {
		names := ResolveItemFlavors(`broken{`, `{"flavorsPizza2":["trad-16"]}`, nil)
		assert.Equal(t, []string{"Portuguesa"}, names)
	})
}
