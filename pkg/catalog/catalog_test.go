package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogConsistency(t *testing.T) {
	assert.Len(t, Teams, 10)
	assert.Len(t, Drivers, 20)
	assert.Len(t, Tracks, 22)
	assert.Len(t, Upgrades, 8)
}

func TestDefaultDriverPairs(t *testing.T) {
	seen := map[string]string{}
	for _, team := range TeamNames() {
		pair, ok := DefaultDriverPair(team)
		if !ok {
			t.Errorf("team %s has no default driver pair", team)
			continue
		}
		for _, name := range pair {
			if _, ok := DriverByName(name); !ok {
				t.Errorf("default driver %s of team %s not in catalog", name, team)
			}
			if other, dup := seen[name]; dup {
				t.Errorf("driver %s assigned to both %s and %s", name, other, team)
			}
			seen[name] = team
		}
	}
	// every catalog driver appears in exactly one default pair
	assert.Len(t, seen, len(Drivers))
}

func TestLookups(t *testing.T) {
	team, ok := TeamByName("Ferrari")
	assert.True(t, ok)
	assert.Equal(t, 150_000_000, team.Budget)

	_, ok = TeamByName("Brawn GP")
	assert.False(t, ok)

	driver, ok := DriverByName("Max Verstappen")
	assert.True(t, ok)
	assert.Equal(t, 96, driver.Skill)

	upgrade, ok := UpgradeByID("power_unit")
	assert.True(t, ok)
	assert.Equal(t, 20_000_000, upgrade.Cost)

	_, ok = UpgradeByID("flux_capacitor")
	assert.False(t, ok)
}
