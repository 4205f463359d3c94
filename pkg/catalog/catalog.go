// Package catalog holds the static reference data of the game: teams,
// drivers, tracks, the pre-season upgrade catalog and the default
// team/driver assignments used for AI controlled teams. The data is
// immutable and safe to share without locking.
package catalog

import (
	"github.com/samber/lo"

	"github.com/gridrival/season-manager-go/pkg/model"
)

//nolint:gochecknoglobals // static reference data
var Teams = []model.Team{
	{Name: "Red Bull Racing", CarPerformance: 95, Budget: 150_000_000},
	{Name: "Mercedes", CarPerformance: 92, Budget: 150_000_000},
	{Name: "Ferrari", CarPerformance: 90, Budget: 150_000_000},
	{Name: "McLaren", CarPerformance: 88, Budget: 130_000_000},
	{Name: "Aston Martin", CarPerformance: 85, Budget: 120_000_000},
	{Name: "Alpine", CarPerformance: 83, Budget: 110_000_000},
	{Name: "Williams", CarPerformance: 80, Budget: 100_000_000},
	{Name: "Visa Cash App RB", CarPerformance: 79, Budget: 95_000_000},
	{Name: "Kick Sauber", CarPerformance: 78, Budget: 90_000_000},
	{Name: "Haas F1", CarPerformance: 77, Budget: 85_000_000},
}

//nolint:gochecknoglobals // static reference data
var Drivers = []model.Driver{
	{Name: "Lewis Hamilton", Skill: 95, Consistency: 90, Price: 50_000_000},
	{Name: "Max Verstappen", Skill: 96, Consistency: 88, Price: 55_000_000},
	{Name: "Charles Leclerc", Skill: 92, Consistency: 85, Price: 40_000_000},
	{Name: "Lando Norris", Skill: 93, Consistency: 89, Price: 35_000_000},
	{Name: "George Russell", Skill: 89, Consistency: 86, Price: 35_000_000},
	{Name: "Carlos Sainz", Skill: 87, Consistency: 84, Price: 30_000_000},
	{Name: "Fernando Alonso", Skill: 90, Consistency: 88, Price: 25_000_000},
	{Name: "Oscar Piastri", Skill: 87, Consistency: 85, Price: 20_000_000},
	{Name: "Alex Albon", Skill: 84, Consistency: 83, Price: 15_000_000},
	{Name: "Valtteri Bottas", Skill: 86, Consistency: 85, Price: 15_000_000},
	{Name: "Pierre Gasly", Skill: 83, Consistency: 82, Price: 12_000_000},
	{Name: "Kevin Magnussen", Skill: 82, Consistency: 80, Price: 10_000_000},
	{Name: "Yuki Tsunoda", Skill: 81, Consistency: 79, Price: 10_000_000},
	{Name: "Logan Sargeant", Skill: 79, Consistency: 78, Price: 8_000_000},
	{Name: "Zhou Guanyu", Skill: 80, Consistency: 79, Price: 8_000_000},
	{Name: "Daniel Ricciardo", Skill: 84, Consistency: 83, Price: 15_000_000},
	{Name: "Esteban Ocon", Skill: 83, Consistency: 82, Price: 12_000_000},
	{Name: "Nico Hulkenberg", Skill: 82, Consistency: 81, Price: 10_000_000},
	{Name: "Lance Stroll", Skill: 81, Consistency: 80, Price: 10_000_000},
	{Name: "Sergio Perez", Skill: 88, Consistency: 85, Price: 35_000_000},
}

//nolint:gochecknoglobals // static reference data
var Tracks = []model.Track{
	{Name: "Bahrain GP", Difficulty: 75, WeatherImpact: 60, OvertakingDifficulty: 70},
	{Name: "Saudi Arabian GP", Difficulty: 85, WeatherImpact: 50, OvertakingDifficulty: 75},
	{Name: "Australian GP", Difficulty: 70, WeatherImpact: 65, OvertakingDifficulty: 65},
	{Name: "Japanese GP", Difficulty: 80, WeatherImpact: 70, OvertakingDifficulty: 60},
	{Name: "Chinese GP", Difficulty: 75, WeatherImpact: 75, OvertakingDifficulty: 70},
	{Name: "Miami GP", Difficulty: 70, WeatherImpact: 60, OvertakingDifficulty: 65},
	{Name: "Emilia Romagna GP", Difficulty: 80, WeatherImpact: 80, OvertakingDifficulty: 75},
	{Name: "Monaco GP", Difficulty: 95, WeatherImpact: 85, OvertakingDifficulty: 95},
	{Name: "Canadian GP", Difficulty: 75, WeatherImpact: 75, OvertakingDifficulty: 70},
	{Name: "Spanish GP", Difficulty: 70, WeatherImpact: 65, OvertakingDifficulty: 75},
	{Name: "Austrian GP", Difficulty: 75, WeatherImpact: 70, OvertakingDifficulty: 65},
	{Name: "British GP", Difficulty: 85, WeatherImpact: 80, OvertakingDifficulty: 70},
	{Name: "Hungarian GP", Difficulty: 80, WeatherImpact: 60, OvertakingDifficulty: 85},
	{Name: "Belgian GP", Difficulty: 85, WeatherImpact: 85, OvertakingDifficulty: 70},
	{Name: "Dutch GP", Difficulty: 80, WeatherImpact: 75, OvertakingDifficulty: 80},
	{Name: "Italian GP", Difficulty: 75, WeatherImpact: 60, OvertakingDifficulty: 60},
	{Name: "Singapore GP", Difficulty: 90, WeatherImpact: 80, OvertakingDifficulty: 85},
	{Name: "United States GP", Difficulty: 75, WeatherImpact: 65, OvertakingDifficulty: 70},
	{Name: "Mexican GP", Difficulty: 80, WeatherImpact: 55, OvertakingDifficulty: 75},
	{Name: "Brazilian GP", Difficulty: 80, WeatherImpact: 80, OvertakingDifficulty: 70},
	{Name: "Las Vegas GP", Difficulty: 85, WeatherImpact: 60, OvertakingDifficulty: 75},
	{Name: "Abu Dhabi GP", Difficulty: 75, WeatherImpact: 55, OvertakingDifficulty: 70},
}

// Upgrades is the fixed pre-season development catalog. A team selects
// at most one entry per season.
//
//nolint:gochecknoglobals // static reference data
var Upgrades = []model.Upgrade{
	{ID: "hydraulics", Cost: 8_000_000, Description: "Improves car reliability and handling"},
	{ID: "aerodynamics", Cost: 15_000_000, Description: "Better downforce and straight-line speed"},
	{ID: "tyres", Cost: 5_000_000, Description: "Better tyre wear and grip"},
	{ID: "power_unit", Cost: 20_000_000, Description: "More power and better fuel efficiency"},
	{ID: "brakes", Cost: 7_000_000, Description: "Enhanced braking performance"},
	{ID: "driver_fitness", Cost: 3_000_000, Description: "Improves driver stamina"},
	{ID: "driver_reactions", Cost: 4_000_000, Description: "Faster response times"},
	{ID: "driver_mentality", Cost: 2_000_000, Description: "Better focus and race management"},
}

//nolint:gochecknoglobals // static reference data
var defaultAssignments = map[string][2]string{
	"Red Bull Racing":  {"Max Verstappen", "Sergio Perez"},
	"Mercedes":         {"Lewis Hamilton", "George Russell"},
	"Ferrari":          {"Charles Leclerc", "Carlos Sainz"},
	"McLaren":          {"Lando Norris", "Oscar Piastri"},
	"Aston Martin":     {"Fernando Alonso", "Lance Stroll"},
	"Alpine":           {"Pierre Gasly", "Esteban Ocon"},
	"Williams":         {"Alex Albon", "Logan Sargeant"},
	"Visa Cash App RB": {"Daniel Ricciardo", "Yuki Tsunoda"},
	"Kick Sauber":      {"Valtteri Bottas", "Zhou Guanyu"},
	"Haas F1":          {"Nico Hulkenberg", "Kevin Magnussen"},
}

// TeamByName returns the catalog team with the given name.
func TeamByName(name string) (model.Team, bool) {
	return lo.Find(Teams, func(t model.Team) bool { return t.Name == name })
}

// DriverByName returns the catalog driver with the given name.
func DriverByName(name string) (model.Driver, bool) {
	return lo.Find(Drivers, func(d model.Driver) bool { return d.Name == name })
}

// UpgradeByID returns the upgrade catalog entry with the given id.
func UpgradeByID(id string) (model.Upgrade, bool) {
	return lo.Find(Upgrades, func(u model.Upgrade) bool { return u.ID == id })
}

// TeamNames returns all catalog team names in catalog order.
func TeamNames() []string {
	return lo.Map(Teams, func(t model.Team, _ int) string { return t.Name })
}

// DefaultDriverPair returns the default driver assignment for a team,
// used to fill AI controlled teams when assembling the season field.
func DefaultDriverPair(team string) ([2]string, bool) {
	pair, ok := defaultAssignments[team]
	return pair, ok
}
