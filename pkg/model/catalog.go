package model

// Team is a static catalog entry. Budget is consumed notionally by
// driver and upgrade purchases but never decremented.
type Team struct {
	Name           string `json:"name"`
	CarPerformance int    `json:"car_performance"` // 1-100
	Budget         int    `json:"budget"`
	Points         int    `json:"points"`
	PrizeMoney     int    `json:"prize_money"`
}

// Driver is a static catalog entry. Team is a weak back-reference by
// name, ownership lives in the game roster.
type Driver struct {
	Name        string `json:"name"`
	Skill       int    `json:"skill"`       // 1-100
	Consistency int    `json:"consistency"` // 1-100
	Price       int    `json:"price"`
	Points      int    `json:"points"`
	Crashes     int    `json:"crashes"`
	Team        string `json:"team,omitempty"`
}

// Track is read-only reference data without lifecycle.
type Track struct {
	Name                 string `json:"name"`
	Difficulty           int    `json:"difficulty"`            // 1-100
	WeatherImpact        int    `json:"weather_impact"`        // 1-100
	OvertakingDifficulty int    `json:"overtaking_difficulty"` // 1-100
}

// Upgrade is one entry of the fixed pre-season development catalog.
type Upgrade struct {
	ID          string `json:"id"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}
