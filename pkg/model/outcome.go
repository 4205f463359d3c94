package model

import "time"

// DriversChampion is the resolved drivers' title.
type DriversChampion struct {
	Driver string `json:"driver"`
	Team   string `json:"team"`
	IsAI   bool   `json:"is_ai"`
}

// ConstructorsChampion is the resolved constructors' title.
type ConstructorsChampion struct {
	Team string `json:"team"`
	IsAI bool   `json:"is_ai"`
}

// Outcome is the result of one season resolution. Players is a snapshot
// of the roster used to assemble the field. The two championship draws
// are independent, inconsistent driver/team pairings are legitimate.
type Outcome struct {
	Timestamp                time.Time            `json:"timestamp"`
	DriversChampionship      DriversChampion      `json:"drivers_championship"`
	ConstructorsChampionship ConstructorsChampion `json:"constructors_championship"`
	Players                  []Player             `json:"players"`
}
