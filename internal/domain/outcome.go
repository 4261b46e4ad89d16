package domain

// CombatResult is how a single combat step ended
type CombatResult string

const (
	CombatOngoing      CombatResult = "ongoing"
	CombatVictory      CombatResult = "victory"
	CombatDefeat       CombatResult = "defeat"
	CombatEscaped      CombatResult = "escaped"
	CombatEscapeFailed CombatResult = "escape_failed"
)

// CombatOutcome describes everything a combat step did to the player
type CombatOutcome struct {
	Result           CombatResult `json:"result"`
	Monster          *Monster     `json:"monster,omitempty"`
	PlayerDamage     int          `json:"player_damage"`  // dealt by the player
	MonsterDamage    int          `json:"monster_damage"` // dealt by the monster
	Critical         bool         `json:"critical"`
	Healed           int          `json:"healed,omitempty"`
	ExperienceGained int          `json:"experience_gained,omitempty"`
	LevelsGained     int          `json:"levels_gained,omitempty"`
	GoldGained       int          `json:"gold_gained,omitempty"`
	GoldLost         int          `json:"gold_lost,omitempty"`
	Loot             []Item       `json:"loot,omitempty"`
}

// ExploreResult is what exploring turned up
type ExploreResult string

const (
	ExploreMonster ExploreResult = "monster"
	ExploreItem    ExploreResult = "item"
	ExploreGold    ExploreResult = "gold"
	ExploreNothing ExploreResult = "nothing"
)

// ExploreOutcome describes one exploration
type ExploreOutcome struct {
	Result  ExploreResult `json:"result"`
	Monster *Monster      `json:"monster,omitempty"`
	Item    *Item         `json:"item,omitempty"`
	Gold    int           `json:"gold,omitempty"`
}

// ActionResult is returned by every engine operation that changes state.
// Player is a snapshot taken after the change was persisted.
type ActionResult struct {
	Action     ActionType      `json:"action"`
	Player     *Player         `json:"player"`
	Combat     *CombatOutcome  `json:"combat,omitempty"`
	Explore    *ExploreOutcome `json:"explore,omitempty"`
	Item       *Item           `json:"item,omitempty"`
	GoldGained int             `json:"gold_gained,omitempty"`
	Healed     int             `json:"healed,omitempty"`
}
