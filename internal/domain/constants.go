package domain

// New player defaults
const (
	DefaultMaxHealth   = 100
	StartingLevel      = 1
	StartingGold       = 50
	StartingLocationID = 1
)

// Progression
const (
	ExperiencePerLevel = 100
	MaxHealthPerLevel  = 20
)

// Combat tuning
const (
	BaseDamage           = 10
	DamagePerLevel       = 2
	WarriorDamageBonus   = 5
	ArcherDamageBonus    = 3
	CriticalChance       = 0.1
	CriticalMultiplier   = 2
	MinimumDamage        = 1
	PlayerDamageMinRoll  = 0.8
	PlayerDamageMaxRoll  = 1.2
	MonsterDamageMinRoll = 0.9
	MonsterDamageMaxRoll = 1.1
	FleeChance           = 0.6
	VictoryGoldMin       = 10
	VictoryGoldMax       = 30
)

// Exploration: one draw picks encounter/find/nothing, a second draw splits
// finds evenly between an item and gold
const (
	ExploreMonsterThreshold = 0.4
	ExploreFindThreshold    = 0.7
	ExploreItemChance       = 0.5
	ExploreGoldMin          = 5
	ExploreGoldMax          = 20
)

// Economy
const (
	SellPriceDivisor = 2
)

// StarterItems lists the item ids granted when a class is chosen
var StarterItems = map[PlayerClass][]int{
	ClassWarrior: {1, 2},
	ClassMage:    {5, 10},
	ClassRogue:   {1, 4},
	ClassArcher:  {6, 4},
}
