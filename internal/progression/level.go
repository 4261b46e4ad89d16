package progression

import (
	"github.com/osse101/QuestBot_Go/internal/domain"
)

// RequiredExperience is the experience needed to advance past level
func RequiredExperience(level int) int {
	return domain.ExperiencePerLevel * level
}

// GainExperience adds amount to the player's experience and applies every
// level-up it pays for. Each level raises max health and fully heals.
// Returns the number of levels gained. Non-positive amounts are ignored.
func GainExperience(p *domain.Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Experience += amount

	gained := 0
	for p.Experience >= RequiredExperience(p.Level) {
		p.Experience -= RequiredExperience(p.Level)
		p.Level++
		p.MaxHealth += domain.MaxHealthPerLevel
		p.Health = p.MaxHealth
		gained++
	}
	return gained
}

// ExperienceToNextLevel returns how much more experience the next level costs
func ExperienceToNextLevel(p *domain.Player) int {
	return RequiredExperience(p.Level) - p.Experience
}
