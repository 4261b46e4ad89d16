package combat

import (
	"fmt"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/progression"
	"github.com/osse101/QuestBot_Go/internal/utils"
)

// Resolver runs combat turns. It mutates the player it is given and holds no
// per-player state, so one Resolver serves every session.
type Resolver struct {
	rnd     func() float64
	randInt func(min, max int) int
}

// NewResolver creates a resolver backed by the process random source
func NewResolver() *Resolver {
	return NewResolverWithRand(utils.RandomFloat, utils.RandomInt)
}

// NewResolverWithRand creates a resolver with injected random sources.
// rnd must return values in [0, 1); randInt is inclusive on both ends.
func NewResolverWithRand(rnd func() float64, randInt func(min, max int) int) *Resolver {
	return &Resolver{rnd: rnd, randInt: randInt}
}

// EnterCombat picks one of the location's monsters uniformly and starts a fight
func (r *Resolver) EnterCombat(p *domain.Player, view domain.LocationView) (*domain.Monster, error) {
	if p.InCombat {
		return nil, domain.ErrAlreadyInCombat
	}
	i := utils.RandomIndex(r.rnd, len(view.Monsters))
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoMonsterAvailable, view.Name)
	}
	p.StartCombat(view.Monsters[i])
	return p.CurrentMonster.Clone(), nil
}

// PlayerDamage rolls one player hit and reports whether it was critical
func (r *Resolver) PlayerDamage(p *domain.Player) (int, bool) {
	base := domain.BaseDamage + domain.DamagePerLevel*p.Level + p.Class.DamageBonus() + p.Equipment.WeaponPower()
	damage := int(float64(base) * utils.RandomUniform(r.rnd, domain.PlayerDamageMinRoll, domain.PlayerDamageMaxRoll))

	critical := r.rnd() < domain.CriticalChance
	if critical {
		damage *= domain.CriticalMultiplier
	}
	return max(domain.MinimumDamage, damage), critical
}

// MonsterDamage rolls one monster hit
func (r *Resolver) MonsterDamage(m *domain.Monster) int {
	return int(float64(m.Damage) * utils.RandomUniform(r.rnd, domain.MonsterDamageMinRoll, domain.MonsterDamageMaxRoll))
}

// Attack resolves one player attack and, unless it kills, the monster's reply
func (r *Resolver) Attack(p *domain.Player) (*domain.CombatOutcome, error) {
	if !p.InCombat || p.CurrentMonster == nil {
		return nil, domain.ErrNotInCombat
	}

	out := &domain.CombatOutcome{Result: domain.CombatOngoing}
	out.PlayerDamage, out.Critical = r.PlayerDamage(p)
	p.CurrentMonster.Health -= out.PlayerDamage

	if p.CurrentMonster.Defeated() {
		r.victory(p, out)
		return out, nil
	}
	r.retaliate(p, out)
	return out, nil
}

// Flee tries to escape. A failed attempt costs a monster hit.
func (r *Resolver) Flee(p *domain.Player) (*domain.CombatOutcome, error) {
	if !p.InCombat || p.CurrentMonster == nil {
		return nil, domain.ErrNotInCombat
	}

	if r.rnd() < domain.FleeChance {
		out := &domain.CombatOutcome{Result: domain.CombatEscaped, Monster: p.CurrentMonster.Clone()}
		p.EndCombat()
		return out, nil
	}

	out := &domain.CombatOutcome{Result: domain.CombatEscapeFailed}
	r.retaliate(p, out)
	return out, nil
}

// UsePotion drinks the first potion in the inventory. It takes a turn, so
// the monster strikes back afterwards.
func (r *Resolver) UsePotion(p *domain.Player) (*domain.CombatOutcome, error) {
	if !p.InCombat || p.CurrentMonster == nil {
		return nil, domain.ErrNotInCombat
	}

	idx := p.FirstItemOfKind(domain.ItemKindPotion)
	if idx < 0 {
		return nil, domain.ErrNoPotionAvailable
	}
	potion, err := p.RemoveItemAt(idx)
	if err != nil {
		return nil, err
	}

	out := &domain.CombatOutcome{Result: domain.CombatOngoing}
	out.Healed = p.Heal(potion.Power)
	r.retaliate(p, out)
	return out, nil
}

func (r *Resolver) victory(p *domain.Player, out *domain.CombatOutcome) {
	m := p.CurrentMonster

	out.Result = domain.CombatVictory
	out.Monster = m.Clone()
	out.ExperienceGained = m.Experience
	out.LevelsGained = progression.GainExperience(p, m.Experience)
	out.GoldGained = r.randInt(domain.VictoryGoldMin, domain.VictoryGoldMax)
	p.Gold += out.GoldGained

	for _, item := range m.Loot {
		p.AddItem(item)
	}
	out.Loot = append([]domain.Item(nil), m.Loot...)

	p.EndCombat()
}

// retaliate applies the monster's hit. Lethal damage ends the fight with the
// defeat penalty: half max health, half the gold.
func (r *Resolver) retaliate(p *domain.Player, out *domain.CombatOutcome) {
	m := p.CurrentMonster
	out.MonsterDamage = r.MonsterDamage(m)
	p.Health -= out.MonsterDamage
	out.Monster = m.Clone()

	if p.Health > 0 {
		return
	}

	out.Result = domain.CombatDefeat
	p.Health = p.MaxHealth / 2
	out.GoldLost = p.Gold - p.Gold/2
	p.Gold /= 2
	p.EndCombat()
}
