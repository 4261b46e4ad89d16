package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// scripted returns the draws in order and then repeats the last one
func scripted(draws ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := draws[min(i, len(draws)-1)]
		i++
		return v
	}
}

func fixedInt(v int) func(int, int) int {
	return func(int, int) int { return v }
}

func wolf() domain.Monster {
	return domain.Monster{TemplateID: 2, Name: "Волк", Level: 1, Health: 25, MaxHealth: 25, Damage: 6, Experience: 15}
}

func fighting(m domain.Monster) *domain.Player {
	p := domain.NewPlayer(1, "hero")
	p.Class = domain.ClassRogue
	p.StartCombat(m)
	return p
}

func TestEnterCombat(t *testing.T) {
	view := domain.LocationView{
		Location: domain.Location{ID: 2, Name: "Темный лес"},
		Monsters: []domain.Monster{{Name: "Гоблин"}, {Name: "Волк"}, {Name: "Паук-гигант"}},
	}

	t.Run("picks uniformly by draw", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.5), fixedInt(0))
		p := domain.NewPlayer(1, "hero")

		m, err := r.EnterCombat(p, view)

		require.NoError(t, err)
		assert.Equal(t, "Волк", m.Name)
		assert.True(t, p.InCombat)
		require.NotNil(t, p.CurrentMonster)
		assert.Equal(t, "Волк", p.CurrentMonster.Name)
	})

	t.Run("empty location", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.5), fixedInt(0))
		p := domain.NewPlayer(1, "hero")

		_, err := r.EnterCombat(p, domain.LocationView{Location: domain.Location{Name: "Стартовая деревня"}})

		assert.ErrorIs(t, err, domain.ErrNoMonsterAvailable)
		assert.False(t, p.InCombat)
	})

	t.Run("already fighting", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.5), fixedInt(0))
		p := fighting(wolf())

		_, err := r.EnterCombat(p, view)

		assert.ErrorIs(t, err, domain.ErrAlreadyInCombat)
	})
}

func TestPlayerDamage(t *testing.T) {
	sword := domain.Item{ID: 1, Kind: domain.ItemKindWeapon, Power: 10}

	tests := []struct {
		name         string
		class        domain.PlayerClass
		level        int
		weapon       *domain.Item
		draws        []float64
		want         int
		wantCritical bool
	}{
		{"unarmed level 1", domain.ClassMage, 1, nil, []float64{0.25, 0.5}, 10, false},      // 12 * 0.9
		{"warrior bonus", domain.ClassWarrior, 1, nil, []float64{0.25, 0.5}, 15, false},     // 17 * 0.9
		{"archer bonus", domain.ClassArcher, 1, nil, []float64{0.25, 0.5}, 13, false},       // 15 * 0.9
		{"weapon and level", domain.ClassRogue, 3, &sword, []float64{0.25, 0.5}, 23, false}, // 26 * 0.9
		{"critical doubles", domain.ClassMage, 1, nil, []float64{0.25, 0.05}, 20, true},
		{"low roll", domain.ClassMage, 1, nil, []float64{0, 0.5}, 9, false}, // 12 * 0.8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolverWithRand(scripted(tt.draws...), fixedInt(0))
			p := domain.NewPlayer(1, "hero")
			p.Class = tt.class
			p.Level = tt.level
			p.Equipment.Weapon = tt.weapon

			got, critical := r.PlayerDamage(p)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCritical, critical)
		})
	}
}

func TestMonsterDamage(t *testing.T) {
	m := wolf()
	m.Damage = 35

	assert.Equal(t, 33, NewResolverWithRand(scripted(0.25), fixedInt(0)).MonsterDamage(&m)) // 35 * 0.95
	assert.Equal(t, 31, NewResolverWithRand(scripted(0), fixedInt(0)).MonsterDamage(&m))    // 35 * 0.9
}

func TestAttack(t *testing.T) {
	t.Run("not in combat", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.5), fixedInt(0))
		_, err := r.Attack(domain.NewPlayer(1, "hero"))
		assert.ErrorIs(t, err, domain.ErrNotInCombat)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("exchange of blows", func(t *testing.T) {
		// damage roll, crit roll, monster roll
		r := NewResolverWithRand(scripted(0.25, 0.5, 0.25), fixedInt(0))
		p := fighting(wolf())

		out, err := r.Attack(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatOngoing, out.Result)
		assert.Equal(t, 10, out.PlayerDamage)
		assert.Equal(t, 5, out.MonsterDamage)
		assert.Equal(t, 15, p.CurrentMonster.Health)
		assert.Equal(t, 95, p.Health)
		assert.True(t, p.InCombat)
		require.NotNil(t, out.Monster)
		assert.Equal(t, 15, out.Monster.Health)
	})

	t.Run("victory grants rewards and loot", func(t *testing.T) {
		m := wolf()
		m.Health = 8
		m.Loot = []domain.Item{{ID: 4, Name: "Зелье здоровья", Kind: domain.ItemKindPotion, Power: 20}}
		r := NewResolverWithRand(scripted(0.25, 0.5), fixedInt(20))
		p := fighting(m)

		out, err := r.Attack(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatVictory, out.Result)
		assert.Equal(t, 15, out.ExperienceGained)
		assert.Equal(t, 20, out.GoldGained)
		assert.Equal(t, 0, out.MonsterDamage)
		assert.Equal(t, 15, p.Experience)
		assert.Equal(t, 70, p.Gold)
		assert.Equal(t, 100, p.Health)
		require.Len(t, p.Inventory, 1)
		assert.Equal(t, 4, p.Inventory[0].ID)
		assert.Len(t, out.Loot, 1)
		assert.False(t, p.InCombat)
		assert.Nil(t, p.CurrentMonster)
	})

	t.Run("victory can level up", func(t *testing.T) {
		m := wolf()
		m.Health = 1
		m.Experience = 250
		r := NewResolverWithRand(scripted(0.25, 0.5), fixedInt(10))
		p := fighting(m)
		p.Health = 3

		out, err := r.Attack(p)

		require.NoError(t, err)
		assert.Equal(t, 1, out.LevelsGained)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 150, p.Experience)
		assert.Equal(t, 120, p.Health)
	})

	t.Run("lethal reply applies defeat penalty", func(t *testing.T) {
		m := wolf()
		m.Health = 100
		m.Damage = 10
		r := NewResolverWithRand(scripted(0.25, 0.5, 0.25), fixedInt(0))
		p := fighting(m)
		p.Health = 5
		p.Gold = 100

		out, err := r.Attack(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatDefeat, out.Result)
		assert.Equal(t, 50, p.Health)
		assert.Equal(t, 50, p.Gold)
		assert.Equal(t, 50, out.GoldLost)
		assert.False(t, p.InCombat)
		assert.Nil(t, p.CurrentMonster)
		assert.Equal(t, 1, p.LocationID)
	})

	t.Run("defeat rounds gold down", func(t *testing.T) {
		m := wolf()
		m.Health = 100
		m.Damage = 50
		r := NewResolverWithRand(scripted(0.25, 0.5, 0.25), fixedInt(0))
		p := fighting(m)
		p.Health = 1
		p.MaxHealth = 121
		p.Gold = 101

		out, err := r.Attack(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatDefeat, out.Result)
		assert.Equal(t, 60, p.Health)
		assert.Equal(t, 50, p.Gold)
		assert.Equal(t, 51, out.GoldLost)
	})
}

func TestFlee(t *testing.T) {
	t.Run("success ends combat unharmed", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.59), fixedInt(0))
		p := fighting(wolf())

		out, err := r.Flee(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatEscaped, out.Result)
		assert.Equal(t, 100, p.Health)
		assert.False(t, p.InCombat)
	})

	t.Run("failure costs a hit", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.6, 0.25), fixedInt(0))
		p := fighting(wolf())

		out, err := r.Flee(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatEscapeFailed, out.Result)
		assert.Equal(t, 5, out.MonsterDamage)
		assert.Equal(t, 95, p.Health)
		assert.True(t, p.InCombat)
	})

	t.Run("failed flee can still be lethal", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.9, 0.25), fixedInt(0))
		p := fighting(wolf())
		p.Health = 2

		out, err := r.Flee(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatDefeat, out.Result)
		assert.Equal(t, 50, p.Health)
		assert.False(t, p.InCombat)
	})

	t.Run("not in combat", func(t *testing.T) {
		_, err := NewResolver().Flee(domain.NewPlayer(1, "hero"))
		assert.ErrorIs(t, err, domain.ErrNotInCombat)
	})
}

func TestFleeSuccessRate(t *testing.T) {
	r := NewResolver()
	const trials = 10000

	escaped := 0
	for i := 0; i < trials; i++ {
		p := fighting(wolf())
		out, err := r.Flee(p)
		require.NoError(t, err)
		if out.Result == domain.CombatEscaped {
			escaped++
		}
	}

	rate := float64(escaped) / trials
	assert.InDelta(t, 0.6, rate, 0.02)
}

func TestUsePotion(t *testing.T) {
	potion := domain.Item{ID: 4, Name: "Зелье здоровья", Kind: domain.ItemKindPotion, Power: 20}
	elixir := domain.Item{ID: 10, Name: "Эликсир маны", Kind: domain.ItemKindPotion, Power: 0}
	sword := domain.Item{ID: 1, Kind: domain.ItemKindWeapon, Power: 10}

	t.Run("drinks first potion then takes a hit", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.25), fixedInt(0))
		p := fighting(wolf())
		p.Health = 50
		p.Inventory = []domain.Item{sword, potion, elixir}

		out, err := r.UsePotion(p)

		require.NoError(t, err)
		assert.Equal(t, domain.CombatOngoing, out.Result)
		assert.Equal(t, 20, out.Healed)
		assert.Equal(t, 5, out.MonsterDamage)
		assert.Equal(t, 65, p.Health)
		assert.Equal(t, []domain.Item{sword, elixir}, p.Inventory)
		assert.True(t, p.InCombat)
	})

	t.Run("heal is capped", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.25), fixedInt(0))
		p := fighting(wolf())
		p.Health = 95
		p.Inventory = []domain.Item{potion}

		out, err := r.UsePotion(p)

		require.NoError(t, err)
		assert.Equal(t, 5, out.Healed)
		assert.Equal(t, 95, p.Health)
	})

	t.Run("no potion", func(t *testing.T) {
		r := NewResolverWithRand(scripted(0.25), fixedInt(0))
		p := fighting(wolf())
		p.Health = 40
		p.Inventory = []domain.Item{sword}

		_, err := r.UsePotion(p)

		assert.ErrorIs(t, err, domain.ErrNoPotionAvailable)
		assert.Equal(t, 40, p.Health)
		assert.Len(t, p.Inventory, 1)
	})
}

func TestInvariantsHoldOverRandomFights(t *testing.T) {
	r := NewResolver()
	view := domain.LocationView{Monsters: []domain.Monster{wolf(), {Name: "Дракон", Health: 200, MaxHealth: 200, Damage: 35, Experience: 300}}}
	potion := domain.Item{ID: 4, Kind: domain.ItemKindPotion, Power: 20}

	p := domain.NewPlayer(1, "hero")
	p.Class = domain.ClassWarrior
	for i := 0; i < 5000; i++ {
		if !p.InCombat {
			_, err := r.EnterCombat(p, view)
			require.NoError(t, err)
			if i%3 == 0 {
				p.AddItem(potion)
			}
		}

		var err error
		switch i % 4 {
		case 0, 1:
			_, err = r.Attack(p)
		case 2:
			_, err = r.Flee(p)
		case 3:
			_, err = r.UsePotion(p)
			if err != nil {
				require.ErrorIs(t, err, domain.ErrNoPotionAvailable)
				err = nil
			}
		}
		if err != nil {
			require.ErrorIs(t, err, domain.ErrNotInCombat)
		}
		require.NoError(t, p.CheckInvariants(), "step %d", i)
	}
}
