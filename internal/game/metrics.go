package game

import (
	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/metrics"
)

func recordMetrics(r *domain.ActionResult) {
	if c := r.Combat; c != nil && r.Action != domain.ActionTypeEnterCombat {
		metrics.CombatOutcomes.WithLabelValues(string(c.Result)).Inc()
		if c.LevelsGained > 0 {
			metrics.LevelUps.Add(float64(c.LevelsGained))
		}
		if c.GoldGained > 0 {
			metrics.GoldEarned.WithLabelValues(metrics.GoldSourceVictory).Add(float64(c.GoldGained))
		}
		if c.GoldLost > 0 {
			metrics.GoldLost.Add(float64(c.GoldLost))
		}
	}

	if e := r.Explore; e != nil {
		metrics.ExploreEvents.WithLabelValues(string(e.Result)).Inc()
		if e.Gold > 0 {
			metrics.GoldEarned.WithLabelValues(metrics.GoldSourceExplore).Add(float64(e.Gold))
		}
	}

	if r.Action == domain.ActionTypeSell && r.Item != nil {
		metrics.ItemsSold.WithLabelValues(r.Item.Name).Inc()
		metrics.GoldEarned.WithLabelValues(metrics.GoldSourceSell).Add(float64(r.GoldGained))
	}
}
