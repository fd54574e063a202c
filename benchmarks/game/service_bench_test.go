package game_bench

import (
	"context"
	"testing"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/shop"
)

// StubBus implements event.Bus with zero overhead so the benchmarks measure
// the service path, not the subscribers.
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error      { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func benchService(b *testing.B) game.Service {
	b.Helper()

	catalog := shop.NewCatalog([]shop.Def{
		{
			Name:          "Wooden Sword",
			Type:          domain.ItemTypeWeapon,
			Rarity:        domain.RarityCommon,
			RequiredLevel: 1,
			AllowedClass:  domain.AllowedClassWarrior,
			AttackBonus:   2,
			GoldValue:     50,
		},
	})

	svc := game.NewService(game.NewFakeStore(), catalog, &StubBus{})

	if _, err := svc.CreateCharacter(context.Background(), "Bench", string(domain.ClassWarrior)); err != nil {
		b.Fatalf("CreateCharacter failed: %v", err)
	}

	return svc
}

// BenchmarkIncrementHabit measures the full habit reward cycle: load
// snapshot, apply the reward math, persist, publish.
func BenchmarkIncrementHabit(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, game.QuestInput{
		Title:      "Drink water",
		Difficulty: domain.DifficultyMedium,
	})
	if err != nil {
		b.Fatalf("AddHabit failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Habits never reach a terminal state, so the same quest can be
		// incremented on every iteration.
		res, err := svc.IncrementHabit(ctx, habit.ID)
		if err != nil {
			b.Fatalf("IncrementHabit failed: %v", err)
		}
		if !res.Applied {
			b.Fatal("IncrementHabit unexpectedly refused")
		}
	}
}

// BenchmarkListQuests measures the read path with a populated quest log.
func BenchmarkListQuests(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if _, err := svc.AddHabit(ctx, game.QuestInput{
			Title:      "Habit",
			Difficulty: domain.DifficultyEasy,
		}); err != nil {
			b.Fatalf("AddHabit failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ListQuests(ctx); err != nil {
			b.Fatalf("ListQuests failed: %v", err)
		}
	}
}

// BenchmarkBuyItem measures the purchase path including the catalog lookup
// and inventory merge.
func BenchmarkBuyItem(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// The warrior starts with 100 gold and the sword costs 50; after the
		// first purchase the buy is refused, which still exercises the full
		// catalog and inventory path.
		if _, err := svc.BuyItem(ctx, "Wooden Sword"); err != nil {
			b.Fatalf("BuyItem failed: %v", err)
		}
	}
}
