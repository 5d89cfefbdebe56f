// Package bot provides the automated opponent used when no second human is
// connected. It plugs into the engine through the same game.Agent interface
// as a remote client, so the engine never knows which side is automated.
package bot

import (
	"math/rand"

	"github.com/NP-Dat/battle-arena/internal/game"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

// RandomPolicy buys random affordable items. Roster phase: keep picking
// uniformly random catalog units, skipping picks it cannot pay for, until the
// roster is full or nothing is affordable. Upgrade phase: at most one random
// affordable upgrade per round.
type RandomPolicy struct {
	name string
	rng  *rand.Rand
}

// New creates a policy drawing from the given random source. The source is
// typically the match's own, so a seeded match replays the bot's purchases
// too.
func New(name string, rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{name: name, rng: rng}
}

// BuildRoster fills the roster with random affordable units.
func (p *RandomPolicy) BuildRoster(shop *game.RosterShop) error {
	catalog := shop.Catalog()
	if len(catalog) == 0 {
		return nil
	}

	cheapest := catalog[0].Cost
	for _, tmpl := range catalog[1:] {
		if tmpl.Cost < cheapest {
			cheapest = tmpl.Cost
		}
	}

	for shop.Gold() >= cheapest && !shop.Full() {
		pick := p.rng.Intn(len(catalog))
		if catalog[pick].Cost > shop.Gold() {
			continue
		}
		if err := shop.Buy(pick); err != nil {
			return err
		}
		logger.Bot.Debug("%s recruited %s for %d gold (%d left)",
			p.name, catalog[pick].Name, catalog[pick].Cost, shop.Gold())
	}
	return nil
}

// PickUpgrades buys one random upgrade the policy can afford, if any.
func (p *RandomPolicy) PickUpgrades(shop *game.UpgradeShop) error {
	var affordable []int
	for i, spec := range shop.Catalog() {
		if spec.Cost <= shop.Gold() {
			affordable = append(affordable, i)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	pick := affordable[p.rng.Intn(len(affordable))]
	if err := shop.Buy(pick); err != nil {
		return err
	}
	logger.Bot.Debug("%s bought %s (%d gold left)",
		p.name, shop.Catalog()[pick].Label, shop.Gold())
	return nil
}

// ReviewRound is a no-op; the bot does not render reports.
func (p *RandomPolicy) ReviewRound(report game.RoundReport) {}
