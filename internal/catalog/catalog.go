package catalog

import (
	"coin-purchase/internal/model"

	"github.com/shopspring/decimal"
)

// Catalog is an ordered, fixed list of purchasable coin packages.
type Catalog struct {
	packages []model.CoinPackage
	byID     map[string]int
}

// New builds a catalog preserving the given order. Later duplicates of an id are ignored.
func New(pkgs ...model.CoinPackage) *Catalog {
	c := &Catalog{
		packages: make([]model.CoinPackage, 0, len(pkgs)),
		byID:     make(map[string]int, len(pkgs)),
	}
	for _, p := range pkgs {
		if _, ok := c.byID[p.ID]; ok {
			continue
		}
		c.byID[p.ID] = len(c.packages)
		c.packages = append(c.packages, p)
	}
	return c
}

// Default returns the marketplace bundles.
func Default() *Catalog {
	return New(
		model.CoinPackage{ID: "starter", Name: "Starter Pack", BaseCoins: 100, BonusCoins: 0, PriceUSD: decimal.NewFromInt(5)},
		model.CoinPackage{ID: "basic", Name: "Basic Bundle", BaseCoins: 200, BonusCoins: 10, PriceUSD: decimal.NewFromInt(10)},
		model.CoinPackage{ID: "pro", Name: "Pro Bundle", BaseCoins: 500, BonusCoins: 50, PriceUSD: decimal.NewFromInt(20)},
		model.CoinPackage{ID: "elite", Name: "Elite Bundle", BaseCoins: 1000, BonusCoins: 150, PriceUSD: decimal.NewFromInt(35)},
	)
}

// List returns a copy of the packages in catalog order.
func (c *Catalog) List() []model.CoinPackage {
	out := make([]model.CoinPackage, len(c.packages))
	copy(out, c.packages)
	return out
}

func (c *Catalog) Get(id string) (model.CoinPackage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.CoinPackage{}, false
	}
	return c.packages[i], true
}
