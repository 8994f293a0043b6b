package catalog

import (
	"coin-purchase/internal/model"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var ErrEmptyCatalog = errors.New("catalog has no packages")

type fileCatalog struct {
	Packages []filePackage `yaml:"packages" validate:"required,min=1,dive"`
}

type filePackage struct {
	ID         string `yaml:"id" validate:"required"`
	Name       string `yaml:"name" validate:"required"`
	BaseCoins  int    `yaml:"base_coins" validate:"gte=0"`
	BonusCoins int    `yaml:"bonus_coins" validate:"gte=0"`
	PriceUSD   string `yaml:"price_usd" validate:"required,numeric"`
}

// Load reads a YAML catalog file. An empty path yields the default bundles.
//
//	packages:
//	  - id: pro
//	    name: Pro Bundle
//	    base_coins: 500
//	    bonus_coins: 50
//	    price_usd: "20.00"
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog.
func Parse(raw []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.UnmarshalStrict(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(fc.Packages) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := validator.New().Struct(fc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	pkgs := make([]model.CoinPackage, 0, len(fc.Packages))
	for _, p := range fc.Packages {
		price, err := decimal.NewFromString(p.PriceUSD)
		if err != nil {
			return nil, fmt.Errorf("invalid price for package %q: %w", p.ID, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("invalid price for package %q: must be positive", p.ID)
		}
		pkgs = append(pkgs, model.CoinPackage{
			ID:         p.ID,
			Name:       p.Name,
			BaseCoins:  p.BaseCoins,
			BonusCoins: p.BonusCoins,
			PriceUSD:   price,
		})
	}
	return New(pkgs...), nil
}
