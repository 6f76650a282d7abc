package catalog

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/vitarank/internal/domain/model"
)

// LoadFile reads a product catalog from a YAML file. The file holds a
// top-level "products" list; enum fields are normalized through the model
// parsers so unrecognized values degrade instead of erroring.
func LoadFile(_ context.Context, path string) ([]model.ProductCandidate, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}

	var products []model.ProductCandidate
	if err := k.UnmarshalWithConf("products", &products, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}

	for i := range products {
		products[i].EvidenceStrength = model.ParseEvidenceStrength(string(products[i].EvidenceStrength))
		products[i].BrandReputation = model.ParseBrandReputation(string(products[i].BrandReputation))
	}
	return products, nil
}
