package config

import (
	_ "embed"
	"fmt"
	"os"

	"code.cloudfoundry.org/imagefetch/errors"
	"code.cloudfoundry.org/imagefetch/resource"
	"gopkg.in/yaml.v2"
)

//go:embed catalog.yml
var catalogYml []byte

type Config struct {
	Dir          string
	Dependencies resource.Catalog
}

func NewConfig() (Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Config{}, errors.SafeWrap(err, "working directory")
	}

	catalog, err := ParseCatalog(catalogYml)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Dir:          dir,
		Dependencies: catalog,
	}, nil
}

// ParseCatalog decodes a YAML catalog. Entries keep their file order and
// names must be non-empty and unique.
func ParseCatalog(data []byte) (resource.Catalog, error) {
	var parsed resource.Catalog
	if err := yaml.UnmarshalStrict(data, &parsed); err != nil {
		return resource.Catalog{}, errors.SafeWrap(err, "Unable to parse catalog")
	}

	var c resource.Catalog
	for i, item := range parsed.Items {
		if item.Name == "" {
			return resource.Catalog{}, errors.SafeWrap(fmt.Errorf("entry %d has no name", i), "invalid catalog")
		}
		if c.Lookup(item.Name) != nil {
			return resource.Catalog{}, errors.SafeWrap(fmt.Errorf("%s listed twice", item.Name), "invalid catalog")
		}
		c.Items = append(c.Items, item)
	}

	return c, nil
}
