// Package catalog holds the static definitions of raisable animals.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/validation"
)

//go:embed animals.json
var defaultAnimalsJSON []byte

var schemaValidator = validation.NewSchemaValidator()

// Catalog is an immutable, ordered set of animal definitions
type Catalog struct {
	animals []domain.Animal
	byKey   map[string]int
}

// New validates the definitions and builds a catalog preserving their order
func New(animals []domain.Animal) (*Catalog, error) {
	if len(animals) == 0 {
		return nil, fmt.Errorf(ErrMsgEmptyCatalog, domain.ErrInvalidAnimal)
	}

	validate := validator.New()
	c := &Catalog{
		animals: make([]domain.Animal, 0, len(animals)),
		byKey:   make(map[string]int, len(animals)),
	}

	for _, a := range animals {
		if a.DurationSeconds == 0 && a.DurationDays > 0 {
			a.DurationSeconds = int64(a.DurationDays) * domain.SecondsPerDay
		}
		if err := validate.Struct(a); err != nil {
			return nil, fmt.Errorf(ErrMsgValidateAnimal, domain.ErrInvalidAnimal, a.Key, err)
		}
		if _, dup := c.byKey[a.Key]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateAnimal, domain.ErrInvalidAnimal, a.Key)
		}
		c.byKey[a.Key] = len(c.animals)
		c.animals = append(c.animals, a)
	}

	return c, nil
}

// Parse checks data against the catalog schema and builds a catalog from it
func Parse(data []byte) (*Catalog, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, errors.New("malformed JSON"))
	}
	if err := schemaValidator.ValidateBytes(data, validation.SchemaAnimals); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCatalog, domain.ErrInvalidAnimal, err)
	}

	var animals []domain.Animal
	if err := json.Unmarshal(data, &animals); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return New(animals)
}

// LoadFile reads a catalog override from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}
	return Parse(data)
}

// Default returns the built-in five-animal catalog
func Default() *Catalog {
	c, err := Parse(defaultAnimalsJSON)
	if err != nil {
		// embedded data is fixed at build time
		panic(err)
	}
	return c
}

// List returns the animals in definition order
func (c *Catalog) List() []domain.Animal {
	out := make([]domain.Animal, len(c.animals))
	copy(out, c.animals)
	return out
}

// Get looks up an animal by key
func (c *Catalog) Get(key string) (domain.Animal, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return domain.Animal{}, false
	}
	return c.animals[i], true
}
