// Package catalog loads YAML catalogs of named places and builds Local
// Mean Time zones for them.
//
// A catalog file lists places with their longitudes and optional alias
// names:
//
//	places:
//	  - name: Berlin
//	    longitude: 13.41
//	    aliases: [Office]
//	  - name: Greenwich
//	    longitude: 0
//
// Decoding is strict: unknown keys, missing fields, duplicate place
// names, and out-of-range longitudes are load errors naming the
// offending place.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solartime/lmt-go/pkg/lmt"
	"github.com/solartime/lmt-go/pkg/offset"
	"github.com/solartime/lmt-go/pkg/timezone"
)

// Catalog errors.
var (
	ErrUnknownPlace = errors.New("place not in catalog")
)

// Place is a named location with a longitude.
type Place struct {
	// Name identifies the place within the catalog.
	Name string

	// Longitude is the place's longitude in degrees, east positive.
	Longitude float64

	// Aliases are extra names to register for this place's offset.
	Aliases []string
}

// Offset returns the place's Local Mean Time offset.
func (p Place) Offset() offset.Offset {
	// Longitude was range-checked at load time.
	off, _ := lmt.OffsetAtLongitude(p.Longitude)
	return off
}

// Catalog is an ordered collection of places.
type Catalog struct {
	places []Place
	byName map[string]int
}

type fileDoc struct {
	Places []placeDoc `yaml:"places"`
}

type placeDoc struct {
	Name      string   `yaml:"name"`
	Longitude *float64 `yaml:"longitude"`
	Aliases   []string `yaml:"aliases"`
}

// Load reads a YAML catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]int)}
	for i, pd := range doc.Places {
		if pd.Name == "" {
			return nil, fmt.Errorf("place %d: missing name", i)
		}
		if pd.Longitude == nil {
			return nil, fmt.Errorf("place %q: missing longitude", pd.Name)
		}
		if err := (lmt.Config{Longitude: *pd.Longitude}).Validate(); err != nil {
			return nil, fmt.Errorf("place %q: %w", pd.Name, err)
		}
		if _, exists := c.byName[pd.Name]; exists {
			return nil, fmt.Errorf("place %q: duplicate name", pd.Name)
		}
		for _, alias := range pd.Aliases {
			if alias == "" {
				return nil, fmt.Errorf("place %q: %w", pd.Name, timezone.ErrEmptyAlias)
			}
		}

		c.byName[pd.Name] = len(c.places)
		c.places = append(c.places, Place{
			Name:      pd.Name,
			Longitude: *pd.Longitude,
			Aliases:   pd.Aliases,
		})
	}

	return c, nil
}

// LoadFile reads a YAML catalog from the given path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Places returns the places in file order.
func (c *Catalog) Places() []Place {
	places := make([]Place, len(c.places))
	copy(places, c.places)
	return places
}

// Place returns the named place.
// Returns ErrUnknownPlace if the catalog has no such entry.
func (c *Catalog) Place(name string) (Place, error) {
	i, ok := c.byName[name]
	if !ok {
		return Place{}, fmt.Errorf("%q: %w", name, ErrUnknownPlace)
	}
	return c.places[i], nil
}

// Zone builds the Local Mean Time zone for the named place.
func (c *Catalog) Zone(name string) (*lmt.Zone, error) {
	p, err := c.Place(name)
	if err != nil {
		return nil, err
	}
	return lmt.New(lmt.Config{Longitude: p.Longitude, Name: p.Name})
}

// RegisterAliases registers every place's name and aliases against its
// offset. Later places win on alias collisions, matching the registry's
// last-write-wins rule.
func (c *Catalog) RegisterAliases(reg *timezone.Registry) error {
	for _, p := range c.places {
		zone, err := lmt.New(lmt.Config{Longitude: p.Longitude, Name: p.Name})
		if err != nil {
			return fmt.Errorf("place %q: %w", p.Name, err)
		}
		if err := zone.MakeAlias(reg, p.Name); err != nil {
			return fmt.Errorf("place %q: %w", p.Name, err)
		}
		for _, alias := range p.Aliases {
			if err := zone.MakeAlias(reg, alias); err != nil {
				return fmt.Errorf("place %q alias %q: %w", p.Name, alias, err)
			}
		}
	}
	return nil
}
