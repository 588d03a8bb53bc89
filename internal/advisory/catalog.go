// Package advisory holds the static crop guidance table.
package advisory

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
)

type Entry struct {
	Name        string   `json:"name"`
	BestSeason  string   `json:"best_season"`
	Temperature string   `json:"temperature"`
	Soil        string   `json:"soil"`
	Water       string   `json:"water"`
	Tips        []string `json:"tips"`
	Diseases    []string `json:"diseases"`
	Duration    string   `json:"duration"`
}

type item struct {
	key   string
	entry Entry
}

// Catalog is an ordered, read-only key → entry table.
type Catalog struct {
	items []item
	index map[string]int
}

func newCatalog(items []item) *Catalog {
	c := &Catalog{items: items, index: make(map[string]int, len(items))}
	for i, it := range items {
		c.index[it.key] = i
	}
	return c
}

// Keys lists the crop keys in catalog order.
func (c *Catalog) Keys() []string {
	out := make([]string, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.key)
	}
	return out
}

// Lookup matches the trimmed name case-insensitively against whole keys.
func (c *Catalog) Lookup(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	i, ok := c.index[key]
	if !ok {
		return Entry{}, httperr.NotFoundError(
			"crop_not_found",
			"No suggestions available for "+key,
		).With("available_crops", c.Keys())
	}
	return c.items[i].entry, nil
}

// MarshalJSON renders the table as an object that keeps catalog order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range c.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(it.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(it.entry)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Default is the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = newCatalog([]item{
	{"wheat", Entry{
		Name:        "Wheat",
		BestSeason:  "Rabi (Winter)",
		Temperature: "15-25°C",
		Soil:        "Well-drained loamy soil",
		Water:       "Moderate watering, avoid waterlogging",
		Tips: []string{
			"Sow seeds in rows 20-22 cm apart",
			"Apply nitrogen fertilizer in 3 splits",
			"Irrigate at critical growth stages (crown root, tillering, flowering)",
			"Control weeds within first 30-40 days",
			"Harvest when moisture content is 20-25%",
		},
		Diseases: []string{"Rust", "Powdery mildew", "Leaf blight"},
		Duration: "120-150 days",
	}},
	{"rice", Entry{
		Name:        "Rice",
		BestSeason:  "Kharif (Monsoon)",
		Temperature: "20-35°C",
		Soil:        "Clay or clay loam soil",
		Water:       "Heavy watering required, can withstand flooding",
		Tips: []string{
			"Transplant seedlings at 21-28 days old",
			"Maintain 5-10 cm water level in field",
			"Apply fertilizers based on soil test",
			"Remove weeds regularly",
			"Harvest when 80% grains turn golden yellow",
		},
		Diseases: []string{"Blast", "Sheath blight", "Brown spot"},
		Duration: "90-120 days for short duration, 130-150 for long duration",
	}},
	{"corn", Entry{
		Name:        "Corn (Maize)",
		BestSeason:  "Kharif (Monsoon) or Rabi",
		Temperature: "18-27°C",
		Soil:        "Well-drained loamy soil with good organic matter",
		Water:       "Regular watering, critical during tasseling and grain filling",
		Tips: []string{
			"Plant seeds 60-75 cm between rows, 20-25 cm between plants",
			"Side dress with nitrogen at knee-high stage",
			"Ensure proper drainage to avoid root rot",
			"Control stem borers and fall armyworm",
			"Harvest when kernels are at dough stage",
		},
		Diseases: []string{"Maydis leaf blight", "Common rust", "Stalk rot"},
		Duration: "80-120 days",
	}},
	{"cotton", Entry{
		Name:        "Cotton",
		BestSeason:  "Kharif (Summer)",
		Temperature: "21-30°C",
		Soil:        "Deep, well-drained black cotton soil",
		Water:       "Moderate watering, drought tolerant",
		Tips: []string{
			"Sow seeds with 60-90 cm row spacing",
			"Apply nitrogen in 2-3 splits",
			"Regular monitoring for bollworm",
			"Pruning and defoliation for better yield",
			"Harvest when bolls fully open",
		},
		Diseases: []string{"Wilt", "Leaf curl", "Root rot"},
		Duration: "150-180 days",
	}},
	{"tomato", Entry{
		Name:        "Tomato",
		BestSeason:  "Year-round with protection",
		Temperature: "20-25°C",
		Soil:        "Well-drained sandy loam with pH 6.0-7.0",
		Water:       "Regular watering, drip irrigation recommended",
		Tips: []string{
			"Transplant seedlings at 4-6 weeks",
			"Stake plants for support",
			"Prune suckers for better fruit development",
			"Mulch to conserve moisture",
			"Harvest when fruits are fully colored",
		},
		Diseases: []string{"Early blight", "Late blight", "Leaf curl virus"},
		Duration: "60-85 days after transplanting",
	}},
})
