// Package soil holds the static soil-type reference pages.
package soil

import (
	"strings"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
)

var types = []model.SoilType{
	{
		Slug:    "clay",
		Name:    "Clay Soil",
		Summary: "Fine particles packed tightly together. Holds water and nutrients well but drains slowly.",
		Traits:  []string{"High water retention", "Rich in nutrients", "Sticky when wet, hard when dry"},
		Crops:   []string{"Rice", "Wheat", "Cabbage", "Broccoli"},
		CareTips: []string{
			"Add compost or farmyard manure to improve structure",
			"Avoid working the soil when it is wet",
			"Use raised beds for crops that dislike waterlogging",
		},
	},
	{
		Slug:    "sandy",
		Name:    "Sandy Soil",
		Summary: "Large, loose particles. Warms quickly in spring and drains fast, losing water and nutrients.",
		Traits:  []string{"Fast drainage", "Low nutrient holding", "Easy to cultivate"},
		Crops:   []string{"Groundnut", "Watermelon", "Carrot", "Potato"},
		CareTips: []string{
			"Mulch to reduce evaporation",
			"Apply fertiliser in small, frequent doses",
			"Drip irrigation saves water",
		},
	},
	{
		Slug:    "loamy",
		Name:    "Loamy Soil",
		Summary: "A balanced mix of sand, silt and clay. The most productive soil for most crops.",
		Traits:  []string{"Good drainage with moisture retention", "Fertile", "Crumbly texture"},
		Crops:   []string{"Wheat", "Sugarcane", "Cotton", "Vegetables"},
		CareTips: []string{
			"Rotate crops to keep fertility",
			"Add organic matter every season",
		},
	},
	{
		Slug:    "silty",
		Name:    "Silty Soil",
		Summary: "Smooth, fine particles that hold moisture. Fertile but prone to compaction and erosion.",
		Traits:  []string{"Retains moisture", "Fertile", "Compacts easily"},
		Crops:   []string{"Rice", "Vegetables", "Fruit trees"},
		CareTips: []string{
			"Avoid heavy machinery on wet fields",
			"Keep the surface covered to prevent erosion",
		},
	},
	{
		Slug:    "peaty",
		Name:    "Peaty Soil",
		Summary: "Dark, acidic soil with a high organic content. Holds a lot of water.",
		Traits:  []string{"High organic matter", "Acidic", "Retains water"},
		Crops:   []string{"Potato", "Root vegetables", "Tea"},
		CareTips: []string{
			"Add lime to reduce acidity",
			"Improve drainage with channels",
		},
	},
	{
		Slug:    "chalky",
		Name:    "Chalky Soil",
		Summary: "Alkaline, stony soil over chalk or limestone. Free draining and often shallow.",
		Traits:  []string{"Alkaline", "Free draining", "Can lack iron and manganese"},
		Crops:   []string{"Barley", "Spinach", "Beetroot"},
		CareTips: []string{
			"Add organic matter to hold moisture",
			"Watch for yellowing leaves from iron deficiency",
		},
	},
	{
		Slug:    "red",
		Name:    "Red Soil",
		Summary: "Formed from weathered crystalline rock; the iron oxide gives the colour. Common across peninsular India.",
		Traits:  []string{"Porous", "Low in nitrogen and phosphorus", "Light texture"},
		Crops:   []string{"Groundnut", "Millets", "Pulses", "Cotton"},
		CareTips: []string{
			"Apply nitrogen and phosphorus fertilisers",
			"Irrigate regularly during dry spells",
		},
	},
}

// All returns every soil type in display order.
func All() []model.SoilType {
	out := make([]model.SoilType, len(types))
	copy(out, types)
	return out
}

// Lookup finds a soil type by its URL slug.
func Lookup(slug string) (model.SoilType, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, t := range types {
		if t.Slug == slug {
			return t, true
		}
	}
	return model.SoilType{}, false
}
