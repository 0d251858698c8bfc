package testing

import (
	"github.com/go-sif/plyr/frame"
)

const penguins = `{"species": "Adelie", "island": "Torgersen", "bill_length_mm": 39.1, "body_mass_g": 3750, "sex": "male", "year": 2007}
{"species": "Adelie", "island": "Torgersen", "bill_length_mm": 39.5, "body_mass_g": 3800, "sex": "female", "year": 2007}
{"species": "Adelie", "island": "Dream", "bill_length_mm": null, "body_mass_g": 3250, "sex": null, "year": 2008}
{"species": "Gentoo", "island": "Biscoe", "bill_length_mm": 46.1, "body_mass_g": 4500, "sex": "female", "year": 2007}
{"species": "Gentoo", "island": "Biscoe", "bill_length_mm": 50.0, "body_mass_g": 5700, "sex": "male", "year": 2008}
{"species": "Chinstrap", "island": "Dream", "bill_length_mm": 46.5, "body_mass_g": 3500, "sex": "female", "year": 2007}
{"species": "Chinstrap", "island": "Dream", "bill_length_mm": 50.0, "body_mass_g": 3900, "sex": "male", "year": 2009}
{"species": "Gentoo", "island": "Biscoe", "bill_length_mm": 48.7, "body_mass_g": 4450, "sex": "female", "year": 2009}
`

// Penguins returns a small sample of the Palmer penguins data set: 8 rows of species, island,
// bill_length_mm, body_mass_g, sex and year, with one missing bill length and one missing sex
func Penguins() *frame.Table {
	return MustReadJSONLines(penguins)
}
