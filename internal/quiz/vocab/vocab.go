// Package vocab translates the quiz's short answer codes into the catalog's
// controlled vocabulary. The tables are fixed at build time; codes without a
// mapping are dropped so that unknown input can never constrain a result set.
package vocab

var categoryByCode = map[string]string{
	"gifts":      "Gifts",
	"home-decor": "Home Decor",
	"kitchen":    "Kitchen",
	"baby-kids":  "Baby",
	"seasonal":   "Seasonal",
}

var machineByCode = map[string]string{
	"accuquilt":  "AccuQuilt",
	"embroidery": "Embroidery",
	"scan-n-cut": "Scan N Cut",
}

// Category returns the catalog category for a quiz code.
func Category(code string) (string, bool) {
	name, ok := categoryByCode[code]
	return name, ok
}

// Machine returns the catalog machine name for a quiz code.
func Machine(code string) (string, bool) {
	name, ok := machineByCode[code]
	return name, ok
}

// Categories maps a list of quiz codes, dropping unmapped ones.
func Categories(codes []string) []string {
	return mapCodes(codes, categoryByCode)
}

// Machines maps a list of quiz codes, dropping unmapped ones.
func Machines(codes []string) []string {
	return mapCodes(codes, machineByCode)
}

func mapCodes(codes []string, table map[string]string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if name, ok := table[c]; ok {
			out = append(out, name)
		}
	}
	return out
}
