package domain

import (
	"strconv"
	"strings"
)

// Ingredient is a single line of a recipe's ingredient list.
// Quantity and Unit are optional: "salt" is as valid as "2 cups flour".
type Ingredient struct {
	Name     string
	Quantity *float64
	Unit     *string
}

// HasQuantity returns true if the line carries a parseable numeric quantity.
func (i Ingredient) HasQuantity() bool {
	return i.Quantity != nil
}

// ParseIngredientLines splits newline-separated free text into ingredient
// lines, parsing an optional leading "<quantity> <unit>" prefix from each.
// Blank lines are skipped.
//
//	"2 cups flour\n1 egg\nsalt" →
//	  {flour 2 cups}, {egg 1}, {salt}
func ParseIngredientLines(text string) []Ingredient {
	var out []Ingredient
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, ParseIngredientLine(line))
	}
	return out
}

// ParseIngredientLine parses a single free-text ingredient line.
//
// Recognized shapes:
//
//	"<qty> <unit> <name...>"  → quantity, unit, name
//	"<qty> <name>"            → quantity, name (no unit)
//	"<name...>"               → name only, quantity unknown
//
// Quantities accept decimals ("2.5") and simple fractions ("1/2").
// Anything that does not start with a number is kept verbatim as the name.
func ParseIngredientLine(line string) Ingredient {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Ingredient{Name: line}
	}

	qty, ok := parseQuantity(fields[0])
	if !ok {
		return Ingredient{Name: strings.Join(fields, " ")}
	}

	if len(fields) == 2 {
		return Ingredient{Name: fields[1], Quantity: &qty}
	}

	// A numeric second token means a compound amount like "2 1/2 cups flour";
	// fold it into the quantity and shift unit/name one token right.
	rest := fields[1:]
	if extra, more := parseQuantity(rest[0]); more {
		qty += extra
		rest = rest[1:]
	}

	if len(rest) == 1 {
		return Ingredient{Name: rest[0], Quantity: &qty}
	}

	unit := rest[0]
	return Ingredient{
		Name:     strings.Join(rest[1:], " "),
		Quantity: &qty,
		Unit:     &unit,
	}
}

// parseQuantity parses a decimal ("2", "2.5") or simple fraction ("1/2").
func parseQuantity(s string) (float64, bool) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
