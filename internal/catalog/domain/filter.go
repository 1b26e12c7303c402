package domain

// AllCategories matches every category.
const AllCategories = "All"

type PriceBracket string

const (
	AllPrices     PriceBracket = "All"
	Under1000     PriceBracket = "Under 1000"
	Mid1000To3000 PriceBracket = "1000 to 3000"
	Over3000      PriceBracket = "Over 3000"
)

// Matches reports whether price falls inside the bracket. The middle
// bracket is inclusive at both ends, so a shoe priced exactly 1000 or
// 3000 belongs to it and to no neighbour.
func (b PriceBracket) Matches(price float64) bool {
	switch b {
	case AllPrices:
		return true
	case Under1000:
		return price < 1000
	case Mid1000To3000:
		return price >= 1000 && price <= 3000
	case Over3000:
		return price > 3000
	default:
		return false
	}
}

type Filter struct {
	Category string
	Price    PriceBracket
}

func (f Filter) matches(s Shoe) bool {
	if f.Category != "" && f.Category != AllCategories && s.Category != f.Category {
		return false
	}
	if f.Price != "" && !f.Price.Matches(s.Price) {
		return false
	}
	return true
}

// Apply returns the shoes matching the filter, preserving order.
func (f Filter) Apply(shoes []Shoe) []Shoe {
	out := make([]Shoe, 0, len(shoes))
	for _, s := range shoes {
		if f.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Featured returns the featured subset of shoes, preserving order.
func Featured(shoes []Shoe) []Shoe {
	out := make([]Shoe, 0, len(shoes))
	for _, s := range shoes {
		if s.IsFeatured {
			out = append(out, s)
		}
	}
	return out
}
