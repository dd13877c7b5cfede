package lexicon

// Category is one of the six fixed task categories.
type Category string

const (
	CategoryHousehold Category = "household"
	CategoryHealth    Category = "health"
	CategoryWork      Category = "work"
	CategoryFamily    Category = "family"
	CategoryFinance   Category = "finance"
	CategoryPersonal  Category = "personal"
)

// Categories lists every category in tie-break order.
var Categories = []Category{
	CategoryHousehold,
	CategoryHealth,
	CategoryWork,
	CategoryFamily,
	CategoryFinance,
	CategoryPersonal,
}

// Strength weights a category keyword. Strong keywords are specific to one category.
type Strength int

const (
	Weak   Strength = 1
	Strong Strength = 2
)

// Tier is an urgency tier.
type Tier int

const (
	TierNone Tier = iota
	TierHigh
	TierUrgent
)

func (t Tier) String() string {
	switch t {
	case TierUrgent:
		return "urgent"
	case TierHigh:
		return "high"
	default:
		return "none"
	}
}
