package domain

type CategoryCode string

const (
	CategoryEconomy   CategoryCode = "ECONOMY"
	CategoryMid       CategoryCode = "MID"
	CategoryExecutive CategoryCode = "EXECUTIVE"
	CategoryPremium   CategoryCode = "PREMIUM"
	CategorySUV       CategoryCode = "SUV"
)

func (c CategoryCode) Valid() bool {
	switch c {
	case CategoryEconomy, CategoryMid, CategoryExecutive, CategoryPremium, CategorySUV:
		return true
	}
	return false
}

// Category is a pricing tier with a coarse fleet capacity. Capacity is the
// number of units the tier can hand out at the same time; actual availability
// for a period is capacity minus the live occupancy scan (see the pricing
// engine), not this counter alone.
type Category struct {
	Code           CategoryCode `json:"code"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	DailyRateCents int64        `json:"daily_rate_cents"`
	ExampleModels  []string     `json:"example_models"`
	Capacity       int          `json:"capacity"`
}
