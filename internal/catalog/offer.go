package catalog

// OfferKind identifies a shop category.
type OfferKind string

const (
	KindDetector OfferKind = "detectors"
	KindBag      OfferKind = "bags"
	KindArea     OfferKind = "areas"
)

// Offer is anything the shop sells. The set of implementations is closed:
// Detector, Bag and Area. Callers type-switch on the concrete value.
type Offer interface {
	Kind() OfferKind
	Key() string
	Title() string
	Price() int64
	offer()
}

// Detector is a metal detector tier.
type Detector struct {
	Level       int     `yaml:"level" validate:"min=1"`
	ID          string  `yaml:"id" validate:"required"`
	Name        string  `yaml:"name" validate:"required"`
	Cost        int64   `yaml:"cost" validate:"gte=0"`
	Depth       int     `yaml:"depth" validate:"min=1"`
	RarityBonus float64 `yaml:"rarity_bonus" validate:"gte=0"`
	Description string  `yaml:"description"`
}

func (d Detector) Kind() OfferKind { return KindDetector }
func (d Detector) Key() string     { return d.ID }
func (d Detector) Title() string   { return d.Name }
func (d Detector) Price() int64    { return d.Cost }
func (Detector) offer()            {}

// Bag is an inventory capacity tier.
type Bag struct {
	Level    int    `yaml:"level" validate:"min=1"`
	ID       string `yaml:"id" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Capacity int    `yaml:"capacity" validate:"min=1"`
	Cost     int64  `yaml:"cost" validate:"gte=0"`
}

func (b Bag) Kind() OfferKind { return KindBag }
func (b Bag) Key() string     { return b.ID }
func (b Bag) Title() string   { return b.Name }
func (b Bag) Price() int64    { return b.Cost }
func (Bag) offer()            {}

// Area is a dig site with an explicit allow-list of metals.
type Area struct {
	ID     string   `yaml:"id" validate:"required"`
	Name   string   `yaml:"name" validate:"required"`
	Cost   int64    `yaml:"cost" validate:"gte=0"`
	Theme  string   `yaml:"theme"`
	Ground string   `yaml:"ground" validate:"omitempty,hexcolor"`
	Metals []string `yaml:"metals" validate:"required,min=1,dive,required"`
}

func (a Area) Kind() OfferKind { return KindArea }
func (a Area) Key() string     { return a.ID }
func (a Area) Title() string   { return a.Name }
func (a Area) Price() int64    { return a.Cost }
func (Area) offer()            {}

// Permits reports whether metalID is on the area's allow-list.
func (a Area) Permits(metalID string) bool {
	for _, id := range a.Metals {
		if id == metalID {
			return true
		}
	}
	return false
}

// Offers returns the shop listing for a category in tier order.
func (c *Catalog) Offers(kind OfferKind) []Offer {
	var out []Offer
	switch kind {
	case KindDetector:
		for _, d := range c.Detectors {
			out = append(out, d)
		}
	case KindBag:
		for _, b := range c.Bags {
			out = append(out, b)
		}
	case KindArea:
		for _, a := range c.Areas {
			out = append(out, a)
		}
	}
	return out
}

// OfferKinds lists the shop categories in display order.
func OfferKinds() []OfferKind {
	return []OfferKind{KindDetector, KindBag, KindArea}
}
