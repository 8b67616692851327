package inventory

import "fmt"

// Discipline is the insertion and removal order used by a category's container.
type Discipline int

const (
	// unset is the zero value so that a category missing from the
	// policy table is detectable.
	unset Discipline = iota

	// LIFO containers remove the most recently added item.
	LIFO

	// FIFO containers remove the earliest added item.
	FIFO

	// Unordered containers remove the first item equal to the one given.
	Unordered
)

func (d Discipline) String() string {
	switch d {
	case LIFO:
		return "LIFO"
	case FIFO:
		return "FIFO"
	case Unordered:
		return "UNORDERED"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// policy maps every category to its discipline.
// Adding a category to the enumeration grows numCategories and the
// table test in policy_test.go fails until the entry is added here.
var policy = [numCategories]Discipline{
	Beverages:         LIFO,
	BreadBakery:       LIFO,
	CannedJarredGoods: LIFO,
	DairyProducts:     LIFO,

	DryBakingGood:  FIFO,
	FrozenProducts: FIFO,
	Meat:           FIFO,

	FarmProduce:  Unordered,
	HomeCleaners: Unordered,
	PaperGoods:   Unordered,
	HomeCare:     Unordered,
}

// DisciplineOf returns the storage discipline for c.
func DisciplineOf(c Category) (Discipline, error) {
	if !c.Valid() {
		return unset, fmt.Errorf("%w: %s", ErrInvalidCategory, c)
	}
	d := policy[c]
	if d == unset {
		panic("inventory: no discipline for category " + c.String())
	}
	return d, nil
}
