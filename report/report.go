// Package report counts sold catalog items per vendor.
package report

import (
	"fmt"
	"io"

	"github.com/micromdm/nanostock/catalog"
)

// SoldChecker reports whether a key has been marked sold.
type SoldChecker interface {
	IsSold(code string) bool
}

// Line is the sold count for one vendor.
type Line struct {
	Vendor    string `json:"vendor"`
	SoldCount int    `json:"sold_count"`
}

func (l Line) String() string {
	return fmt.Sprintf("Vendor: %s, Sold Count: %d", l.Vendor, l.SoldCount)
}

// Generate returns one line per vendor, in the order given. Nil vendors
// are skipped.
//
// An item counts as sold when its NAME is marked sold in sold. The
// product code the item is stored under is not consulted. Sold keys are
// normally product codes, so a vendor only reports sales when an item
// name happens to equal a sold code. This matches the established
// report and is kept as is; see TestGenerateMatchesNames.
func Generate(vendors []*catalog.Vendor, sold SoldChecker) []Line {
	lines := make([]Line, 0, len(vendors))
	for _, v := range vendors {
		if v == nil {
			continue
		}
		line := Line{Vendor: v.Name()}
		for _, code := range v.Codes() {
			if item, _ := v.Product(code); sold.IsSold(item.Name) {
				line.SoldCount++
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Write renders lines as the plain text sales report.
func Write(w io.Writer, lines []Line) error {
	if _, err := fmt.Fprintln(w, "Sales Report:"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
