package division

import (
	"errors"
	"fmt"

	"china-division/core/dataset"
)

// ErrMissingParent means a derived parent code has no row in the same
// revision. For provinces this is a defect in the dataset, not a normal miss.
var ErrMissingParent = errors.New("missing parent division")

// ErrUnbound means the division was not obtained from a Resolver, e.g. the
// zero value or one decoded from JSON, so it has no revision table to derive
// parents from.
var ErrUnbound = errors.New("division not bound to a revision")

// Level is the position of a division in the hierarchy.
type Level int

const (
	LevelUnknown Level = iota
	LevelProvince
	LevelPrefecture
	LevelCounty
)

func (l Level) String() string {
	switch l {
	case LevelProvince:
		return "province"
	case LevelPrefecture:
		return "prefecture"
	case LevelCounty:
		return "county"
	default:
		return "unknown"
	}
}

// Division is one administrative unit at one revision. Values are safe to
// copy and compare with ==. Equality holds only within one store: divisions
// with the same code, name and revision from different stores compare unequal.
type Division struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Revision string `json:"revision"`

	table *dataset.Table
}

func bind(t *dataset.Table, code string) (Division, bool) {
	name, ok := t.Name(code)
	if !ok {
		return Division{}, false
	}
	return Division{Code: code, Name: name, Revision: t.Revision(), table: t}, true
}

// lookup resolves code within the revision d belongs to.
func (d Division) lookup(code string) (Division, bool) {
	if d.table == nil {
		return Division{}, false
	}
	return bind(d.table, code)
}

func (d Division) bound() bool {
	return d.table != nil && len(d.Code) == dataset.CodeLength
}

func provinceCode(code string) string {
	return code[:2] + "0000"
}

func prefectureCode(code string) string {
	return code[:4] + "00"
}

// Province returns the province the division belongs to, which is the
// division itself for provinces. A missing province row returns an error
// wrapping ErrMissingParent; an unbound division returns ErrUnbound.
func (d Division) Province() (Division, error) {
	if !d.bound() {
		return Division{}, fmt.Errorf("%w: %q", ErrUnbound, d.Code)
	}
	code := provinceCode(d.Code)
	p, ok := d.lookup(code)
	if !ok {
		return Division{}, fmt.Errorf("%w: province %s of %s in revision %s", ErrMissingParent, code, d.Code, d.Revision)
	}
	return p, nil
}

// IsProvince reports whether the division is its own province.
func (d Division) IsProvince() bool {
	p, err := d.Province()
	return err == nil && p == d
}

// Prefecture returns the prefecture of a prefecture or county level division.
// It is absent for provinces and when the prefecture row is missing.
func (d Division) Prefecture() (Division, bool) {
	if !d.bound() || d.IsProvince() {
		return Division{}, false
	}
	return d.lookup(prefectureCode(d.Code))
}

// IsPrefecture reports whether the division is its own prefecture.
func (d Division) IsPrefecture() bool {
	p, ok := d.Prefecture()
	return ok && p == d
}

// IsCounty reports whether the division is neither a province nor a
// prefecture.
func (d Division) IsCounty() bool {
	return d.bound() && !d.IsProvince() && !d.IsPrefecture()
}

// County returns the division itself when it is county level.
func (d Division) County() (Division, bool) {
	if !d.IsCounty() {
		return Division{}, false
	}
	return d, true
}

// Level classifies the division from its code and its revision table.
func (d Division) Level() Level {
	switch {
	case d.IsProvince():
		return LevelProvince
	case d.IsPrefecture():
		return LevelPrefecture
	case d.IsCounty():
		return LevelCounty
	default:
		return LevelUnknown
	}
}

// Stack returns the ancestry chain from the province down to the division:
// one entry for a province, two for a prefecture, three for a county.
func (d Division) Stack() ([]Division, error) {
	province, err := d.Province()
	if err != nil {
		return nil, err
	}

	stack := make([]Division, 0, 3)
	stack = append(stack, province)
	if province == d {
		return stack, nil
	}

	prefecture, ok := d.Prefecture()
	if !ok {
		return nil, fmt.Errorf("%w: prefecture %s of %s in revision %s", ErrMissingParent, prefectureCode(d.Code), d.Code, d.Revision)
	}
	stack = append(stack, prefecture)
	if prefecture != d {
		stack = append(stack, d)
	}
	return stack, nil
}

func (d Division) String() string {
	return fmt.Sprintf("%s %s (%s)", d.Code, d.Name, d.Revision)
}
