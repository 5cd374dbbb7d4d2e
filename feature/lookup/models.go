package lookup

import "china-division/core/division"

// DivisionView is the JSON form of a division.
type DivisionView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Revision string `json:"revision"`
	Level    string `json:"level"`
}

// Report is a resolved division with its ancestry.
type Report struct {
	DivisionView
	Stack []DivisionView `json:"stack"`
}

// RevisionsReport lists the dataset revisions.
type RevisionsReport struct {
	Current   string   `json:"current"`
	Revisions []string `json:"revisions"`
}

func viewOf(d division.Division) DivisionView {
	return DivisionView{
		Code:     d.Code,
		Name:     d.Name,
		Revision: d.Revision,
		Level:    d.Level().String(),
	}
}
