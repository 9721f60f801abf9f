package importer

// Reconciliation is the result of validating an upload.
//
// Rejected rows are only represented by their issues.
type Reconciliation struct {
	Accepted []Row     `json:"accepted"`
	Rejected [][]Issue `json:"rejected"`
}

type Counts struct {
	Accepted int `json:"accepted" example:"12"`
	Rejected int `json:"rejected" example:"1"`
}

// Reconcile classifies all rows, keeping their order within accepted and rejected.
//
// It never writes anything, see Submit for that.
func Reconcile(rows []RawRow) Reconciliation {
	r := Reconciliation{
		Accepted: make([]Row, 0, len(rows)),
		Rejected: make([][]Issue, 0),
	}

	for _, raw := range rows {
		switch result := Classify(raw).(type) {
		case ValidRow:
			r.Accepted = append(r.Accepted, result.Row)
		case InvalidRow:
			r.Rejected = append(r.Rejected, result.Issues)
		}
	}

	return r
}

func (r Reconciliation) Counts() Counts {
	return Counts{
		Accepted: len(r.Accepted),
		Rejected: len(r.Rejected),
	}
}
