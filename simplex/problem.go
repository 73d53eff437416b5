package simplex

import (
	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

// Problem is a linear program under construction: non-negative variables with
// objective coefficients, plus ≤ / ≥ / = constraint rows. A Problem is not
// safe for concurrent mutation; build it on one goroutine, then Solve.
type Problem struct {
	direction Direction
	obj       []frac.Frac // objective coefficient per variable, as given
	rows      []row
}

// row is one stored constraint in builder form.
type row struct {
	indices []int
	values  []frac.Frac
	rel     Relation
	rhs     frac.Frac
}

// NewProblem returns an empty problem with the given optimization sense.
func NewProblem(direction Direction) *Problem {
	return &Problem{direction: direction}
}

// NumVariables returns the number of variables added so far.
func (p *Problem) NumVariables() int { return len(p.obj) }

// NumConstraints returns the number of constraint rows added so far.
func (p *Problem) NumConstraints() int { return len(p.rows) }

// AddVariable adds a non-negative variable with the given objective
// coefficient and returns its index. The coefficient must be finite.
func (p *Problem) AddVariable(objCoeff frac.Frac) (int, error) {
	if !objCoeff.IsFinite() {
		return 0, ErrNonFiniteInput
	}
	p.obj = append(p.obj, objCoeff)

	return len(p.obj) - 1, nil
}

// AddConstraint adds the row Σ coeffs[j]·x[j] (rel) rhs. Coefficients are
// supplied in builder form; duplicate indices are summed. The rhs and every
// coefficient must be finite, and every index must reference an added
// variable.
func (p *Problem) AddConstraint(coeffs *sparse.Vec, rel Relation, rhs frac.Frac) error {
	if !rhs.IsFinite() {
		return ErrNonFiniteInput
	}

	// Validate, then accumulate through a scattered vector so duplicate
	// indices collapse into one entry.
	var bad error
	acc := sparse.NewScattered(len(p.obj))
	coeffs.Iter(func(i int, val frac.Frac) {
		switch {
		case bad != nil:
		case i < 0 || i >= len(p.obj):
			bad = ErrVarOutOfRange
		case !val.IsFinite():
			bad = ErrNonFiniteInput
		default:
			acc.Add(i, val)
		}
	})
	if bad != nil {
		return bad
	}

	r := row{rel: rel, rhs: rhs}
	acc.Iter(func(i int, val frac.Frac) {
		if !val.IsZero() {
			r.indices = append(r.indices, i)
			r.values = append(r.values, val)
		}
	})
	p.rows = append(p.rows, r)

	return nil
}

// build lowers the problem to computational standard form:
//
//   - internal costs are a minimization (a Maximize objective is negated);
//   - every rhs is normalized non-negative (row signs flip, LE↔GE);
//   - LE rows gain a slack (+1), GE rows a surplus (−1) plus an artificial,
//     EQ rows an artificial;
//   - the initial basis is the identity formed by slacks and artificials.
func (p *Problem) build() *runner {
	m := len(p.rows)
	nStruct := len(p.obj)

	// 1) Normalize right-hand sides and count auxiliary columns.
	rel := make([]Relation, m)
	sign := make([]bool, m) // true: row was negated
	b := make([]frac.Frac, m)
	nAux := 0
	nArt := 0
	for i, r := range p.rows {
		rel[i] = r.rel
		b[i] = r.rhs
		if r.rhs.IsNegative() {
			sign[i] = true
			b[i] = r.rhs.Neg()
			switch r.rel {
			case LE:
				rel[i] = GE
			case GE:
				rel[i] = LE
			}
		}
		if rel[i] != EQ {
			nAux++
		}
		if rel[i] != LE {
			nArt++
		}
	}

	nTotal := nStruct + nAux + nArt
	run := &runner{
		m:            m,
		nStruct:      nStruct,
		nTotal:       nTotal,
		cols:         sparse.NewMat(m),
		cost:         make([]frac.Frac, nTotal),
		b:            b,
		isArtificial: make([]bool, nTotal),
		basis:        make([]int, m),
		inBasis:      make([]bool, nTotal),
		direction:    p.direction,
		objOrig:      p.obj,
	}

	// 2) Internal minimization costs for the structural columns.
	for j, c := range p.obj {
		if p.direction == Maximize {
			run.cost[j] = c.Neg()
		} else {
			run.cost[j] = c
		}
	}

	// 3) Structural columns, with normalized row signs applied.
	colEntries := make([][]entry, nStruct)
	for i, r := range p.rows {
		for k, j := range r.indices {
			v := r.values[k]
			if sign[i] {
				v = v.Neg()
			}
			colEntries[j] = append(colEntries[j], entry{row: i, val: v})
		}
	}
	for j := 0; j < nStruct; j++ {
		for _, e := range colEntries[j] {
			run.cols.Push(e.row, e.val)
		}
		run.cols.SealColumn()
	}

	// 4) Slack / surplus columns; slacks seed the basis of their row.
	next := nStruct
	for i := 0; i < m; i++ {
		switch rel[i] {
		case LE:
			run.cols.Push(i, frac.One())
			run.cols.SealColumn()
			run.basis[i] = next
			run.inBasis[next] = true
			next++
		case GE:
			run.cols.Push(i, frac.One().Neg())
			run.cols.SealColumn()
			next++
		}
	}

	// 5) Artificial columns for GE and EQ rows; they seed those rows' basis.
	for i := 0; i < m; i++ {
		if rel[i] == LE {
			continue
		}
		run.cols.Push(i, frac.One())
		run.cols.SealColumn()
		run.isArtificial[next] = true
		run.basis[i] = next
		run.inBasis[next] = true
		next++
	}

	return run
}

// entry is a (row, value) pair used while re-bucketing rows into columns.
type entry struct {
	row int
	val frac.Frac
}
