package sparse

// Perm is a bidirectional mapping between original and reordered indices.
// The two arrays are mutually inverse: New2Orig[Orig2New[i]] == i for all i.
// Produced by ordering/factorization, consumed wherever basis columns must be
// mapped back to problem variables.
type Perm struct {
	Orig2New []int
	New2Orig []int
}

// Identity returns the identity permutation on n indices.
func Identity(n int) *Perm {
	p := &Perm{
		Orig2New: make([]int, n),
		New2Orig: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.Orig2New[i] = i
		p.New2Orig[i] = i
	}

	return p
}

// Len returns the number of mapped indices.
func (p *Perm) Len() int { return len(p.Orig2New) }

// FromNew2Orig builds a Perm from a new→orig array, deriving the inverse.
func FromNew2Orig(new2orig []int) *Perm {
	p := &Perm{
		New2Orig: new2orig,
		Orig2New: make([]int, len(new2orig)),
	}
	for n, o := range new2orig {
		p.Orig2New[o] = n
	}

	return p
}
