package smcprep

// Observation rows are fixed-width int32 slices laid out as
// [span, (dist, derived, total) per population]. The distinguished-allele
// field is -1 (missing), 0, 1 or 2; a wholly missing span carries
// dist=-1 and total=0 in every population.
const (
	colSpan      = 0
	fieldsPerPop = 3
)

// Contig holds one genomic segment's run-length-compressed observation
// matrix plus identifying metadata. A Contig is exclusively owned by the
// caller for the duration of any transform.
type Contig struct {
	Data [][]int32
	PID  []string // population identifiers, distinguished population first
	N    []int    // undistinguished sample count per population
	A    []int    // distinguished allele multiplicity per population
	FN   string   // source label
}

// NumPop returns the number of populations in the contig.
func (c *Contig) NumPop() int { return len(c.PID) }

// Width returns the expected observation row width, 1 + 3 per population.
func (c *Contig) Width() int { return 1 + fieldsPerPop*len(c.PID) }

// TotalSpan returns the contig's genomic length in base pairs, the sum of
// all row spans.
func (c *Contig) TotalSpan() int64 {
	var n int64
	for _, row := range c.Data {
		n += int64(row[colSpan])
	}
	return n
}

func distCol(pop int) int    { return 1 + fieldsPerPop*pop }
func derivedCol(pop int) int { return 2 + fieldsPerPop*pop }
func totalCol(pop int) int   { return 3 + fieldsPerPop*pop }

func numPops(row []int32) int { return (len(row) - 1) / fieldsPerPop }

// rowAllMissing reports whether a row is wholly missing: dist=-1 and
// total=0 in every population.
func rowAllMissing(row []int32) bool {
	for p := 0; p < numPops(row); p++ {
		if row[distCol(p)] != -1 || row[totalCol(p)] != 0 {
			return false
		}
	}
	return true
}

// rowNonSeg reports whether a row could not contain a polymorphic site:
// dist=0 everywhere and the undistinguished pool uniformly derived or
// uniformly ancestral across all populations.
func rowNonSeg(row []int32) bool {
	np := numPops(row)
	for p := 0; p < np; p++ {
		if row[distCol(p)] != 0 {
			return false
		}
	}
	allDerived, allAncestral := true, true
	for p := 0; p < np; p++ {
		if row[derivedCol(p)] != row[totalCol(p)] {
			allDerived = false
		}
		if row[derivedCol(p)] != 0 {
			allAncestral = false
		}
	}
	return allDerived || allAncestral
}

// rowHomozygousRun reports whether a row shows no diversity at all: dist=0
// and derived=0 in every population.
func rowHomozygousRun(row []int32) bool {
	for p := 0; p < numPops(row); p++ {
		if row[distCol(p)] != 0 || row[derivedCol(p)] != 0 {
			return false
		}
	}
	return true
}

// missingRow returns a width-1 wholly missing marker row of the given
// total width.
func missingRow(width int) []int32 {
	row := make([]int32, width)
	row[colSpan] = 1
	for p := 0; p < numPops(row); p++ {
		row[distCol(p)] = -1
	}
	return row
}

// sameObs reports whether two rows agree in every non-span field.
func sameObs(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 1; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneRow(row []int32) []int32 {
	return append([]int32(nil), row...)
}
