package smcprep

import (
	"errors"
	"reflect"
	"testing"
)

func totalSpan(data [][]int32) int64 {
	var n int64
	for _, row := range data {
		n += int64(row[0])
	}
	return n
}

func TestCompressRepeatedObs(t *testing.T) {
	in := [][]int32{
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 1, 0, 1},
	}
	want := [][]int32{
		{2, 0, 0, 0},
		{1, 1, 0, 1},
	}
	got, err := CompressRepeatedObs(in)
	if err != nil {
		t.Fatalf("CompressRepeatedObs: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CompressRepeatedObs = %v, want %v", got, want)
	}
}

func TestCompressPreservesSpanAndIsIdempotent(t *testing.T) {
	in := [][]int32{
		{5, -1, -1, 0},
		{3, -1, -1, 0},
		{1, 1, 2, 4},
		{1, 1, 2, 4},
		{7, 0, 0, 4},
		{2, -1, -1, 0},
	}
	once, err := CompressRepeatedObs(in)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if totalSpan(once) != totalSpan(in) {
		t.Fatalf("span changed: %d != %d", totalSpan(once), totalSpan(in))
	}
	for i := 1; i < len(once); i++ {
		if sameObs(once[i-1], once[i]) {
			t.Fatalf("adjacent identical rows survive at %d: %v", i, once)
		}
	}
	twice, err := CompressRepeatedObs(once)
	if err != nil {
		t.Fatalf("recompress: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v != %v", once, twice)
	}
}

func TestCompressEmpty(t *testing.T) {
	if _, err := CompressRepeatedObs(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestDecompressPolymorphicSpans(t *testing.T) {
	in := [][]int32{
		{3, 1, 2, 4},   // distinguished derived allele: must expand
		{5, 0, 3, 3},   // all derived: stays compressed
		{4, 0, 0, 3},   // all ancestral: stays compressed
		{2, 0, 1, 3},   // partially derived: must expand
		{6, -1, -1, 0}, // wholly missing: stays compressed
	}
	got := DecompressPolymorphicSpans(in)
	if totalSpan(got) != totalSpan(in) {
		t.Fatalf("span changed: %d != %d", totalSpan(got), totalSpan(in))
	}
	if len(got) != 3+1+1+2+1 {
		t.Fatalf("got %d rows: %v", len(got), got)
	}
	for _, row := range got {
		if row[0] != 1 && !rowAllMissing(row) && !rowNonSeg(row) {
			t.Fatalf("non-compliant compressed row survives: %v", row)
		}
	}
	for _, row := range got[:3] {
		want := []int32{1, 1, 2, 4}
		if !reflect.DeepEqual(row, want) {
			t.Fatalf("expanded row = %v, want %v", row, want)
		}
	}
}

func TestDecompressLeavesCompliantAlone(t *testing.T) {
	in := [][]int32{
		{10, 0, 0, 4},
		{20, -1, -1, 0},
	}
	got := DecompressPolymorphicSpans(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("compliant rows changed: %v", got)
	}
}

func TestRecodeNonsegWarnOnly(t *testing.T) {
	c := &Contig{
		Data: [][]int32{
			{60000, 0, 0, 4},
			{1, 1, 0, 4},
		},
		PID: []string{"pop1"},
		N:   []int{4},
		A:   []int{2},
		FN:  "test",
	}
	orig := cloneRow(c.Data[0])
	RecodeNonseg(c, DefaultRecodeConfig())
	if !reflect.DeepEqual(c.Data[0], orig) {
		t.Fatalf("warn-only config mutated data: %v", c.Data[0])
	}
}

func TestRecodeNonsegMutates(t *testing.T) {
	c := &Contig{
		Data: [][]int32{
			{60000, 0, 0, 4},
			{1, 1, 0, 4},
			{40000, 0, 0, 4},
		},
		PID: []string{"pop1"},
		N:   []int{4},
		A:   []int{2},
		FN:  "test",
	}
	RecodeNonseg(c, RecodeConfig{Cutoff: 50000, WarnOnly: false})
	if want := []int32{60000, -1, 0, 0}; !reflect.DeepEqual(c.Data[0], want) {
		t.Fatalf("run not recoded: %v, want %v", c.Data[0], want)
	}
	if want := []int32{1, 1, 0, 4}; !reflect.DeepEqual(c.Data[1], want) {
		t.Fatalf("variant row touched: %v", c.Data[1])
	}
	if want := []int32{40000, 0, 0, 4}; !reflect.DeepEqual(c.Data[2], want) {
		t.Fatalf("short run touched: %v", c.Data[2])
	}
}
