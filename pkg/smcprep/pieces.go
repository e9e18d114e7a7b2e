package smcprep

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractPieces expands a PSMC-style piece specification into explicit
// span counts. The spec is a +-separated list of tokens, each count*span
// or a bare span: "32*1+16*2" yields 32 ones followed by 16 twos.
func ExtractPieces(spec string) ([]int, error) {
	var pieces []int
	for _, tok := range strings.Split(spec, "+") {
		count, span, err := parsePiece(tok)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			pieces = append(pieces, span)
		}
	}
	return pieces, nil
}

func parsePiece(tok string) (count, span int, err error) {
	parts := strings.Split(tok, "*")
	switch len(parts) {
	case 1:
		span, err = strconv.Atoi(parts[0])
		count = 1
	case 2:
		count, err = strconv.Atoi(parts[0])
		if err == nil {
			span, err = strconv.Atoi(parts[1])
		}
	default:
		return 0, 0, fmt.Errorf("piece %q: %w", tok, ErrFormat)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("piece %q: %w", tok, ErrFormat)
	}
	return count, span, nil
}
