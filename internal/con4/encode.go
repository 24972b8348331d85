// Package con4 prepares the Connect-4 board dataset: 42 cell states and a
// game outcome per row.
package con4

import (
	"errors"
	"fmt"

	"github.com/tsetlinkit/dataprep/internal/domain"
)

const (
	CellCount    = 42
	FieldCount   = CellCount + 1
	EncodedWidth = 2*CellCount + 1
)

const (
	CellFirst  = "x"
	CellSecond = "o"
	CellBlank  = "b"
)

const (
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
	OutcomeWin  = "win"
)

var ErrFieldCount = errors.New("wrong field count")

type TokenError struct {
	Column int
	Token  string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("unknown token %q in column %v", e.Token, e.Column)
}

func encodeCell(token string) (first, second int, ok bool) {
	switch token {
	case CellFirst:
		return 1, 0, true
	case CellSecond:
		return 0, 1, true
	case CellBlank:
		return 0, 0, true
	default:
		return 0, 0, false
	}
}

func encodeOutcome(token string) (int, bool) {
	switch token {
	case OutcomeLoss:
		return 0, true
	case OutcomeDraw:
		return 1, true
	case OutcomeWin:
		return 2, true
	default:
		return 0, false
	}
}

// EncodeRow maps 42 cell tokens to bit pairs and appends the outcome class.
func EncodeRow(fields []string) (domain.Row, error) {
	if len(fields) != FieldCount {
		return nil, fmt.Errorf("%w: %v, expected %v", ErrFieldCount, len(fields), FieldCount)
	}
	var row = make(domain.Row, 0, EncodedWidth)
	for i, token := range fields[:CellCount] {
		var first, second, ok = encodeCell(token)
		if !ok {
			return nil, &TokenError{Column: i, Token: token}
		}
		row = append(row, first, second)
	}
	var outcome, ok = encodeOutcome(fields[CellCount])
	if !ok {
		return nil, &TokenError{Column: CellCount, Token: fields[CellCount]}
	}
	return append(row, outcome), nil
}
