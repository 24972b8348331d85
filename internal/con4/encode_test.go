package con4

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func boardRow(cell string, outcome string) []string {
	var fields = make([]string, 0, FieldCount)
	for i := 0; i < CellCount; i++ {
		fields = append(fields, cell)
	}
	return append(fields, outcome)
}

func mixedRow(outcome string) []string {
	var tokens = []string{CellFirst, CellSecond, CellBlank}
	var fields = make([]string, 0, FieldCount)
	for i := 0; i < CellCount; i++ {
		fields = append(fields, tokens[i%3])
	}
	return append(fields, outcome)
}

func TestEncodeRow(t *testing.T) {
	tests := []struct {
		name        string
		fields      []string
		wantPair    [2]int
		wantOutcome int
	}{
		{"all x win", boardRow(CellFirst, OutcomeWin), [2]int{1, 0}, 2},
		{"all o draw", boardRow(CellSecond, OutcomeDraw), [2]int{0, 1}, 1},
		{"all b loss", boardRow(CellBlank, OutcomeLoss), [2]int{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := EncodeRow(tt.fields)
			require.NoError(t, err)
			require.Len(t, row, EncodedWidth)
			for i := 0; i < CellCount; i++ {
				require.Equal(t, tt.wantPair[0], row[2*i])
				require.Equal(t, tt.wantPair[1], row[2*i+1])
			}
			require.Equal(t, tt.wantOutcome, row.Label())
		})
	}
}

func TestEncodeRowOrder(t *testing.T) {
	row, err := EncodeRow(mixedRow(OutcomeWin))
	require.NoError(t, err)
	require.Len(t, row, 85)
	require.Equal(t, []int{1, 0, 0, 1, 0, 0, 1, 0}, []int(row[:8]))
	for _, v := range row {
		require.Contains(t, []int{0, 1, 2}, v)
	}
	require.Equal(t, 2, row[84])
}

func TestEncodeRowPure(t *testing.T) {
	var fields = mixedRow(OutcomeDraw)
	first, err := EncodeRow(fields)
	require.NoError(t, err)
	_, err = EncodeRow(boardRow(CellFirst, OutcomeLoss))
	require.NoError(t, err)
	second, err := EncodeRow(fields)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncodeRowErrors(t *testing.T) {
	_, err := EncodeRow(boardRow(CellBlank, OutcomeWin)[:FieldCount-1])
	require.ErrorIs(t, err, ErrFieldCount)

	_, err = EncodeRow(append(boardRow(CellBlank, OutcomeWin), OutcomeWin))
	require.ErrorIs(t, err, ErrFieldCount)

	var fields = boardRow(CellBlank, OutcomeWin)
	fields[7] = "X"
	_, err = EncodeRow(fields)
	var tokenErr *TokenError
	require.True(t, errors.As(err, &tokenErr))
	require.Equal(t, 7, tokenErr.Column)
	require.Equal(t, "X", tokenErr.Token)

	// outcome token in a cell column
	fields = boardRow(CellBlank, OutcomeWin)
	fields[0] = OutcomeWin
	_, err = EncodeRow(fields)
	require.ErrorAs(t, err, &tokenErr)
	require.Equal(t, 0, tokenErr.Column)

	// cell token in the outcome column
	_, err = EncodeRow(boardRow(CellBlank, CellFirst))
	require.ErrorAs(t, err, &tokenErr)
	require.Equal(t, CellCount, tokenErr.Column)
}
