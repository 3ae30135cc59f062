package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Nobody marks an empty cell.
	Nobody = ""
	// MaxSize is the largest number of rows or columns a board may have.
	MaxSize = 20
)

var (
	// ErrInvalidDimensions is returned by New for out of range sizes.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// IllegalMoveError is returned by ApplyMove for a column that cannot take a piece.
type IllegalMoveError struct {
	Identity string
	Column   int
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by %s: column %d", e.Identity, e.Column)
}

// Position is a cell on the board. Row 0 is the bottom row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Run is a straight line of same-colored pieces, inclusive at both ends.
type Run struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Len returns the number of cells the run covers.
func (r Run) Len() int {
	return max(abs(r.To.Row-r.From.Row), abs(r.To.Col-r.From.Col)) + 1
}

// Board is a Connect-N grid. It is not safe for concurrent use; the turn
// protocol guarantees a single writer at a time.
type Board struct {
	rows   int
	cols   int
	streak int
	cells  [][]string
	moves  []Position
}

// New creates an empty board. rows and cols must be in 1..MaxSize and streak in
// 1..min(rows, cols).
func New(rows, cols, streak int) (*Board, error) {
	if rows < 1 || rows > MaxSize || cols < 1 || cols > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if streak < 1 || streak > min(rows, cols) {
		return nil, fmt.Errorf("%w: streak %d on %dx%d", ErrInvalidDimensions, streak, rows, cols)
	}
	b := &Board{
		rows:   rows,
		cols:   cols,
		streak: streak,
	}
	b.Clear()
	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) Streak() int {
	return b.streak
}

// Clear empties the board and forgets the move history.
func (b *Board) Clear() {
	b.cells = make([][]string, b.rows)
	for r := range b.cells {
		b.cells[r] = make([]string, b.cols)
	}
	b.moves = nil
}

// Color returns the identity occupying a cell, or Nobody.
func (b *Board) Color(row, col int) string {
	if !b.inRange(row, col) {
		return Nobody
	}
	return b.cells[row][col]
}

func (b *Board) MoveCount() int {
	return len(b.moves)
}

// LastMove returns the most recently filled cell.
func (b *Board) LastMove() (Position, bool) {
	if len(b.moves) == 0 {
		return Position{}, false
	}
	return b.moves[len(b.moves)-1], true
}

// NextRow returns the row a piece dropped in col would land on, or -1 if the
// column is full or does not exist.
func (b *Board) NextRow(col int) int {
	if col < 0 || col >= b.cols {
		return -1
	}
	for r := 0; r < b.rows; r++ {
		if b.cells[r][col] == Nobody {
			return r
		}
	}
	return -1
}

func (b *Board) IsFullColumn(col int) bool {
	return b.NextRow(col) == -1
}

func (b *Board) IsLegalMove(col int) bool {
	return b.NextRow(col) != -1
}

// LegalMoves returns the columns that can still take a piece, in order.
func (b *Board) LegalMoves() []int {
	var cols []int
	for c := 0; c < b.cols; c++ {
		if b.IsLegalMove(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[b.rows-1][c] == Nobody {
			return false
		}
	}
	return true
}

// ApplyMove drops a piece for identity into col and returns the row it landed on.
func (b *Board) ApplyMove(identity string, col int) (int, error) {
	row := b.NextRow(col)
	if row == -1 || identity == Nobody {
		return -1, &IllegalMoveError{Identity: identity, Column: col}
	}
	b.cells[row][col] = identity
	b.moves = append(b.moves, Position{Row: row, Col: col})
	return row, nil
}

// UndoLastMove removes the most recent piece. It reports false if the board
// was empty.
func (b *Board) UndoLastMove() bool {
	last, ok := b.LastMove()
	if !ok {
		return false
	}
	b.cells[last.Row][last.Col] = Nobody
	b.moves = b.moves[:len(b.moves)-1]
	return true
}

// Winner returns the identity that completed a streak with the last move.
func (b *Board) Winner() (string, bool) {
	run, ok := b.WinningRun()
	if !ok {
		return Nobody, false
	}
	return b.cells[run.From.Row][run.From.Col], true
}

// WinningRun returns the streak completed by the last move, if any.
func (b *Board) WinningRun() (Run, bool) {
	last, ok := b.LastMove()
	if !ok {
		return Run{}, false
	}
	return b.FindWins(last.Row, last.Col)
}

// FindWins returns the first run through (row, col) that is at least a streak
// long, checking vertical, across, SW-NE and NW-SE in that order.
func (b *Board) FindWins(row, col int) (Run, bool) {
	if b.Color(row, col) == Nobody {
		return Run{}, false
	}
	for _, dir := range directions {
		run := b.runThrough(row, col, dir)
		if run.Len() >= b.streak {
			return run, true
		}
	}
	return Run{}, false
}

// LongestRun returns the length of the longest run through (row, col) in any
// direction. An empty cell has no run.
func (b *Board) LongestRun(row, col int) int {
	if b.Color(row, col) == Nobody {
		return 0
	}
	longest := 0
	for _, dir := range directions {
		longest = max(longest, b.runThrough(row, col, dir).Len())
	}
	return longest
}

// direction is a unit step; a run extends both ways along it.
type direction struct {
	dr, dc int
}

var directions = []direction{
	{dr: 1, dc: 0},  // vertical
	{dr: 0, dc: 1},  // across
	{dr: 1, dc: 1},  // SW-NE
	{dr: -1, dc: 1}, // NW-SE
}

func (b *Board) runThrough(row, col int, dir direction) Run {
	color := b.cells[row][col]
	r1, c1 := row, col
	for b.inRange(r1-dir.dr, c1-dir.dc) && b.cells[r1-dir.dr][c1-dir.dc] == color {
		r1 -= dir.dr
		c1 -= dir.dc
	}
	r2, c2 := row, col
	for b.inRange(r2+dir.dr, c2+dir.dc) && b.cells[r2+dir.dr][c2+dir.dc] == color {
		r2 += dir.dr
		c2 += dir.dc
	}
	return Run{From: Position{Row: r1, Col: c1}, To: Position{Row: r2, Col: c2}}
}

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// String renders the board top row first, one line per row, cells padded to the
// longest identity on the board. Empty cells print as ".".
func (b *Board) String() string {
	pad := 1
	for _, row := range b.cells {
		for _, cell := range row {
			pad = max(pad, len(cell))
		}
	}
	var sb strings.Builder
	for r := b.rows - 1; r >= 0; r-- {
		sb.WriteString("|")
		for _, cell := range b.cells[r] {
			if cell == Nobody {
				cell = "."
			}
			fmt.Fprintf(&sb, "%-*s|", pad, cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
