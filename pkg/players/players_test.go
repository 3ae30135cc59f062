package players

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLink struct {
	answer    any
	err       error
	requested []string
}

func (l *fakeLink) RequestChoice(ctx context.Context, identity string) (any, error) {
	l.requested = append(l.requested, identity)
	return l.answer, l.err
}

func (l *fakeLink) ReportChoice(ctx context.Context, identity string, value any) error {
	return nil
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func play(t *testing.T, b *board.Board, identity string, cols ...int) {
	t.Helper()
	for _, col := range cols {
		_, err := b.ApplyMove(identity, col)
		require.NoError(t, err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "human", want: KindHuman},
		{in: "AI", want: KindAI},
		{in: " better-ai ", want: KindBetterAI},
		{in: "betterai", want: KindBetterAI},
		{in: "robot", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseKind(got.String())))
		})
	}
}

func must(k Kind, err error) Kind {
	if err != nil {
		panic(err)
	}
	return k
}

func TestKind_Next(t *testing.T) {
	assert.Equal(t, KindAI, KindHuman.Next())
	assert.Equal(t, KindBetterAI, KindAI.Next())
	assert.Equal(t, KindHuman, KindBetterAI.Next())
}

func TestNextColor(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		seat  int
		want  string
	}{
		{
			name:  "next in palette",
			specs: []Spec{{Color: "green"}, {Color: "red"}},
			seat:  0,
			want:  "orange",
		},
		{
			name:  "skips a color another seat holds",
			specs: []Spec{{Color: "red"}, {Color: "blue"}},
			seat:  0,
			want:  "green",
		},
		{
			name:  "wraps around",
			specs: []Spec{{Color: "red"}, {Color: "brown"}},
			seat:  1,
			want:  "blue",
		},
		{
			name:  "outside the palette",
			specs: []Spec{{Color: "#ff8800"}, {Color: "red"}},
			seat:  0,
			want:  "blue",
		},
		{
			name:  "case insensitive",
			specs: []Spec{{Color: "Red"}, {Color: "BLUE"}},
			seat:  0,
			want:  "green",
		},
		{
			name: "nothing free",
			specs: []Spec{
				{Color: "red"}, {Color: "blue"}, {Color: "green"}, {Color: "orange"},
				{Color: "magenta"}, {Color: "cyan"}, {Color: "brown"},
			},
			seat: 3,
			want: "orange",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextColor(tt.specs, tt.seat))
		})
	}
}

func TestMakePlayers_Names(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  []string
	}{
		{
			name:  "all human",
			specs: []Spec{{Color: "red"}, {Color: "blue"}},
			want:  []string{"Red player", "Blue player"},
		},
		{
			name:  "one computer",
			specs: []Spec{{Color: "red"}, {Color: "blue", Kind: KindAI}},
			want:  []string{"Human player", "AI player"},
		},
		{
			name:  "several computers",
			specs: []Spec{{Color: "red"}, {Color: "blue", Kind: KindAI}, {Color: "green", Kind: KindBetterAI}},
			want:  []string{"Red human player", "Blue AI player", "Green AI player"},
		},
		{
			name:  "explicit name wins",
			specs: []Spec{{Color: "red", Name: "Ada"}, {Color: "blue", Kind: KindAI}},
			want:  []string{"Ada", "AI player"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakePlayers(tt.specs, seeded())
			require.NoError(t, err)
			var names []string
			for i, p := range got {
				names = append(names, p.Name())
				assert.Equal(t, tt.specs[i].Color, p.Color())
				assert.Equal(t, tt.specs[i].Kind, p.Kind())
				assert.Equal(t, tt.specs[i].Kind == KindHuman, p.Human())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMakePlayers_Errors(t *testing.T) {
	_, err := MakePlayers([]Spec{{Color: ""}}, seeded())
	assert.ErrorIs(t, err, ErrEmptyColor)

	_, err = MakePlayers([]Spec{{Color: "red", Kind: Kind(9)}}, seeded())
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestHumanPlayer_ChooseMove(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	p := NewHumanPlayer("red", "")

	link := &fakeLink{answer: 4}
	col, err := p.ChooseMove(context.Background(), b, link)
	require.NoError(t, err)
	assert.Equal(t, 4, col)
	assert.Equal(t, []string{"red"}, link.requested)

	_, err = p.ChooseMove(context.Background(), b, &fakeLink{answer: "four"})
	assert.ErrorIs(t, err, ErrBadChoice)

	linkErr := errors.New("torn down")
	_, err = p.ChooseMove(context.Background(), b, &fakeLink{err: linkErr})
	assert.ErrorIs(t, err, linkErr)
}

func TestAIPlayer_TakesWin(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	play(t, b, "blue", 1, 2, 3)
	play(t, b, "red", 1, 2)

	p := NewAIPlayer("blue", "", seeded())
	for i := 0; i < 20; i++ {
		col, err := p.ChooseMove(context.Background(), b, nil)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 4}, col)
	}
	assert.Equal(t, 5, b.MoveCount(), "evaluation leaves the board untouched")
}

func TestAIPlayer_OnlyLegalMoves(t *testing.T) {
	b, err := board.New(2, 3, 2)
	require.NoError(t, err)
	play(t, b, "red", 0)
	play(t, b, "blue", 0, 2)
	play(t, b, "red", 2)

	moves := EvaluateMoves(b, "blue")
	assert.Len(t, moves, 1)
	assert.Contains(t, moves, 1)

	p := NewAIPlayer("blue", "", seeded())
	col, err := p.ChooseMove(context.Background(), b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, col)
}

func TestAIPlayer_FullBoard(t *testing.T) {
	b, err := board.New(1, 1, 1)
	require.NoError(t, err)
	play(t, b, "red", 0)

	_, err = NewAIPlayer("blue", "", seeded()).ChooseMove(context.Background(), b, nil)
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestBestMoves(t *testing.T) {
	assert.Equal(t, []int{1, 3}, BestMoves(map[int]int{0: 1, 1: 3, 2: 2, 3: 3}))
	assert.Empty(t, BestMoves(map[int]int{}))
}

func TestBetterAIPlayer_Blocks(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	play(t, b, "red", 0, 0, 0)
	play(t, b, "blue", 6)

	ai := NewAIPlayer("blue", "", seeded())
	better := NewBetterAIPlayer("blue", "", seeded())
	assert.Equal(t, KindBetterAI, better.Kind())

	for i := 0; i < 20; i++ {
		col, err := better.ChooseMove(context.Background(), b, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, col)
	}

	// The plain AI only chases its own runs, so it never sees the threat.
	col, err := ai.ChooseMove(context.Background(), b, nil)
	require.NoError(t, err)
	assert.Contains(t, []int{5, 6}, col)
}

func TestBetterAIPlayer_PrefersOwnWin(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	play(t, b, "red", 0, 0, 0)
	play(t, b, "blue", 6, 6, 6)

	col, err := NewBetterAIPlayer("blue", "", seeded()).ChooseMove(context.Background(), b, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, col)
}

func TestAIPlayer_HonorsContext(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewAIPlayer("red", "", seeded()).ChooseMove(ctx, b, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
