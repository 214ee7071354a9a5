package chess

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

const knightBoard = `----------------
|  |  |  |  |  |
----------------
|  |  |  |bR|  |
----------------
|  |wN|  |  |  |
----------------
|  |  |  |  |  |
----------------
|  |  |wQ|  |  |
----------------`

func TestStandardBoard(t *testing.T) {
	b := StandardBoard()

	if b.Rows() != 8 || b.Cols() != 8 {
		t.Fatalf("StandardBoard() is %dx%d; want 8x8", b.Rows(), b.Cols())
	}

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"black rook a8", Sq(0, 0), B(Rook)},
		{"black queen d8", Sq(0, 3), B(Queen)},
		{"black king e8", Sq(0, 4), B(King)},
		{"black pawn e7", Sq(1, 4), B(Pawn)},
		{"empty e4", Sq(4, 4), Piece{}},
		{"white pawn a2", Sq(6, 0), W(Pawn)},
		{"white knight g1", Sq(7, 6), W(Knight)},
		{"white king e1", Sq(7, 4), W(King)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.At(tt.sq)
			if err != nil {
				t.Fatalf("At(%v) error: %v", tt.sq, err)
			}
			if got != tt.piece {
				t.Errorf("At(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	boards := []string{
		knightBoard,
		Serialize(StandardBoard()),
		"----\n|wK|\n----",
		"-------\n|bK|  |\n-------\n|  |wK|\n-------\n|wP|bP|\n-------",
	}

	for _, text := range boards {
		t.Run(strings.SplitN(text, "\n", 3)[1], func(t *testing.T) {
			b, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := Serialize(b); got != text {
				t.Errorf("Serialize(Parse(text)) mismatch (-want +got):\n%s", cmp.Diff(text, got))
			}
		})
	}
}

func TestParse_TrailingNewline(t *testing.T) {
	b, err := Parse(knightBoard + "\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := Serialize(b); got != knightBoard {
		t.Errorf("Serialize() = %q; want %q", got, knightBoard)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no dividers", "|wK|"},
		{"missing final divider", "----\n|wK|"},
		{"divider with other characters", "----\n|wK|\n--+-"},
		{"divider too short", "---\n|wK|\n---"},
		{"inconsistent row lengths", "-------\n|wK|  |\n-------\n|bK|\n-------"},
		{"unknown piece letter", "----\n|wZ|\n----"},
		{"unknown side letter", "----\n|xK|\n----"},
		{"cell too wide", "-----\n|wKK|\n-----"},
		{"row without borders", "----\nwK  \n----"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse() = %v; want error", b)
			}
			if !errors.Is(err, chesserrors.ErrParse) {
				t.Errorf("Parse() error = %v; want ErrParse", err)
			}
			if b != nil {
				t.Errorf("Parse() returned a partial board on failure")
			}
		})
	}
}

func TestCompact_RoundTrip(t *testing.T) {
	tests := []string{
		StandardCompact,
		"8/8/8/3k4/8/8/4K3/8",
		"5/3r1/1N3/5/2Q2",
		"k11/12/11K",
		"K",
	}

	for _, compact := range tests {
		t.Run(compact, func(t *testing.T) {
			b, err := ParseCompact(compact)
			if err != nil {
				t.Fatalf("ParseCompact() error: %v", err)
			}
			if got := SerializeCompact(b); got != compact {
				t.Errorf("SerializeCompact() = %q; want %q", got, compact)
			}
		})
	}
}

func TestCompact_MatchesText(t *testing.T) {
	fromText, err := Parse(knightBoard)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	fromCompact, err := ParseCompact("5/3r1/1N3/5/2Q2")
	if err != nil {
		t.Fatalf("ParseCompact() error: %v", err)
	}
	if !fromText.Equal(fromCompact) {
		t.Errorf("text and compact boards differ:\n%s\n%s", fromText, fromCompact)
	}
}

func TestParseCompact_Errors(t *testing.T) {
	tests := []string{
		"",
		"8/7",
		"8/8/",
		"4x3",
		"0K",
		"K/",
		"999999999999999999",
		"257",
		"K256",
		strings.Repeat("K", MaxBoardSize+1),
		strings.Repeat("K/", MaxBoardSize) + "K",
	}

	for _, compact := range tests {
		name := compact
		if len(name) > 24 {
			name = name[:24] + "..."
		}
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCompact(compact); !errors.Is(err, chesserrors.ErrParse) {
				t.Errorf("ParseCompact(%q) error = %v; want ErrParse", compact, err)
			}
		})
	}
}

func TestNewBoard_Dimensions(t *testing.T) {
	if _, err := NewBoard(MaxBoardSize, MaxBoardSize); err != nil {
		t.Errorf("NewBoard(%d, %d) error: %v", MaxBoardSize, MaxBoardSize, err)
	}
	for _, dims := range [][2]int{{0, 8}, {8, 0}, {MaxBoardSize + 1, 8}, {8, MaxBoardSize + 1}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, chesserrors.ErrParse) {
			t.Errorf("NewBoard(%d, %d) error = %v; want ErrParse", dims[0], dims[1], err)
		}
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	b := StandardBoard()
	for _, sq := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8)} {
		if _, err := b.At(sq); !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", sq, err)
		}
	}
}

func TestFindPieces(t *testing.T) {
	b := StandardBoard()

	tests := []struct {
		name    string
		filters []PieceFilter
		want    []Square
	}{
		{"white king", []PieceFilter{OfType(King), OfSide(White)}, []Square{Sq(7, 4)}},
		{"all rooks in row-major order", []PieceFilter{OfType(Rook)}, []Square{Sq(0, 0), Sq(0, 7), Sq(7, 0), Sq(7, 7)}},
		{"black knights", []PieceFilter{OfSide(Black), OfType(Knight)}, []Square{Sq(0, 1), Sq(0, 6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.FindPieces(tt.filters...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindPieces() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := len(b.FindPieces()); got != 32 {
		t.Errorf("len(FindPieces()) = %d; want 32", got)
	}
	if got := len(b.FindPieces(OfSide(White))); got != 16 {
		t.Errorf("len(FindPieces(OfSide(White))) = %d; want 16", got)
	}
}

func TestMutate(t *testing.T) {
	b := StandardBoard()

	t.Run("returns new board", func(t *testing.T) {
		next, err := b.Mutate(Clear(Sq(6, 4)), Place(Sq(4, 4), W(Pawn)))
		if err != nil {
			t.Fatalf("Mutate() error: %v", err)
		}
		if got, _ := next.At(Sq(4, 4)); got != W(Pawn) {
			t.Errorf("next.At(e4) = %v; want wP", got)
		}
		if got, _ := next.At(Sq(6, 4)); !got.IsEmpty() {
			t.Errorf("next.At(e2) = %v; want empty", got)
		}
		if !b.Equal(StandardBoard()) {
			t.Error("Mutate() modified the original board")
		}
	})

	t.Run("last mutation wins", func(t *testing.T) {
		next, err := b.Mutate(Place(Sq(4, 4), W(Queen)), Place(Sq(4, 4), B(Knight)))
		if err != nil {
			t.Fatalf("Mutate() error: %v", err)
		}
		if got, _ := next.At(Sq(4, 4)); got != B(Knight) {
			t.Errorf("next.At(e4) = %v; want bN", got)
		}
	})

	t.Run("out of bounds applies nothing", func(t *testing.T) {
		next, err := b.Mutate(Clear(Sq(0, 0)), Place(Sq(8, 0), W(Queen)))
		if !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Fatalf("Mutate() error = %v; want ErrOutOfBounds", err)
		}
		if next != nil {
			t.Error("Mutate() returned a board on failure")
		}
		if got, _ := b.At(Sq(0, 0)); got != B(Rook) {
			t.Errorf("original At(a8) = %v; want bR", got)
		}
	})
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		rows int
		name string
	}{
		{Sq(0, 0), 8, "a8"},
		{Sq(7, 7), 8, "h1"},
		{Sq(4, 4), 8, "e4"},
		{Sq(0, 2), 5, "c5"},
		{Sq(0, 1), 10, "b10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.Name(tt.rows); got != tt.name {
				t.Errorf("%v.Name(%d) = %q; want %q", tt.sq, tt.rows, got, tt.name)
			}
			got, err := ParseSquare(tt.name, tt.rows, 8)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if got != tt.sq {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, got, tt.sq)
			}
		})
	}
}

func TestParseSquare_Errors(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"", chesserrors.ErrParse},
		{"e", chesserrors.ErrParse},
		{"E4", chesserrors.ErrParse},
		{"e0", chesserrors.ErrParse},
		{"ex", chesserrors.ErrParse},
		{"e+4", chesserrors.ErrParse},
		{"e-4", chesserrors.ErrParse},
		{"e04", chesserrors.ErrParse},
		{"e4 ", chesserrors.ErrParse},
		{"i4", chesserrors.ErrOutOfBounds},
		{"a9", chesserrors.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSquare(tt.name, 8, 8); !errors.Is(err, tt.want) {
				t.Errorf("ParseSquare(%q) error = %v; want %v", tt.name, err, tt.want)
			}
		})
	}
}

func TestSideAndPieceStrings(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if got := W(King).String(); got != "wK" {
		t.Errorf("W(King).String() = %q; want %q", got, "wK")
	}
	if got := (Piece{}).String(); got != "  " {
		t.Errorf("Piece{}.String() = %q; want two spaces", got)
	}
	if got := Checkmate.String(); got != "CHECKMATE" {
		t.Errorf("Checkmate.String() = %q; want CHECKMATE", got)
	}
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if got := PieceTypeFromLetter(pt.Letter()); got != pt {
			t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", pt.Letter(), got, pt)
		}
	}
}
