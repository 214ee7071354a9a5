package engine

import (
	"fmt"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchPositions = map[string]string{
	"Initial":   chess.StandardCompact,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	"WideBoard": "rnbqkkbnr/ppppppppp/9/9/9/9/PPPPPPPPP/RNBQKKBNR",
}

func mustCompact(b *testing.B, compact string) *chess.Board {
	b.Helper()
	board, err := chess.ParseCompact(compact)
	if err != nil {
		b.Fatalf("ParseCompact(%q): %v", compact, err)
	}
	return board
}

func BenchmarkAllFeasibleMoves(b *testing.B) {
	for name, compact := range benchPositions {
		b.Run(name, func(b *testing.B) {
			board := mustCompact(b, compact)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllFeasibleMoves(nil, chess.White, board)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for name, compact := range benchPositions {
		for _, workers := range []int{1, 4} {
			board := mustCompact(b, compact)
			b.Run(fmt.Sprintf("%s/workers=%d", name, workers), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					AllLegalMoves(nil, chess.White, board, workers)
				}
			})
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	board := mustCompact(b, "R5k1/5ppp/8/8/8/8/8/6K1")
	for i := 0; i < b.N; i++ {
		Classify(nil, chess.Black, board)
	}
}

// BenchmarkReferenceLegalMoves measures the bitboard generator on the same
// positions for comparison.
func BenchmarkReferenceLegalMoves(b *testing.B) {
	for name, compact := range benchPositions {
		if name == "WideBoard" {
			continue
		}
		b.Run(name, func(b *testing.B) {
			board := dragontoothmg.ParseFen(compact + " w - - 0 1")
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.GenerateLegalMoves()
			}
		})
	}
}
