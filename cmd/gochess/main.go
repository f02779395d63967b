// Command gochess is a small interactive demo of the board engine: it
// loads a starting position (standard or from config), prints the
// board, and applies moves typed as "e2e4" or "O-O"/"O-O-O" until
// checkmate, stalemate, or EOF.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/chess"
	"github.com/shaobingxie/gochess/cliconfig"
	"github.com/shaobingxie/gochess/square"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a gochess.toml config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gochess: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := cliconfig.Default()
	if *configPath != "" {
		cfg, err = cliconfig.Load(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
		}
	}

	engine := chess.Bitboard
	if cfg.Engine == "mapboard" {
		engine = chess.MapBacked
	}
	logger.Info("starting gochess", zap.String("engine", cfg.Engine))

	var b board.Board
	if cfg.StartFEN != "" {
		var ok bool
		b, ok = chess.Decode(engine, cfg.StartFEN)
		if !ok {
			logger.Fatal("invalid start_fen in config", zap.String("fen", cfg.StartFEN))
		}
	} else {
		b = chess.Init(engine)
	}

	printBoard(b)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if b.Checkmate() {
			fmt.Println("checkmate")
			return
		}
		if len(b.AllMoves()) == 0 {
			fmt.Println("stalemate")
			return
		}

		fmt.Print("move> ")
		if !scanner.Scan() {
			return
		}
		m, ok := parseMove(strings.TrimSpace(scanner.Text()))
		if !ok {
			fmt.Println("unrecognized move")
			continue
		}

		next, ok := b.Play(m)
		if !ok {
			logger.Warn("illegal move rejected", zap.Any("move", m))
			fmt.Println("illegal move")
			continue
		}
		b = next
		printBoard(b)
	}
}

// parseMove reads "e2e4" (Standard) or "O-O"/"O-O-O" (Castle).
func parseMove(text string) (board.Move, bool) {
	switch text {
	case "O-O":
		return board.NewCastle(board.Kingside), true
	case "O-O-O":
		return board.NewCastle(board.Queenside), true
	}
	if len(text) != 4 {
		return board.Move{}, false
	}
	src, ok := square.FromAlgebraic(text[:2])
	if !ok {
		return board.Move{}, false
	}
	dst, ok := square.FromAlgebraic(text[2:])
	if !ok {
		return board.Move{}, false
	}
	return board.NewStandard(src, dst), true
}

var pieceSymbols = [12]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

func printBoard(b board.Board) {
	var grid [8][8]rune
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = '.'
		}
	}
	for _, pa := range b.AllPieces() {
		rank, file := pa.Square.Coord()
		grid[rank][file] = pieceSymbols[pa.Piece.Index()]
	}

	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Printf("%c  ", grid[rank][file])
		}
		fmt.Println()
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
	fmt.Println(b.FEN())
}
