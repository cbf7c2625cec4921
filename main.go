// ChessMate - play chess against a casual opponent in the terminal
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/cli"
)

var (
	colorFlag = flag.String("color", "", "color to play: white or black (default: last used)")
	delayFlag = flag.Duration("delay", 0, "opponent thinking delay (default: last used)")
)

func main() {
	flag.Parse()

	app := cli.NewApp(os.Stdin, os.Stdout)

	switch *colorFlag {
	case "":
	case "white":
		app.SetPlayerColor(board.White)
	case "black":
		app.SetPlayerColor(board.Black)
	default:
		log.Fatalf("invalid -color %q: want white or black", *colorFlag)
	}

	if *delayFlag > 0 {
		app.SetReplyDelay(*delayFlag)
	}

	app.Run()
}
