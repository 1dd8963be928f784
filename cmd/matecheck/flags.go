package main

import "flag"

var (
	depth      = flag.Int("depth", 3, "engine search depth in plies")
	startFEN   = flag.String("fen", "", "starting position in FEN (default: standard start)")
	engineSide = flag.String("engine", "black", "side played by the engine (white or black)")
	quiet      = flag.Bool("quiet", false, "suppress the material report after engine moves")
	version    = flag.Bool("version", false, "print the program version and exit")
)
