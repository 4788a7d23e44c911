package main

import "shooter/internal/game"

func main() {
	game.RunDesktop()
}
