package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner and the game introduction.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm jungle-to-sunset gradient.
	lines := []termenv.Style{
		termenv.String("     _          _                 _ ").Foreground(p.Color("#4ade80")),
		termenv.String("    / \\   _ __ (_)_ __ ___   __ _| |").Foreground(p.Color("#86efac")),
		termenv.String("   / _ \\ | '_ \\| | '_ ` _ \\ / _` | |").Foreground(p.Color("#fde047")),
		termenv.String("  / ___ \\| | | | | | | | | | (_| | |").Foreground(p.Color("#fb923c")),
		termenv.String(" /_/   \\_\\_| |_|_|_| |_| |_|\\__,_|_|").Foreground(p.Color("#f87171")),
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Printf("  guess the animal %s\n", termenv.String("v"+version).Faint())
	fmt.Println()
	fmt.Println(`Think of an animal and the computer will attempt to guess it. The game`)
	fmt.Println(`gets smarter over time as you teach it about more animals! Based on the`)
	fmt.Println(`original BASIC game as it appears in the book Basic Computer Games:`)
	fmt.Println(`TRS-80 Edition, edited by David H. Ahl.`)
	fmt.Println()
	fmt.Println(`If you would like to see the internal tree of questions and animal`)
	fmt.Println(`names, type "tree" instead of "yes" or "no" when the program asks`)
	fmt.Println(`"Are you thinking of an animal?"`)
}
