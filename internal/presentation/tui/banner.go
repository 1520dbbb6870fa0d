package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for the interactive runner.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(` __      __.__           __________                                      `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` \ \    / /|  |__ ___.__.\______   \ ____   ____ _____   __ __  ______ ____  `).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(`  \ \/\/ / |  |  <   |  | |    |  _// __ \_/ ___\\__  \ |  |  \/  ___// __ \ `).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(`   \    /  |   Y  \___  | |    |   \  ___/\  \___ / __ \|  |  /\___ \\  ___/ `).Foreground(p.Color("#e879f9"))
	s5 := termenv.String(`    \__/   |___|  / ____| |______  /\___  >\___  >____  /____//____  >\___  >`).Foreground(p.Color("#f472b6"))
	s6 := termenv.String(`                \/\/             \/     \/     \/     \/           \/     \/ `).Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
