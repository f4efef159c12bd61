package core

// Color identifies a foreground color for a screen cell. The platform
// layer maps these to ANSI 256-color styles; the core never deals with
// terminal escape codes directly.
type Color uint8

// Palette for the cave scene.
const (
	ColorDefault Color = iota
	ColorStone         // limestone spike fill
	ColorStoneDark     // spike outline / shaded rock
	ColorStoneLight    // chalky edge highlight
	ColorBat           // bat body silhouette
	ColorBatRim        // rim light on the bat
	ColorWater         // dripping water
	ColorBlood         // impact fallout
	ColorText          // HUD text
	ColorTextDim       // secondary HUD text
)
