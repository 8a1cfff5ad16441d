package game

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background
	BackgroundColor string

	// Fallback fills used when an image is missing
	CatcherColor      string
	HazardColor       string
	CollectibleColors []string

	// Score popups
	PopupColor string
	PopupFont  string

	// HUD
	HUDColor     string
	HUDFont      string
	OverColor    string
	StatsColor   string
	StatsFont    string
	OverlayShade string
}{
	BackgroundColor: "#101820",

	CatcherColor:      "#C8894B",
	HazardColor:       "#E0413A",
	CollectibleColors: []string{"#3A7BE0", "#3FB565", "#8E5BD9", "#E0B43A"},

	PopupColor: "#6ACE7F",
	PopupFont:  "700 16px 'Agdasima', sans-serif",

	HUDColor:     "#FFFFFF",
	HUDFont:      "700 20px 'Agdasima', sans-serif",
	OverColor:    "#E0413A",
	StatsColor:   "#00AAFF",
	StatsFont:    "12px monospace",
	OverlayShade: "rgba(0,0,0,.6)",
}
