package audio

// Settings fields, in order: wave, attack, sustain, punch, decay, start
// frequency, min frequency, slide, delta slide, vibrato depth, vibrato speed,
// change amount, change speed, square duty, duty sweep, repeat speed, phaser
// offset, phaser sweep, lp cutoff, lp cutoff sweep, lp resonance, hp cutoff,
// hp cutoff sweep, volume.

// SoundEffectLibrary holds every cue the game plays.
var SoundEffectLibrary = map[Cue]*SoundEffect{
	CueCatch: {
		ID:          CueCatch,
		Name:        "Catch",
		Description: "Collectible lands in the basket",
		Settings:    "0,,.06,.45,.25,.5,,,,,,.5,.6,.3,,,,,1,,,,,.5",
	},
	CueMiss: {
		ID:          CueMiss,
		Name:        "Miss",
		Description: "Collectible falls past the bottom edge",
		Settings:    "0,,.1,,.25,.3,.1,-.3,,,,,,.4,,,,,1,,,,,.4",
	},
	CueGameOver: {
		ID:          CueGameOver,
		Name:        "Game Over",
		Description: "Hazard hits the basket",
		Settings:    "3,,.3,.5,.5,.2,,-.2,,,,,,,,,,,1,,,,,.6",
	},
	CueTheme: {
		ID:          CueTheme,
		Name:        "Theme",
		Description: "Background loop while a run is active",
		Settings:    "1,,.15,,.25,,,,,,,,,,,,,,.6,,,,,.3",
		Notes: []float64{
			Note(220), Note(277.18), Note(329.63), Note(440),
			Note(329.63), Note(277.18), Note(246.94), Note(293.66),
		},
	},
}

// GetSoundEffect returns the effect for a cue, or nil if none is defined.
func GetSoundEffect(cue Cue) *SoundEffect {
	return SoundEffectLibrary[cue]
}
