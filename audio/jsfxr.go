package audio

import (
	"math"
	"strconv"
	"strings"

	"github.com/simukka/catch-it/common"
)

// SfxrParams holds all configurable parameters for sound synthesis.
type SfxrParams struct {
	WaveType            WaveType
	AttackTime          float64 // Time for volume to ramp up (0-1)
	SustainTime         float64 // Time at full volume (0-1)
	SustainPunch        float64 // Extra volume boost at sustain start (0-1)
	DecayTime           float64 // Time for volume to fade out (0-1)
	StartFrequency      float64 // Base frequency of the sound (0-1)
	MinFrequency        float64 // Frequency cutoff
	Slide               float64 // Frequency slide
	DeltaSlide          float64 // Acceleration of frequency slide
	VibratoDepth        float64 // Depth of vibrato effect
	VibratoSpeed        float64 // Speed of vibrato oscillation
	ChangeAmount        float64 // Amount to change pitch mid-sound
	ChangeSpeed         float64 // When to apply the pitch change
	SquareDuty          float64 // Duty cycle for square wave (0-1)
	DutySweep           float64 // Sweep of square wave duty cycle
	RepeatSpeed         float64 // Speed of sound repeat
	PhaserOffset        float64 // Initial phaser offset
	PhaserSweep         float64 // Phaser offset sweep
	LpFilterCutoff      float64 // Low-pass filter cutoff frequency (0-1)
	LpFilterCutoffSweep float64 // Low-pass filter cutoff sweep
	LpFilterResonance   float64 // Low-pass filter resonance (0-1)
	HpFilterCutoff      float64 // High-pass filter cutoff frequency (0-1)
	HpFilterCutoffSweep float64 // High-pass filter cutoff sweep
	MasterVolume        float64 // Master volume (0-1)
}

// ParseSettingsString parses a comma-separated settings string into parameters.
func (p *SfxrParams) ParseSettingsString(s string) {
	values := strings.Split(s, ",")

	parseFloat := func(idx int) float64 {
		if idx >= len(values) || values[idx] == "" {
			return 0
		}
		f, _ := strconv.ParseFloat(values[idx], 64)
		return f
	}

	parseInt := func(idx int) int {
		if idx >= len(values) || values[idx] == "" {
			return 0
		}
		i, _ := strconv.Atoi(values[idx])
		return i
	}

	p.WaveType = WaveType(parseInt(0))
	p.AttackTime = parseFloat(1)
	p.SustainTime = parseFloat(2)
	p.SustainPunch = parseFloat(3)
	p.DecayTime = parseFloat(4)
	p.StartFrequency = parseFloat(5)
	p.MinFrequency = parseFloat(6)
	p.Slide = parseFloat(7)
	p.DeltaSlide = parseFloat(8)
	p.VibratoDepth = parseFloat(9)
	p.VibratoSpeed = parseFloat(10)
	p.ChangeAmount = parseFloat(11)
	p.ChangeSpeed = parseFloat(12)
	p.SquareDuty = parseFloat(13)
	p.DutySweep = parseFloat(14)
	p.RepeatSpeed = parseFloat(15)
	p.PhaserOffset = parseFloat(16)
	p.PhaserSweep = parseFloat(17)
	p.LpFilterCutoff = parseFloat(18)
	p.LpFilterCutoffSweep = parseFloat(19)
	p.LpFilterResonance = parseFloat(20)
	p.HpFilterCutoff = parseFloat(21)
	p.HpFilterCutoffSweep = parseFloat(22)
	p.MasterVolume = parseFloat(23)

	// Ensure minimum sustain time for audible sound
	if p.SustainTime < 0.01 {
		p.SustainTime = 0.01
	}

	// Ensure minimum total envelope length to prevent clicks/pops
	totalTime := p.AttackTime + p.SustainTime + p.DecayTime
	if totalTime < 0.18 {
		multiplier := 0.18 / totalTime
		p.AttackTime *= multiplier
		p.SustainTime *= multiplier
		p.DecayTime *= multiplier
	}
}

// SfxrSynth is the sound synthesizer engine.
type SfxrSynth struct {
	Params SfxrParams

	// Envelope lengths
	envelopeLength0 float64
	envelopeLength1 float64
	envelopeLength2 float64

	// Oscillator state
	period       float64
	maxPeriod    float64
	slide        float64
	deltaSlide   float64
	changeAmount float64
	changeTime   float64
	changeLimit  float64
	squareDuty   float64
	dutySweep    float64

	phaserBuffer []float64
	noiseBuffer  []float64
	noise        *common.SeededRNG
}

// NewSfxrSynth creates a synthesizer whose noise is drawn from seed, so a
// given seed and settings always render the same samples.
func NewSfxrSynth(seed uint32) *SfxrSynth {
	return &SfxrSynth{
		phaserBuffer: make([]float64, 1024),
		noiseBuffer:  make([]float64, 32),
		noise:        common.NewSeededRNG(seed),
	}
}

// Reset resets oscillator state for partial reset (used for repeat effect).
func (s *SfxrSynth) Reset() {
	p := &s.Params

	// Calculate period from frequency
	s.period = 100 / (p.StartFrequency*p.StartFrequency + 0.001)
	s.maxPeriod = 100 / (p.MinFrequency*p.MinFrequency + 0.001)

	// Calculate slide as a multiplier
	s.slide = 1 - p.Slide*p.Slide*p.Slide*0.01
	s.deltaSlide = -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001

	// Square wave duty cycle
	if p.WaveType == WaveSquare {
		s.squareDuty = 0.5 - p.SquareDuty/2
		s.dutySweep = -p.DutySweep * 0.00005
	}

	// Pitch change calculation
	if p.ChangeAmount > 0 {
		s.changeAmount = 1 - p.ChangeAmount*p.ChangeAmount*0.9
	} else {
		s.changeAmount = 1 + p.ChangeAmount*p.ChangeAmount*10
	}
	s.changeTime = 0
	if p.ChangeSpeed == 1 {
		s.changeLimit = 0
	} else {
		s.changeLimit = (1-p.ChangeSpeed)*(1-p.ChangeSpeed)*20000 + 32
	}
}

// TotalReset performs full reset including envelope calculation.
func (s *SfxrSynth) TotalReset() int {
	s.Reset()
	p := &s.Params

	// Calculate envelope lengths
	s.envelopeLength0 = p.AttackTime * p.AttackTime * 100000
	s.envelopeLength1 = p.SustainTime * p.SustainTime * 100000
	s.envelopeLength2 = p.DecayTime*p.DecayTime*100000 + 10

	return int(s.envelopeLength0 + s.envelopeLength1 + s.envelopeLength2)
}

// SynthWave renders into buffer until it is full or the sound ends, and
// returns the number of samples written. Samples are clipped to [-1, 1].
func (s *SfxrSynth) SynthWave(buffer []float32) int {
	length := len(buffer)
	p := &s.Params

	// Filter configuration
	filtersEnabled := p.LpFilterCutoff != 1 || p.HpFilterCutoff != 0
	hpFilterCutoff := p.HpFilterCutoff * p.HpFilterCutoff * 0.1
	hpFilterDeltaCutoff := 1 + p.HpFilterCutoffSweep*0.0003
	lpFilterCutoff := p.LpFilterCutoff * p.LpFilterCutoff * p.LpFilterCutoff * 0.1
	lpFilterDeltaCutoff := 1 + p.LpFilterCutoffSweep*0.0001
	lpFilterOn := p.LpFilterCutoff != 1
	masterVolume := p.MasterVolume * p.MasterVolume
	minFrequency := p.MinFrequency
	phaserEnabled := p.PhaserOffset != 0 || p.PhaserSweep != 0
	phaserDeltaOffset := p.PhaserSweep * p.PhaserSweep * p.PhaserSweep * 0.2

	phaserOffset := p.PhaserOffset * p.PhaserOffset
	if p.PhaserOffset < 0 {
		phaserOffset *= -1020
	} else {
		phaserOffset *= 1020
	}

	var repeatLimit int
	if p.RepeatSpeed != 0 {
		repeatLimit = int((1-p.RepeatSpeed)*(1-p.RepeatSpeed)*20000) + 32
	}

	sustainPunch := p.SustainPunch
	vibratoAmplitude := p.VibratoDepth / 2
	vibratoSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	waveType := p.WaveType

	// Envelope state
	envelopeLength := s.envelopeLength0
	envelopeOverLength0 := 1 / s.envelopeLength0
	envelopeOverLength1 := 1 / s.envelopeLength1
	envelopeOverLength2 := 1 / s.envelopeLength2

	// Low-pass filter damping
	lpFilterDamping := 5 / (1 + p.LpFilterResonance*p.LpFilterResonance*20) * (0.01 + lpFilterCutoff)
	if lpFilterDamping > 0.8 {
		lpFilterDamping = 0.8
	}
	lpFilterDamping = 1 - lpFilterDamping

	// Synthesis state
	finished := false
	envelopeStage := 0
	envelopeTime := 0.0
	envelopeVolume := 0.0
	hpFilterPos := 0.0
	lpFilterDeltaPos := 0.0
	lpFilterOldPos := 0.0
	lpFilterPos := 0.0
	periodTemp := 0.0
	phase := 0.0
	phaserInt := 0
	phaserPos := 0
	repeatTime := 0
	sample := 0.0
	superSample := 0.0
	vibratoPhase := 0.0

	// Clear buffers
	for i := range s.phaserBuffer {
		s.phaserBuffer[i] = 0
	}
	for i := range s.noiseBuffer {
		s.noiseBuffer[i] = s.noise.Float64()*2 - 1
	}

	// Cache state
	period := s.period
	maxPeriod := s.maxPeriod
	slide := s.slide
	deltaSlide := s.deltaSlide
	changeAmount := s.changeAmount
	changeTime := s.changeTime
	changeLimit := s.changeLimit
	squareDuty := s.squareDuty
	dutySweep := s.dutySweep

	for i := 0; i < length; i++ {
		if finished {
			return i
		}

		// Handle repeat effect
		if repeatLimit != 0 {
			repeatTime++
			if repeatTime >= repeatLimit {
				repeatTime = 0
				s.Reset()
				period = s.period
				maxPeriod = s.maxPeriod
				slide = s.slide
				deltaSlide = s.deltaSlide
				changeAmount = s.changeAmount
				changeTime = s.changeTime
				changeLimit = s.changeLimit
				squareDuty = s.squareDuty
				dutySweep = s.dutySweep
			}
		}

		// Handle pitch change
		if changeLimit != 0 {
			changeTime++
			if changeTime >= changeLimit {
				changeLimit = 0
				period *= changeAmount
			}
		}

		// Apply frequency slide
		slide += deltaSlide
		period *= slide

		// Check for minimum frequency cutoff
		if period > maxPeriod {
			period = maxPeriod
			if minFrequency > 0 {
				finished = true
			}
		}

		periodTemp = period

		// Apply vibrato
		if vibratoAmplitude > 0 {
			vibratoPhase += vibratoSpeed
			periodTemp *= 1 + math.Sin(vibratoPhase)*vibratoAmplitude
		}

		// Clamp period to minimum
		periodTempInt := int(periodTemp)
		if periodTempInt < 8 {
			periodTempInt = 8
		}
		periodTemp = float64(periodTempInt)

		// Square wave duty sweep
		if waveType == WaveSquare {
			squareDuty += dutySweep
			if squareDuty < 0 {
				squareDuty = 0
			}
			if squareDuty > 0.5 {
				squareDuty = 0.5
			}
		}

		// Envelope stage progression
		envelopeTime++
		if envelopeTime > envelopeLength {
			envelopeTime = 0
			envelopeStage++

			if envelopeStage == 1 {
				envelopeLength = s.envelopeLength1
			} else if envelopeStage == 2 {
				envelopeLength = s.envelopeLength2
			}
		}

		// Calculate envelope volume
		switch envelopeStage {
		case 0: // Attack
			envelopeVolume = envelopeTime * envelopeOverLength0
		case 1: // Sustain
			envelopeVolume = 1 + (1-envelopeTime*envelopeOverLength1)*2*sustainPunch
		case 2: // Decay
			envelopeVolume = 1 - envelopeTime*envelopeOverLength2
		case 3: // Finished
			envelopeVolume = 0
			finished = true
		}

		// Update phaser offset
		if phaserEnabled {
			phaserOffset += phaserDeltaOffset
			phaserInt = int(math.Abs(phaserOffset))
			if phaserInt > 1023 {
				phaserInt = 1023
			}
		}

		// Update high-pass filter cutoff
		if filtersEnabled && hpFilterDeltaCutoff != 1 {
			hpFilterCutoff *= hpFilterDeltaCutoff
			if hpFilterCutoff < 0.00001 {
				hpFilterCutoff = 0.00001
			}
			if hpFilterCutoff > 0.1 {
				hpFilterCutoff = 0.1
			}
		}

		// 8x Oversampling loop
		superSample = 0

		for j := 0; j < 8; j++ {
			// Advance phase
			phase++
			if phase >= periodTemp {
				phase = math.Mod(phase, periodTemp)

				// Generate new noise for noise wave type
				if waveType == WaveNoise {
					for n := range s.noiseBuffer {
						s.noiseBuffer[n] = s.noise.Float64()*2 - 1
					}
				}
			}

			// Generate sample based on wave type
			switch waveType {
			case WaveSquare:
				if phase/periodTemp < squareDuty {
					sample = 0.5
				} else {
					sample = -0.5
				}
			case WaveSawtooth:
				sample = 1 - (phase/periodTemp)*2
			case WaveSine: // polynomial approximation
				pos := phase / periodTemp
				if pos > 0.5 {
					pos = (pos - 1) * 6.28318531
				} else {
					pos = pos * 6.28318531
				}
				if pos < 0 {
					sample = 1.27323954*pos + 0.405284735*pos*pos
				} else {
					sample = 1.27323954*pos - 0.405284735*pos*pos
				}
				if sample < 0 {
					sample = 0.225*(sample*-sample-sample) + sample
				} else {
					sample = 0.225*(sample*sample-sample) + sample
				}
			case WaveNoise:
				idx := int(math.Abs(phase*32/periodTemp)) % 32
				sample = s.noiseBuffer[idx]
			}

			// Apply filters
			if filtersEnabled {
				lpFilterOldPos = lpFilterPos
				lpFilterCutoff *= lpFilterDeltaCutoff
				if lpFilterCutoff < 0 {
					lpFilterCutoff = 0
				}
				if lpFilterCutoff > 0.1 {
					lpFilterCutoff = 0.1
				}

				if lpFilterOn {
					lpFilterDeltaPos += (sample - lpFilterPos) * lpFilterCutoff
					lpFilterDeltaPos *= lpFilterDamping
				} else {
					lpFilterPos = sample
					lpFilterDeltaPos = 0
				}

				lpFilterPos += lpFilterDeltaPos

				hpFilterPos += lpFilterPos - lpFilterOldPos
				hpFilterPos *= 1 - hpFilterCutoff
				sample = hpFilterPos
			}

			// Apply phaser effect
			if phaserEnabled {
				s.phaserBuffer[phaserPos&1023] = sample
				sample += s.phaserBuffer[(phaserPos-phaserInt+1024)&1023]
				phaserPos++
			}

			superSample += sample
		}

		// Finalize sample
		superSample *= 0.125 * envelopeVolume * masterVolume

		buffer[i] = float32(math.Max(-1, math.Min(1, superSample)))
	}

	return length
}
