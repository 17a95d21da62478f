package audio

import "math"

// softSat applies gentle tanh-like saturation, no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// Generate renders the effect for kind as mono samples in [-1,1] at
// SampleRate. Unknown kinds yield nil.
func Generate(kind SoundKind) []float64 {
	switch kind {
	case SoundFire:
		return genFire()
	case SoundEnemyHit:
		return genEnemyHit()
	case SoundVolley:
		return genVolley()
	case SoundFormationStep:
		return genFormationStep()
	case SoundPlayerHit:
		return genPlayerHit()
	case SoundWaveCleared:
		return genWaveCleared()
	}
	return nil
}

// genFire: short descending FM zap.
func genFire() []float64 {
	n := int(0.08 * SampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 1600 - 1100*p
		out[i] = softSat(fm(t, freq, 1.5, 2.5*env) * env * 0.4)
	}
	return out
}

// genEnemyHit: noise crack over a falling sub thump.
func genEnemyHit() []float64 {
	n := int(0.22 * SampleRate)
	out := make([]float64, n)
	seed := uint64(0xE11E)
	lp := 0.0
	phase := 0.0
	for i := range out {
		p := float64(i) / float64(n)
		freq := 140 * math.Pow(40.0/140.0, p)
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*6) * 0.5
		raw := lcg(&seed)
		lp = lp*0.7 + raw*0.3
		crack := 0.0
		if p < 0.05 {
			crack = raw * (1 - p/0.05) * 0.6
		}
		body := lp * math.Exp(-p*8) * 0.35
		out[i] = softSat(sub + crack + body)
	}
	return out
}

// genVolley: low growl, two FM partials.
func genVolley() []float64 {
	n := int(0.18 * SampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		s := fm(t, 110, 0.5, 3.0*env) * env * 0.35
		s += math.Sin(2*math.Pi*55*t) * env * 0.15
		out[i] = softSat(s)
	}
	return out
}

// genFormationStep: crisp march tick.
func genFormationStep() []float64 {
	n := SampleRate * 45 / 1000
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		out[i] = softSat(fm(t, 220, 1.0, 0.8) * env * 0.3)
	}
	return out
}

// genPlayerHit: noise burst into a wobbling FM dive, the ship breaking up.
func genPlayerHit() []float64 {
	n := int(0.6 * SampleRate)
	out := make([]float64, n)
	seed := uint64(0xDEAD5)
	lp := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)

		raw := lcg(&seed)
		lp = lp*0.85 + raw*0.15
		burst := lp * math.Exp(-p*10) * 0.5

		env := adsr(p, 0.02, 0.3, 0.45, 0.4)
		wobble := 1 + 0.04*math.Sin(2*math.Pi*7*t)
		freq := 480 * math.Pow(60.0/480.0, p) * wobble
		dive := fm(t, freq, 0.75, 4.0*env) * env * 0.3

		out[i] = softSat(burst + dive)
	}
	return out
}

// genWaveCleared: quick major arpeggio up, then the triad held together.
func genWaveCleared() []float64 {
	arp := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	step := int(0.07 * SampleRate)
	hold := int(0.4 * SampleRate)
	total := len(arp)*step + hold
	mix := make([]float64, total)

	for k, freq := range arp {
		start := k * step
		for j := 0; j < step; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(step)
			env := adsr(np, 0.05, 0.4, 0.5, 0.2)
			mix[start+j] += fm(t, freq, 2.0, 1.5*env) * env * 0.3
		}
	}

	chordStart := len(arp) * step
	for _, freq := range arp {
		for j := 0; j < hold; j++ {
			t := float64(chordStart+j) / SampleRate
			np := float64(j) / float64(hold)
			env := adsr(np, 0.02, 0.3, 0.6, 0.5)
			mix[chordStart+j] += fm(t, freq*2, 1.0, 0.6*env) * env * 0.14
		}
	}

	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}
