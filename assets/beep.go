package assets

import "math"

// Beep synthesizes a sine tone as 16-bit little endian stereo PCM at SampleRate.
func Beep(freq, seconds float64) []byte {
	const amplitude = 0.35

	n := int(SampleRate * seconds)
	pcm := make([]byte, n*4)
	for i := range n {
		v := math.Sin(2 * math.Pi * freq * float64(i) / SampleRate)
		s := int16(v * amplitude * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		pcm[4*i], pcm[4*i+1] = lo, hi
		pcm[4*i+2], pcm[4*i+3] = lo, hi
	}
	return pcm
}
