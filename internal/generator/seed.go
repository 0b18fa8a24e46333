package generator

// DateSignSeed derives a stable non-negative seed from an ISO calendar
// date ("YYYY-MM-DD") and a sign identifier.
//
// The rolling hash intentionally reproduces 32-bit signed overflow
// semantics (h = (h<<5) - h + char, truncated to int32 each step) so that
// seeds match readings cached or published by earlier client builds
// bit-for-bit. Do not "fix" the wraparound.
func DateSignSeed(isoDate, signID string) int64 {
	var h int32
	for _, c := range isoDate + signID {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}
