package sketch

// hashString is the versioned string hash behind the default hatch-angle
// bucket: a rolling 31-multiplier accumulator over runes (Unicode code
// points) with 32-bit wraparound, reduced to a non-negative value. The
// constants and the rune iteration are pinned so the same string maps to the
// same bucket in every implementation.
func hashString(s string) int {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	// Clearing the sign bit is the pinned non-negative reduction; it avoids
	// the MinInt32 negation overflow an abs would hit.
	return int(uint32(h) &^ (1 << 31))
}
