package core

// g is the Argon2 mixing function: Blake2b's G function with an added
// multiplication term feeding each of the two "a" and two "c" updates. Without the
// 2*lo32(a)*lo32(b) (and 2*lo32(c)*lo32(d)) terms this would just be the
// stock Blake2b G function; the multiplication is what gives Argon2's
// compression function its extra arithmetic cost.
//
// Reference: Argon2 specification section 3.4 (mixing function).
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*mulLow32(a, b)
	d = rotr64(d^a, 32)
	c = c + d + 2*mulLow32(c, d)
	b = rotr64(b^c, 24)

	a = a + b + 2*mulLow32(a, b)
	d = rotr64(d^a, 16)
	c = c + d + 2*mulLow32(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// mulLow32 multiplies the low 32 bits of x and y, widened to uint64.
func mulLow32(x, y uint64) uint64 {
	return uint64(uint32(x)) * uint64(uint32(y))
}

// rotr64 performs a right rotation of x by n bits.
//
// This is a constant-time operation that doesn't depend on the rotation
// amount being secret, making it safe for cryptographic use.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// gRound applies g to a 16-element slice in the Argon2 round P pattern:
// four column applications followed by four diagonal applications, across
// the indices (0,4,8,12),(1,5,9,13),(2,6,10,14),(3,7,11,15),(0,5,10,15),
// (1,6,11,12),(2,7,8,13),(3,4,9,14).
//
// The function operates in-place, modifying v directly. v must have 16
// elements; it is always called with a fixed-size window into a Block.
func gRound(v []uint64) {
	_ = v[15] // force a bounds check panic for shorter slices

	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
