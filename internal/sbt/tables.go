package sbt

// bitPerm maps output bit i of the pre-round bit permutation to input bit
// bitPerm[i].
var bitPerm = [64]int{ //nolint:gochecknoglobals // fixed cipher constant
	19, 47, 48, 5, 62, 25, 13, 36,
	16, 44, 37, 51, 8, 57, 7, 26,
	33, 50, 20, 3, 41, 11, 27, 61,
	59, 18, 55, 14, 35, 1, 24, 45,
	10, 29, 63, 46, 6, 39, 52, 21,
	2, 60, 22, 15, 42, 30, 34, 53,
	17, 0, 49, 38, 28, 12, 58, 40,
	43, 32, 23, 31, 56, 9, 4, 54,
}

var bitPermInv = invertPerm64(&bitPerm) //nolint:gochecknoglobals // derived cipher constant

func invertPerm64(perm *[64]int) *[64]int {
	var inv [64]int
	for i, j := range perm {
		inv[j] = i
	}
	return &inv
}

// bytePerm and bytePermInv map output byte i to input byte perm[i] of the
// per-round byte permutation and its inverse.
var (
	bytePerm    = [8]int{3, 5, 1, 4, 6, 0, 7, 2} //nolint:gochecknoglobals // fixed cipher constant
	bytePermInv = [8]int{5, 2, 7, 0, 3, 1, 4, 6} //nolint:gochecknoglobals // fixed cipher constant
)

// sbox and sboxInv are the per-position nibble substitution tables, indexed
// by (nibble position, nibble value).
var sbox = [16][16]uint64{ //nolint:gochecknoglobals // fixed cipher constant
	{4, 15, 10, 1, 11, 2, 8, 0, 13, 5, 6, 12, 7, 3, 9, 14},
	{15, 10, 8, 13, 3, 0, 14, 2, 12, 6, 9, 1, 4, 11, 7, 5},
	{8, 11, 3, 14, 13, 10, 4, 15, 9, 0, 12, 6, 5, 7, 1, 2},
	{1, 8, 14, 10, 7, 4, 9, 13, 6, 3, 11, 5, 15, 0, 2, 12},
	{13, 2, 12, 9, 14, 7, 3, 1, 4, 8, 0, 15, 6, 10, 5, 11},
	{11, 7, 9, 5, 10, 1, 15, 6, 2, 12, 4, 13, 14, 8, 3, 0},
	{7, 13, 6, 8, 1, 3, 0, 4, 5, 15, 2, 14, 10, 12, 11, 9},
	{2, 4, 5, 12, 9, 11, 7, 8, 15, 14, 13, 10, 3, 1, 0, 6},
	{7, 15, 0, 12, 10, 8, 1, 11, 9, 13, 5, 3, 14, 2, 6, 4},
	{4, 9, 8, 5, 0, 6, 10, 14, 11, 2, 7, 15, 1, 3, 13, 12},
	{3, 14, 13, 9, 1, 4, 8, 6, 10, 0, 11, 5, 2, 15, 12, 7},
	{11, 10, 14, 0, 9, 13, 3, 2, 6, 12, 15, 7, 8, 5, 4, 1},
	{9, 7, 6, 13, 11, 15, 4, 12, 0, 8, 2, 14, 10, 1, 3, 5},
	{5, 2, 1, 4, 13, 14, 0, 9, 15, 11, 6, 12, 3, 10, 7, 8},
	{8, 13, 7, 14, 5, 0, 11, 10, 2, 3, 12, 1, 15, 4, 9, 6},
	{1, 5, 4, 6, 12, 10, 9, 15, 3, 14, 8, 0, 13, 7, 2, 11},
}

var sboxInv = [16][16]uint64{ //nolint:gochecknoglobals // fixed cipher constant
	{7, 3, 5, 13, 0, 9, 10, 12, 6, 14, 2, 4, 11, 8, 15, 1},
	{5, 11, 7, 4, 12, 15, 9, 14, 2, 10, 1, 13, 8, 3, 6, 0},
	{9, 14, 15, 2, 6, 12, 11, 13, 0, 8, 5, 1, 10, 4, 3, 7},
	{13, 0, 14, 9, 5, 11, 8, 4, 1, 6, 3, 10, 15, 7, 2, 12},
	{10, 7, 1, 6, 8, 14, 12, 5, 9, 3, 13, 15, 2, 0, 4, 11},
	{15, 5, 8, 14, 10, 3, 7, 1, 13, 2, 4, 0, 9, 11, 12, 6},
	{6, 4, 10, 5, 7, 8, 2, 0, 3, 15, 12, 14, 13, 1, 11, 9},
	{14, 13, 0, 12, 1, 2, 15, 6, 7, 4, 11, 5, 3, 10, 9, 8},
	{2, 6, 13, 11, 15, 10, 14, 0, 5, 8, 4, 7, 3, 9, 12, 1},
	{4, 12, 9, 13, 0, 3, 5, 10, 2, 1, 6, 8, 15, 14, 7, 11},
	{9, 4, 12, 0, 5, 11, 7, 15, 6, 3, 8, 10, 14, 2, 1, 13},
	{3, 15, 7, 6, 14, 13, 8, 11, 12, 4, 1, 0, 9, 5, 2, 10},
	{8, 13, 10, 14, 6, 15, 2, 1, 9, 0, 12, 4, 7, 3, 11, 5},
	{6, 2, 1, 12, 3, 0, 10, 14, 15, 7, 13, 9, 11, 4, 5, 8},
	{5, 11, 8, 9, 13, 4, 15, 2, 0, 14, 7, 6, 10, 1, 3, 12},
	{11, 0, 14, 8, 2, 1, 3, 13, 10, 6, 5, 15, 4, 12, 9, 7},
}

// Key schedule constants: the per-round rotation amounts for the 28-bit key
// halves, the rotated-key bit positions feeding the nibble-switch controls,
// the per-round rotation of the input block, and the rotated-key bit
// positions feeding the grid controls.
var (
	rshift = [8]int{5, 7, 9, 14, 19, 24, 26, 28}         //nolint:gochecknoglobals // fixed cipher constant
	nrBits = [8]int{35, 7, 32, 4, 29, 1, 54, 26}         //nolint:gochecknoglobals // fixed cipher constant
	srBits = [8]int{32, 40, 48, 56, 0, 8, 16, 24}        //nolint:gochecknoglobals // fixed cipher constant
	krBits = [32]int{ //nolint:gochecknoglobals // fixed cipher constant
		10, 38, 13, 41, 16, 44, 19, 47,
		22, 50, 25, 53, 0, 28, 3, 31,
		6, 34, 9, 37, 12, 40, 15, 43,
		18, 46, 21, 49, 24, 52, 27, 55,
	}
)
