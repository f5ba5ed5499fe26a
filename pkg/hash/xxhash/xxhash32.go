package xxhash

const (
	prime32_1 = 2654435761
	prime32_2 = 2246822519
	prime32_3 = 3266489917
	prime32_4 = 668265263
	prime32_5 = 374761393
)

// Sum32 returns the 32 bit hash of b under the default seed
func Sum32(b []byte) uint32 {
	return Checksum32(b, 0xCAFE)
}

// Checksum32 returns the 32 bit hash of input under the given seed
func Checksum32(input []byte, seed uint32) uint32 {
	n := len(input)
	h32 := uint32(n)

	if n < 16 {
		h32 += seed + prime32_5
	} else {
		v1 := seed + prime32_1 + prime32_2
		v2 := seed + prime32_2
		v3 := seed
		v4 := seed - prime32_1
		p := 0
		for n := n - 16; p <= n; p += 16 {
			sub := input[p:][:16] //BCE hint for compiler
			v1 = u32_rol13(v1+u32_u32(sub[:])*prime32_2) * prime32_1
			v2 = u32_rol13(v2+u32_u32(sub[4:])*prime32_2) * prime32_1
			v3 = u32_rol13(v3+u32_u32(sub[8:])*prime32_2) * prime32_1
			v4 = u32_rol13(v4+u32_u32(sub[12:])*prime32_2) * prime32_1
		}
		input = input[p:]
		n -= p
		h32 += u32_rol1(v1) + u32_rol7(v2) + u32_rol12(v3) + u32_rol18(v4)
	}

	p := 0
	for n := n - 4; p <= n; p += 4 {
		h32 += u32_u32(input[p:p+4]) * prime32_3
		h32 = u32_rol17(h32) * prime32_4
	}
	for p < n {
		h32 += uint32(input[p]) * prime32_5
		h32 = u32_rol11(h32) * prime32_1
		p++
	}

	h32 ^= h32 >> 15
	h32 *= prime32_2
	h32 ^= h32 >> 13
	h32 *= prime32_3
	h32 ^= h32 >> 16

	return h32
}

func u32_u32(buf []byte) uint32 {
	// go compiler recognizes this pattern and optimizes it on little endian platforms
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

func u32_rol1(u uint32) uint32 {
	return u<<1 | u>>31
}

func u32_rol7(u uint32) uint32 {
	return u<<7 | u>>25
}

func u32_rol11(u uint32) uint32 {
	return u<<11 | u>>21
}

func u32_rol12(u uint32) uint32 {
	return u<<12 | u>>20
}

func u32_rol13(u uint32) uint32 {
	return u<<13 | u>>19
}

func u32_rol17(u uint32) uint32 {
	return u<<17 | u>>15
}

func u32_rol18(u uint32) uint32 {
	return u<<18 | u>>14
}
