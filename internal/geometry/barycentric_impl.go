package geometry

// ScalarCoverageMask computes the 12-bit corner mask with a plain
// corner-by-corner loop -- the portable fallback used on architectures
// without a packed 4-lane implementation.
func ScalarCoverageMask(b Block) uint16 {
	var mask uint16
	for edge := 0; edge < 3; edge++ {
		base := b.Lambda[edge]
		corners := [4]int32{
			int32(base),                               // top-left
			int32(base + b.StepX[edge]),                // top-right
			int32(base + b.StepY[edge]),                 // bottom-left
			int32(base + b.StepX[edge] + b.StepY[edge]), // bottom-right
		}
		for c, v := range corners {
			if v > 0 {
				mask |= 1 << uint(edge*4+c)
			}
		}
	}
	return mask
}

// lane4 is a packed 4-element int32 vector holding one 128-bit register's
// worth of corner values for a single edge. It is plain Go array
// arithmetic, evaluated element by element; no SIMD instructions are
// used on any architecture.
type lane4 [4]int32

func (l lane4) add(other lane4) lane4 {
	return lane4{l[0] + other[0], l[1] + other[1], l[2] + other[2], l[3] + other[3]}
}

// gtZeroMask returns a 4-bit mask with bit i set where l[i] > 0.
func (l lane4) gtZeroMask() uint16 {
	var m uint16
	for i, v := range l {
		if v > 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// SIMDLaneCoverageMask computes the same 12-bit mask as
// ScalarCoverageMask, but by building one lane4 per edge (corner order
// TL, TR, BL, BR) and evaluating the four corners as one lane, in the
// layout a 128-bit SIMD register would hold them.
func SIMDLaneCoverageMask(b Block) uint16 {
	var mask uint16
	for edge := 0; edge < 3; edge++ {
		base := int32(b.Lambda[edge])
		sx := int32(b.StepX[edge])
		sy := int32(b.StepY[edge])
		tl := lane4{base, base, base, base}
		offsets := lane4{0, sx, sy, sx + sy}
		corners := tl.add(offsets)
		mask |= corners.gtZeroMask() << uint(edge*4)
	}
	return mask
}
