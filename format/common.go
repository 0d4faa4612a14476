package format

// CommonValues is the fixed table of byte values the common-value record can
// reference by 3-bit index. It is part of the wire format: encoder and decoder
// must use the identical table, and changing it breaks every stream already
// encoded. There is no version tag on the wire, so treat any edit as a new,
// incompatible format.
var CommonValues = [8]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0xFF, 0x7F, 0x20}

// CommonValueIndex returns the index of b in CommonValues, or -1 when b is
// not a common value.
func CommonValueIndex(b byte) int {
	for i, v := range CommonValues {
		if v == b {
			return i
		}
	}

	return -1
}
