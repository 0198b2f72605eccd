package fivequbit

import "github.com/dhruvbhq/lowdepthflagqec/decoder"

// noFlagCorrections holds the usual weight-1 corrections: plain 4-bit
// syndrome → the unique weight-1 Pauli producing it, assuming no faults
// during extraction.
func noFlagCorrections() decoder.Inner {
	return decoder.Inner{
		"0001": pauliVec("XIIII"),
		"1000": pauliVec("IXIII"),
		"1100": pauliVec("IIXII"),
		"0110": pauliVec("IIIXI"),
		"0011": pauliVec("IIIIX"),
		"1010": pauliVec("ZIIII"),
		"0101": pauliVec("IZIII"),
		"0010": pauliVec("IIZII"),
		"1001": pauliVec("IIIZI"),
		"0100": pauliVec("IIIIZ"),
		"1011": pauliVec("YIIII"),
		"1101": pauliVec("IYIII"),
		"1110": pauliVec("IIYII"),
		"1111": pauliVec("IIIYI"),
		"0111": pauliVec("IIIIY"),
	}
}

// NoFlagTable returns the standalone non-adaptive table: terminal weight-1
// corrections keyed directly by the 4-bit syndrome.
func NoFlagTable() decoder.Table {
	t := make(decoder.Table, 15)
	for key, corr := range noFlagCorrections() {
		t[key] = decoder.Entry{Terminal: corr}
	}
	return t
}

// flagTable assembles a flag-protocol table from the four per-generator
// flag-raised inner tables. For every generator position it installs three
// outer keys: flag raised with syndrome 0, flag raised with syndrome 1
// (a Y fault on the ancilla raises both), and plain nonzero syndrome with
// the flag clear, which shares the weight-1 corrections.
func flagTable(flagged [4]decoder.Inner) decoder.Table {
	outer := [4]string{
		"%s -- -- --",
		"00 %s -- --",
		"00 00 %s --",
		"00 00 00 %s",
	}
	t := make(decoder.Table, 12)
	for g, inner := range flagged {
		prefix := outer[g]
		t[expand(prefix, "01")] = decoder.Entry{Inner: inner}
		t[expand(prefix, "11")] = decoder.Entry{Inner: inner}
		t[expand(prefix, "10")] = decoder.Entry{Inner: noFlagCorrections()}
	}
	return t
}

// expand substitutes the observed pair into an outer-key pattern.
func expand(pattern, pair string) string {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '%' && i+1 < len(pattern) && pattern[i+1] == 's' {
			out = append(out, pair...)
			i++
			continue
		}
		out = append(out, pattern[i])
	}
	return string(out)
}

// MinWeightTable returns the flag-protocol table whose corrections are
// minimum-weight equivalents (one representative chosen where several exist).
func MinWeightTable() decoder.Table {
	return flagTable([4]decoder.Inner{
		{ // flag raised on generator 1 (XZZXI)
			"0100": pauliVec("IIZXI"),
			"1100": pauliVec("XYIII"),
			"1001": pauliVec("XXIII"),
			"0001": pauliVec("XIIII"),
			"0110": pauliVec("IIIXI"),
			"1010": pauliVec("IIXXI"),
			"1000": pauliVec("IIYXI"),
		},
		{ // flag raised on generator 2 (IXZZX)
			"1010": pauliVec("IIIZX"),
			"0110": pauliVec("XIIIY"),
			"0100": pauliVec("IXXII"),
			"1000": pauliVec("IXIII"),
			"0011": pauliVec("IIIIX"),
			"0101": pauliVec("IIIXX"),
			"1100": pauliVec("IIIYX"),
		},
		{ // flag raised on generator 3 (XIXZZ)
			"1101": pauliVec("IIIZZ"),
			"0001": pauliVec("XIIII"),
			"0011": pauliVec("XIZII"),
			"1111": pauliVec("IXIIY"),
			"0100": pauliVec("IIIIZ"),
			"0010": pauliVec("IIIXZ"),
			"1011": pauliVec("IIIYZ"),
		},
		{ // flag raised on generator 4 (ZXIXZ)
			"0010": pauliVec("IIIXZ"),
			"1010": pauliVec("ZIIII"),
			"1111": pauliVec("ZZIII"),
			"0111": pauliVec("ZYIII"),
			"0100": pauliVec("IIIIZ"),
			"1011": pauliVec("IIIYZ"),
			"1101": pauliVec("IIIZZ"),
		},
	})
}

// HighWeightTable returns the flag-protocol table carrying the literal
// propagated error of each flagged fault as its correction.
func HighWeightTable() decoder.Table {
	return flagTable([4]decoder.Inner{
		{ // flag raised on generator 1 (XZZXI)
			"0100": pauliVec("IIZXI"),
			"1100": pauliVec("IXZXI"),
			"1001": pauliVec("IYZXI"),
			"0001": pauliVec("IZZXI"),
			"0110": pauliVec("IIIXI"),
			"1010": pauliVec("IIXXI"),
			"1000": pauliVec("IIYXI"),
		},
		{ // flag raised on generator 2 (IXZZX)
			"1010": pauliVec("IIIZX"),
			"0110": pauliVec("IIXZX"),
			"0100": pauliVec("IIYZX"),
			"1000": pauliVec("IIZZX"),
			"0011": pauliVec("IIIIX"),
			"0101": pauliVec("IIIXX"),
			"1100": pauliVec("IIIYX"),
		},
		{ // flag raised on generator 3 (XIXZZ)
			"1101": pauliVec("IIIZZ"),
			"0001": pauliVec("IIXZZ"),
			"0011": pauliVec("IIYZZ"),
			"1111": pauliVec("IIZZZ"),
			"0100": pauliVec("IIIIZ"),
			"0010": pauliVec("IIIXZ"),
			"1011": pauliVec("IIIYZ"),
		},
		{ // flag raised on generator 4 (ZXIXZ)
			"0010": pauliVec("IIIXZ"),
			"1010": pauliVec("IXIXZ"),
			"1111": pauliVec("IYIXZ"),
			"0111": pauliVec("IZIXZ"),
			"0100": pauliVec("IIIIZ"),
			"1011": pauliVec("IIIYZ"),
			"1101": pauliVec("IIIZZ"),
		},
	})
}
