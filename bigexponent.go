package decimal

import "math/big"

// emaxBig mirrors Emax for storage widths whose emax would overflow an
// int64 (from 960 bits up). Its only caller is the width-selection
// fallback in widths.go — the one place in this codec where
// arbitrary-precision integer math is used; encoding and decoding keep
// their exponent arithmetic in int64.
func emaxBig(storageWidthBits int) *big.Int {
	exp := uint(storageWidthBits/16 + 3)
	result := new(big.Int).Lsh(big.NewInt(1), exp)
	return result.Mul(result, big.NewInt(3))
}

func eminBig(storageWidthBits int) *big.Int {
	return new(big.Int).Sub(big.NewInt(1), emaxBig(storageWidthBits))
}
