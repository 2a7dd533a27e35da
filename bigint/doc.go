// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigint implements fixed-precision unsigned multi-word integer
// arithmetic that is generic over the limb width.
//
// Values are represented by the Int type, a sequence of limbs in little-endian
// order whose length fixes the width of the integer.  Unlike the arbitrary
// precision integers provided by math/big, the width of every value is explicit
// and part of its contract: leading zero limbs are never trimmed, addition
// widens by one limb, multiplication of an Na-limb value by an Nb-limb value
// always produces exactly Na+Nb limbs, and division returns a quotient and
// remainder with widths derived from the operand widths.  The additions and
// subtractions that discard overflow say so in their name; the fixed-width
// left shift Lsh also discards bits shifted beyond the width, while LshWide
// keeps them.
//
// All operations are pure: operands are never mutated and results are freshly
// allocated, so values may be shared freely across goroutines.
package bigint
