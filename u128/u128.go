package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

type Uint128 binary.Uint128

var (
	// Zero is the 128-bit zero value.
	Zero = binary.Uint128{}
	// Max is 2^128 - 1.
	Max = GenUint128FromString("340282366920938463463374607431768211455")
)

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// FromString parses a base-10 string into a Uint128.
func FromString(num string) (binary.Uint128, error) {
	var out Uint128
	if _, err := fmt.Sscan(num, &out); err != nil {
		return binary.Uint128{}, fmt.Errorf("parse u128 %q: %w", num, err)
	}
	return binary.Uint128{Lo: out.Lo, Hi: out.Hi}, nil
}

// GenUint128FromString is FromString for constants; it panics on bad input.
func GenUint128FromString(num string) binary.Uint128 {
	v, err := FromString(num)
	if err != nil {
		panic(err)
	}
	return v
}

func FromUint64(v uint64) binary.Uint128 {
	return binary.Uint128{Lo: v}
}

// FromBig converts v, reporting false when v is negative or wider than 128 bits.
func FromBig(v *big.Int) (binary.Uint128, bool) {
	if v == nil {
		return binary.Uint128{}, true
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return binary.Uint128{}, false
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return binary.Uint128{Lo: lo, Hi: hi}, true
}

// ToUint256 widens v into a fresh 256-bit integer.
func ToUint256(v binary.Uint128) *uint256.Int {
	return &uint256.Int{v.Lo, v.Hi, 0, 0}
}

// FromUint256 narrows v, reporting false when any of the upper 128 bits is set.
func FromUint256(v *uint256.Int) (binary.Uint128, bool) {
	if v[2] != 0 || v[3] != 0 {
		return binary.Uint128{}, false
	}
	return binary.Uint128{Lo: v[0], Hi: v[1]}, true
}

func IsZero(v binary.Uint128) bool {
	return v.Lo == 0 && v.Hi == 0
}

// Cmp returns -1, 0 or +1 like big.Int.Cmp.
func Cmp(a, b binary.Uint128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

// Equal compares values only; the Endianness hint is ignored.
func Equal(a, b binary.Uint128) bool {
	return a.Lo == b.Lo && a.Hi == b.Hi
}

// SaturatingSub returns a - b, or zero when b > a.
func SaturatingSub(a, b binary.Uint128) binary.Uint128 {
	if Cmp(a, b) <= 0 {
		return binary.Uint128{}
	}
	lo := a.Lo - b.Lo
	hi := a.Hi - b.Hi
	if a.Lo < b.Lo {
		hi--
	}
	return binary.Uint128{Lo: lo, Hi: hi}
}

// CheckedAdd returns a + b and false on overflow past 2^128 - 1.
func CheckedAdd(a, b binary.Uint128) (binary.Uint128, bool) {
	lo := a.Lo + b.Lo
	carry := uint64(0)
	if lo < a.Lo {
		carry = 1
	}
	hi := a.Hi + b.Hi
	if hi < a.Hi {
		return binary.Uint128{}, false
	}
	hi2 := hi + carry
	if hi2 < hi {
		return binary.Uint128{}, false
	}
	return binary.Uint128{Lo: lo, Hi: hi2}, true
}

// String renders v in base 10.
func String(v binary.Uint128) string {
	return ToUint256(v).Dec()
}
