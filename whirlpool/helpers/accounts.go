package helpers

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

func accountBody(data []byte, discriminator [8]byte, size int, name string) ([]byte, error) {
	if len(data) < size {
		return nil, fmt.Errorf("%w: %s too short: got=%d want>=%d", shared.ErrInvalidAccount, name, len(data), size)
	}
	if !bytes.Equal(data[:8], discriminator[:]) {
		return nil, fmt.Errorf("%w: %s discriminator mismatch", shared.ErrInvalidAccount, name)
	}
	return data[8:], nil
}

func DecodeWhirlpool(data []byte) (*shared.Whirlpool, error) {
	body, err := accountBody(data, shared.WhirlpoolDiscriminator, shared.WhirlpoolSize, "whirlpool")
	if err != nil {
		return nil, err
	}
	var out shared.Whirlpool
	if err := out.UnmarshalWithDecoder(binary.NewBorshDecoder(body)); err != nil {
		return nil, fmt.Errorf("decode whirlpool: %w", err)
	}
	return &out, nil
}

func DecodePosition(data []byte) (*shared.Position, error) {
	body, err := accountBody(data, shared.PositionDiscriminator, shared.PositionSize, "position")
	if err != nil {
		return nil, err
	}
	var out shared.Position
	if err := out.UnmarshalWithDecoder(binary.NewBorshDecoder(body)); err != nil {
		return nil, fmt.Errorf("decode position: %w", err)
	}
	return &out, nil
}

// DecodeTickArray decodes a fixed-size tick array account. Dynamic tick arrays
// fail with both ErrUnsupportedTickArray and ErrInvalidAccount.
func DecodeTickArray(data []byte) (*shared.TickArray, error) {
	if len(data) >= 8 && bytes.Equal(data[:8], shared.DynamicTickArrayDiscriminator[:]) {
		return nil, fmt.Errorf("%w: %w: dynamic tick array", shared.ErrUnsupportedTickArray, shared.ErrInvalidAccount)
	}
	body, err := accountBody(data, shared.TickArrayDiscriminator, shared.TickArrayAccountSize, "tick array")
	if err != nil {
		return nil, err
	}
	var out shared.TickArray
	if err := out.UnmarshalWithDecoder(binary.NewBorshDecoder(body)); err != nil {
		return nil, fmt.Errorf("decode tick array: %w", err)
	}
	return &out, nil
}
