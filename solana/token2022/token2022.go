package token2022

import (
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	// MintBaseSize is the size of an SPL mint without extensions.
	MintBaseSize = 82
	// AccountTypeOffset is where extended accounts store their account type;
	// mints are padded up to the token account size first.
	AccountTypeOffset = 165
	// AccountTypeMint marks an extended mint.
	AccountTypeMint uint8 = 1

	ExtUninitialized      uint16 = 0
	ExtTransferFeeConfig  uint16 = 1
	transferFeeConfigSize        = 108
)

// TransferFee represents the transfer fee configuration for a specific epoch
type TransferFee struct {
	Epoch       uint64 // Epoch when this fee configuration is active
	MaximumFee  uint64 // Maximum fee amount in token units
	BasisPoints uint16 // Fee rate in basis points (1/10000)
}

// TransferFeeConfig represents the complete transfer fee configuration for a token
type TransferFeeConfig struct {
	TransferFeeConfigAuthority *solana.PublicKey // Authority that can modify transfer fee configuration
	WithdrawWithheldAuthority  *solana.PublicKey // Authority that can withdraw withheld fees
	WithheldAmount             uint64            // Amount of fees currently withheld
	OlderTransferFee           TransferFee       // Previous epoch's transfer fee configuration
	NewerTransferFee           TransferFee       // Current/next epoch's transfer fee configuration
}

type transferFeeConfigLayout struct {
	TransferFeeConfigAuthority solana.PublicKey
	WithdrawWithheldAuthority  solana.PublicKey
	WithheldAmount             uint64
	OlderEpoch                 uint64
	OlderMaximumFee            uint64
	OlderBasisPoints           uint16
	NewerEpoch                 uint64
	NewerMaximumFee            uint64
	NewerBasisPoints           uint16
}

// optionalNonZero maps the all-zero key Token-2022 uses for None to nil.
func optionalNonZero(key solana.PublicKey) *solana.PublicKey {
	if key.IsZero() {
		return nil
	}
	return &key
}

// Extensions walks the TLV area of a Token-2022 mint and returns the raw value
// of every extension by type. Plain SPL mints have no extensions.
func Extensions(data []byte) (map[uint16][]byte, error) {
	exts := make(map[uint16][]byte)
	if len(data) <= MintBaseSize {
		return exts, nil
	}
	if len(data) <= AccountTypeOffset {
		return nil, fmt.Errorf("mint data has %d bytes, too short for an account type", len(data))
	}
	if data[AccountTypeOffset] != AccountTypeMint {
		return nil, fmt.Errorf("account type %d is not a mint", data[AccountTypeOffset])
	}

	off := AccountTypeOffset + 1
	for off+4 <= len(data) {
		typ := binary.LittleEndian.Uint16(data[off : off+2])
		l := int(binary.LittleEndian.Uint16(data[off+2 : off+4]))
		off += 4

		if typ == ExtUninitialized && l == 0 {
			break
		}
		if off+l > len(data) {
			return nil, fmt.Errorf("invalid TLV length: type=%d len=%d off=%d total=%d", typ, l, off, len(data))
		}
		exts[typ] = data[off : off+l]
		off += l
	}
	return exts, nil
}

// ParseTransferFeeConfig returns the mint's transfer fee configuration, or nil
// when the mint does not carry the extension.
func ParseTransferFeeConfig(data []byte) (*TransferFeeConfig, error) {
	exts, err := Extensions(data)
	if err != nil {
		return nil, err
	}
	raw, ok := exts[ExtTransferFeeConfig]
	if !ok {
		return nil, nil
	}
	if len(raw) < transferFeeConfigSize {
		return nil, fmt.Errorf("transfer fee config has %d bytes, want %d", len(raw), transferFeeConfigSize)
	}

	var layout transferFeeConfigLayout
	if err := bin.NewBorshDecoder(raw).Decode(&layout); err != nil {
		return nil, fmt.Errorf("decode transfer fee config: %w", err)
	}
	return &TransferFeeConfig{
		TransferFeeConfigAuthority: optionalNonZero(layout.TransferFeeConfigAuthority),
		WithdrawWithheldAuthority:  optionalNonZero(layout.WithdrawWithheldAuthority),
		WithheldAmount:             layout.WithheldAmount,
		OlderTransferFee: TransferFee{
			Epoch:       layout.OlderEpoch,
			MaximumFee:  layout.OlderMaximumFee,
			BasisPoints: layout.OlderBasisPoints,
		},
		NewerTransferFee: TransferFee{
			Epoch:       layout.NewerEpoch,
			MaximumFee:  layout.NewerMaximumFee,
			BasisPoints: layout.NewerBasisPoints,
		},
	}, nil
}

// GetEpochFee picks the fee in force at currentEpoch: the newer one once its epoch is reached.
func GetEpochFee(cfg *TransferFeeConfig, currentEpoch uint64) TransferFee {
	if cfg == nil {
		return TransferFee{}
	}
	if currentEpoch >= cfg.NewerTransferFee.Epoch {
		return cfg.NewerTransferFee
	}
	return cfg.OlderTransferFee
}
