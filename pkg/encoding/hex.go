package encoding

import (
	"encoding/hex"
	"strings"
)

// NormalizeTxHashHex defines canonical and unambiguous representation for a
// transaction hash hexadecimal string; lower-case.
func NormalizeTxHashHex(txHash string) string {
	return strings.ToLower(txHash)
}

// TxHashHexToBytes decodes a (possibly upper-case) transaction hash hex string.
func TxHashHexToBytes(txHashHex string) ([]byte, error) {
	txHash, err := hex.DecodeString(NormalizeTxHashHex(txHashHex))
	if err != nil {
		return nil, ErrInvalidTxHash.Wrapf("%q: %s", txHashHex, err)
	}
	return txHash, nil
}
