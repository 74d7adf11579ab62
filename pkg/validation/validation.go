/*
Package validation holds the pure format checks applied to every
parameter before a request is handed to the dispatcher. A failing check
returns a *ValidationError synchronously; nothing here touches the
network or keeps state, so a validator can be called from any
goroutine.
*/
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// ValidationError is the only error kind raised by this layer itself.
// A caller that sees one knows the request was rejected locally and
// never transmitted.
type ValidationError struct {
	Field      string
	Value      any
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Constraint)
}

func fail(field string, value any, constraint string) error {
	return &ValidationError{Field: field, Value: value, Constraint: constraint}
}

// hexBody strips the mandatory 0x prefix and reports whether it was
// present.
func hexBody(s string) (string, bool) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", false
	}
	return s[2:], true
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func checkFixedHex(field string, value string, byteLen int, constraint string) error {
	body, ok := hexBody(value)
	if !ok || len(body) != byteLen*2 || !isHex(body) {
		return fail(field, value, constraint)
	}
	return nil
}

// Address checks a 20 byte 0x-prefixed account address.
func Address(field string, v payloads.Address) error {
	return checkFixedHex(field, string(v), 20,
		"must be a 0x-prefixed 20 byte hex address")
}

// HexString32 checks a fixed 32 byte hex string.
func HexString32(field string, v payloads.HexString32) error {
	return checkFixedHex(field, string(v), 32,
		"must be exactly 32 bytes of 0x-prefixed hex")
}

// HexString8 checks a fixed 8 byte hex string.
func HexString8(field string, v payloads.HexString8) error {
	return checkFixedHex(field, string(v), 8,
		"must be exactly 8 bytes of 0x-prefixed hex")
}

// HexString checks a variable-length hex payload. An empty payload
// ("0x") is valid.
func HexString(field string, v payloads.HexBytes) error {
	body, ok := hexBody(string(v))
	if !ok || len(body)%2 != 0 || !isHex(body) {
		return fail(field, v, "must be 0x-prefixed hex of whole bytes")
	}
	return nil
}

// Quantity checks a hex-encoded unsigned integer such as "0x5".
func Quantity(field string, v payloads.Uint) error {
	body, ok := hexBody(string(v))
	if !ok || len(body) == 0 || !isHex(body) {
		return fail(field, v, "must be a 0x-prefixed hex quantity")
	}
	return nil
}

// Quantity256 checks a hex-encoded 256 bit unsigned integer.
func Quantity256(field string, v payloads.Uint256) error {
	body, ok := hexBody(string(v))
	if !ok || len(body) == 0 || len(body) > 64 || !isHex(body) {
		return fail(field, v, "must be a 0x-prefixed hex quantity of at most 32 bytes")
	}
	return nil
}

// BlockNumberOrTag matches over the union's variants: a numeric height
// must be a valid quantity, a tag must be a member of the fixed set.
// The zero value carries neither variant and is rejected.
func BlockNumberOrTag(field string, v payloads.BlockNumberOrTag) error {
	if number, ok := v.Number(); ok {
		return Quantity(field, number)
	}
	if tag, ok := v.Tag(); ok {
		switch tag {
		case payloads.Latest, payloads.Earliest, payloads.Pending:
			return nil
		}
		return fail(field, tag, "must be one of latest, earliest, pending")
	}
	return fail(field, v.String(), "must be a hex block number or a block tag")
}

// Percentiles checks a reward percentile list element-wise. An empty
// list is valid. Fee history permits fractional percentiles, so the
// integer requirement is switchable.
func Percentiles(field string, values []float64, requireIntegers bool) error {
	for i, p := range values {
		element := fmt.Sprintf("%s[%d]", field, i)
		if p < 0 || p > 100 {
			return fail(element, p, "must be between 0 and 100")
		}
		if requireIntegers && p != math.Trunc(p) {
			return fail(element, p, "must be an integer")
		}
	}
	return nil
}

// StorageKeys checks a storage key list element-wise. An empty list is
// valid.
func StorageKeys(field string, keys []payloads.HexString32) error {
	for i, key := range keys {
		if err := HexString32(fmt.Sprintf("%s[%d]", field, i), key); err != nil {
			return err
		}
	}
	return nil
}

// Filter recursively checks each present optional field of a log
// filter.
func Filter(field string, f payloads.Filter) error {
	if f.FromBlock != nil {
		if err := BlockNumberOrTag(field+".fromBlock", *f.FromBlock); err != nil {
			return err
		}
	}
	if f.ToBlock != nil {
		if err := BlockNumberOrTag(field+".toBlock", *f.ToBlock); err != nil {
			return err
		}
	}
	for i, address := range f.Addresses {
		if err := Address(fmt.Sprintf("%s.address[%d]", field, i), address); err != nil {
			return err
		}
	}
	for i, position := range f.Topics {
		for j, topic := range position {
			if err := HexString32(fmt.Sprintf("%s.topics[%d][%d]", field, i, j), topic); err != nil {
				return err
			}
		}
	}
	if f.BlockHash != nil {
		if err := HexString32(field+".blockHash", *f.BlockHash); err != nil {
			return err
		}
	}
	return nil
}

func accessList(field string, entries []payloads.AccessListEntry) error {
	for i, entry := range entries {
		element := fmt.Sprintf("%s[%d]", field, i)
		if err := Address(element+".address", entry.Address); err != nil {
			return err
		}
		if err := StorageKeys(element+".storageKeys", entry.StorageKeys); err != nil {
			return err
		}
	}
	return nil
}

func transactionQuantities(field string, pairs [][2]string) error {
	for _, pair := range pairs {
		if pair[1] == "" {
			continue
		}
		if err := Quantity(field+"."+pair[0], payloads.Uint(pair[1])); err != nil {
			return err
		}
	}
	return nil
}

// TransactionWithSender checks a transaction descriptor whose sender is
// mandatory. Optional fields are checked only when present.
func TransactionWithSender(field string, tx payloads.TransactionWithSender) error {
	if err := Address(field+".from", tx.From); err != nil {
		return err
	}
	if tx.To != nil {
		if err := Address(field+".to", *tx.To); err != nil {
			return err
		}
	}
	if err := transactionQuantities(field, [][2]string{
		{"gas", string(tx.Gas)},
		{"gasPrice", string(tx.GasPrice)},
		{"maxFeePerGas", string(tx.MaxFeePerGas)},
		{"maxPriorityFeePerGas", string(tx.MaxPriorityFeePerGas)},
		{"nonce", string(tx.Nonce)},
		{"type", string(tx.Type)},
		{"chainId", string(tx.ChainID)},
	}); err != nil {
		return err
	}
	if tx.Value != "" {
		if err := Quantity256(field+".value", tx.Value); err != nil {
			return err
		}
	}
	if tx.Input != "" {
		if err := HexString(field+".input", tx.Input); err != nil {
			return err
		}
	}
	return accessList(field+".accessList", tx.AccessList)
}

// TransactionCall checks the sparse descriptor used for simulation.
// Every field is optional, including the sender.
func TransactionCall(field string, tx payloads.TransactionCall) error {
	if tx.From != nil {
		if err := Address(field+".from", *tx.From); err != nil {
			return err
		}
	}
	if tx.To != nil {
		if err := Address(field+".to", *tx.To); err != nil {
			return err
		}
	}
	if err := transactionQuantities(field, [][2]string{
		{"gas", string(tx.Gas)},
		{"gasPrice", string(tx.GasPrice)},
		{"maxFeePerGas", string(tx.MaxFeePerGas)},
		{"maxPriorityFeePerGas", string(tx.MaxPriorityFeePerGas)},
		{"type", string(tx.Type)},
	}); err != nil {
		return err
	}
	if tx.Value != "" {
		if err := Quantity256(field+".value", tx.Value); err != nil {
			return err
		}
	}
	if tx.Input != "" {
		if err := HexString(field+".input", tx.Input); err != nil {
			return err
		}
	}
	return accessList(field+".accessList", tx.AccessList)
}
