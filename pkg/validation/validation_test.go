package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

func TestAddress(t *testing.T) {
	valid := payloads.Address("0x" + strings.Repeat("11", 20))
	assert.NoError(t, Address("address", valid))

	tests := []struct {
		name  string
		value payloads.Address
	}{
		{"empty", ""},
		{"no prefix", payloads.Address(strings.Repeat("11", 20))},
		{"too short", payloads.Address("0x" + strings.Repeat("11", 19))},
		{"too long", payloads.Address("0x" + strings.Repeat("11", 21))},
		{"not hex", "0xZZ11111111111111111111111111111111111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Address("address", tt.value)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, "address", vErr.Field)
		})
	}
}

func TestFixedLengthHexStrings(t *testing.T) {
	assert.NoError(t, HexString32("hash", payloads.HexString32("0x"+strings.Repeat("ab", 32))))
	assert.NoError(t, HexString8("nonce", payloads.HexString8("0x"+strings.Repeat("ab", 8))))

	// One byte short must be rejected with the length constraint in
	// the message.
	err := HexString32("seedHash", payloads.HexString32("0x"+strings.Repeat("ab", 31)))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "32 bytes")

	err = HexString8("nonce", payloads.HexString8("0x"+strings.Repeat("ab", 9)))
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "8 bytes")
}

func TestHexString(t *testing.T) {
	assert.NoError(t, HexString("message", "0x"))
	assert.NoError(t, HexString("message", "0xdeadbeef"))

	var vErr *ValidationError
	assert.ErrorAs(t, HexString("message", "deadbeef"), &vErr)
	assert.ErrorAs(t, HexString("message", "0xabc"), &vErr) // odd nibble count
	assert.ErrorAs(t, HexString("message", "0xzz"), &vErr)
}

func TestQuantity(t *testing.T) {
	assert.NoError(t, Quantity("index", "0x0"))
	assert.NoError(t, Quantity("index", "0x5"))
	assert.NoError(t, Quantity("index", "0xdeadBEEF"))

	var vErr *ValidationError
	assert.ErrorAs(t, Quantity("index", ""), &vErr)
	assert.ErrorAs(t, Quantity("index", "0x"), &vErr)
	assert.ErrorAs(t, Quantity("index", "12"), &vErr)

	assert.NoError(t, Quantity256("value", payloads.Uint256("0x"+strings.Repeat("f", 64))))
	assert.ErrorAs(t, Quantity256("value", payloads.Uint256("0x"+strings.Repeat("f", 65))), &vErr)
}

func TestBlockNumberOrTag(t *testing.T) {
	assert.NoError(t, BlockNumberOrTag("block", payloads.BlockNumber("0x10")))
	assert.NoError(t, BlockNumberOrTag("block", payloads.LatestBlock))
	assert.NoError(t, BlockNumberOrTag("block", payloads.BlockByTag(payloads.Earliest)))
	assert.NoError(t, BlockNumberOrTag("block", payloads.BlockByTag(payloads.Pending)))

	var vErr *ValidationError
	assert.ErrorAs(t, BlockNumberOrTag("block", payloads.BlockByTag("newest")), &vErr)
	assert.ErrorAs(t, BlockNumberOrTag("block", payloads.BlockNumber("10")), &vErr)
	assert.ErrorAs(t, BlockNumberOrTag("block", payloads.BlockNumberOrTag{}), &vErr)
}

func TestPercentiles(t *testing.T) {
	assert.NoError(t, Percentiles("rewardPercentiles", nil, false))
	assert.NoError(t, Percentiles("rewardPercentiles", []float64{}, false))
	assert.NoError(t, Percentiles("rewardPercentiles", []float64{10, 50.5, 90}, false))
	assert.NoError(t, Percentiles("rewardPercentiles", []float64{0, 100}, true))

	var vErr *ValidationError
	assert.ErrorAs(t, Percentiles("rewardPercentiles", []float64{-1}, false), &vErr)
	assert.ErrorAs(t, Percentiles("rewardPercentiles", []float64{101}, false), &vErr)

	err := Percentiles("rewardPercentiles", []float64{10, 50.5}, true)
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rewardPercentiles[1]", vErr.Field)
}

func TestStorageKeys(t *testing.T) {
	key := payloads.HexString32("0x" + strings.Repeat("00", 32))
	assert.NoError(t, StorageKeys("storageKeys", nil))
	assert.NoError(t, StorageKeys("storageKeys", []payloads.HexString32{key, key}))

	var vErr *ValidationError
	err := StorageKeys("storageKeys", []payloads.HexString32{key, "0x00"})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "storageKeys[1]", vErr.Field)
}

func TestFilter(t *testing.T) {
	from := payloads.BlockNumber("0x1")
	to := payloads.LatestBlock
	topic := payloads.HexString32("0x" + strings.Repeat("aa", 32))
	address := payloads.Address("0x" + strings.Repeat("22", 20))

	assert.NoError(t, Filter("filter", payloads.Filter{}))
	assert.NoError(t, Filter("filter", payloads.Filter{
		FromBlock: &from,
		ToBlock:   &to,
		Addresses: []payloads.Address{address},
		Topics:    [][]payloads.HexString32{nil, {topic, topic}},
	}))

	var vErr *ValidationError

	bad := payloads.BlockByTag("someday")
	assert.ErrorAs(t, Filter("filter", payloads.Filter{FromBlock: &bad}), &vErr)
	assert.Equal(t, "filter.fromBlock", vErr.Field)

	err := Filter("filter", payloads.Filter{Topics: [][]payloads.HexString32{{topic}, {"0x1234"}}})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "filter.topics[1][0]", vErr.Field)

	err = Filter("filter", payloads.Filter{Addresses: []payloads.Address{address, "0xnope"}})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "filter.address[1]", vErr.Field)
}

func TestTransactionWithSender(t *testing.T) {
	from := payloads.Address("0x" + strings.Repeat("11", 20))
	to := payloads.Address("0x" + strings.Repeat("22", 20))

	assert.NoError(t, TransactionWithSender("transaction", payloads.TransactionWithSender{From: from}))
	assert.NoError(t, TransactionWithSender("transaction", payloads.TransactionWithSender{
		From:     from,
		To:       &to,
		Gas:      "0x5208",
		GasPrice: "0x3b9aca00",
		Value:    "0xde0b6b3a7640000",
		Input:    "0x",
		Nonce:    "0x0",
		AccessList: []payloads.AccessListEntry{
			{Address: to, StorageKeys: []payloads.HexString32{}},
		},
	}))

	var vErr *ValidationError

	err := TransactionWithSender("transaction", payloads.TransactionWithSender{})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transaction.from", vErr.Field)

	err = TransactionWithSender("transaction", payloads.TransactionWithSender{From: from, Gas: "5"})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transaction.gas", vErr.Field)
}

func TestTransactionCall(t *testing.T) {
	to := payloads.Address("0x" + strings.Repeat("22", 20))

	// The call shape tolerates a completely empty object.
	assert.NoError(t, TransactionCall("transaction", payloads.TransactionCall{}))
	assert.NoError(t, TransactionCall("transaction", payloads.TransactionCall{To: &to, Input: "0x06fdde03"}))

	var vErr *ValidationError
	badTo := payloads.Address("0x123")
	err := TransactionCall("transaction", payloads.TransactionCall{To: &badTo})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transaction.to", vErr.Field)
}
