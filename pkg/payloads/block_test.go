package payloads

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockNumberOrTagVariants(t *testing.T) {
	byNumber := BlockNumber("0x10")
	number, ok := byNumber.Number()
	assert.True(t, ok)
	assert.Equal(t, Uint("0x10"), number)
	_, ok = byNumber.Tag()
	assert.False(t, ok)

	byTag := BlockByTag(Pending)
	tag, ok := byTag.Tag()
	assert.True(t, ok)
	assert.Equal(t, Pending, tag)
	_, ok = byTag.Number()
	assert.False(t, ok)
}

func TestBlockNumberOrTagMarshal(t *testing.T) {
	data, err := json.Marshal(BlockNumber("0x10"))
	require.NoError(t, err)
	assert.Equal(t, `"0x10"`, string(data))

	data, err = json.Marshal(LatestBlock)
	require.NoError(t, err)
	assert.Equal(t, `"latest"`, string(data))
}

func TestFilterMarshalOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Filter{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	from := BlockNumber("0x1")
	hash := HexString32("0x" + strings.Repeat("ab", 32))
	data, err = json.Marshal(Filter{
		FromBlock: &from,
		ToBlock:   &LatestBlock,
		Topics:    [][]HexString32{nil, {hash}},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "0x1", decoded["fromBlock"])
	assert.Equal(t, "latest", decoded["toBlock"])
	assert.NotContains(t, decoded, "address")
	assert.NotContains(t, decoded, "blockHash")
	// position 0 is a wildcard, position 1 a single topic
	topics := decoded["topics"].([]any)
	assert.Nil(t, topics[0])
}
