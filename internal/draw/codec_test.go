package draw

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := sampleBoard()
	b = Move(b, "pot2-0", "pot2", "D")
	b = Move(b, "pot1-1", "pot1", "D")

	data, err := Encode(b)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyContainersAsArrays(t *testing.T) {
	data, err := Encode(NewBoard())
	require.NoError(t, err)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw["pots"], 3)
	require.Len(t, raw["groups"], 6)
	require.Equal(t, "[]", string(raw["groups"]["A"]))
	require.Equal(t, "[]", string(raw["pots"]["pot3"]))
}

func TestDecodeUsesOriginalFieldNames(t *testing.T) {
	blob := `{"pots":{"pot1":[{"id":"pot1-0","name":"Alpha","potId":"pot1"}],"pot2":[],"pot3":[]},` +
		`"groups":{"A":[],"B":[{"id":"pot2-0","name":"Beta","potId":"pot2"}],"C":[],"D":[],"E":[],"F":[]}}`
	b, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Equal(t, []Entry{{ID: "pot2-0", Name: "Beta", PotID: Pot2}}, b.Groups[GroupB])
	require.Equal(t, 2, b.Len())
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":        `{not json`,
		"empty":           ``,
		"array":           `[]`,
		"null":            `null`,
		"missing groups":  `{"pots":{"pot1":[],"pot2":[],"pot3":[]}}`,
		"null container":  `{"pots":{"pot1":null,"pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]}}`,
		"unknown field":   `{"pots":{"pot1":[],"pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]},"extra":1}`,
		"wrong type":      `{"pots":{"pot1":"x","pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]}}`,
		"trailing data":   `{"pots":{"pot1":[],"pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]}} {}`,
		"duplicate entry": `{"pots":{"pot1":[{"id":"x","name":"X","potId":"pot1"}],"pot2":[],"pot3":[]},"groups":{"A":[{"id":"x","name":"X","potId":"pot1"}],"B":[],"C":[],"D":[],"E":[],"F":[]}}`,
	}
	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(blob))
			require.Error(t, err)
		})
	}
}
