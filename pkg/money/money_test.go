package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Amount{
		"0":          0,
		"1":          100,
		"12.5":       1250,
		"12.34":      1234,
		"-3.01":      -301,
		"1000000":    100000000,
		"0000400000": 40000000,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("1.001")
	assert.ErrorIs(t, err, ErrTooPrecise)

	_, err = Parse("abc")
	assert.Error(t, err)

	_, err = Parse("99999999999999999999999")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "0.00", Amount(0).String())
	assert.Equal(t, "12.05", Amount(1205).String())
	assert.Equal(t, "-4000.00", FromMajor(-4000).String())
}

func TestAmount_Share(t *testing.T) {
	assert.Equal(t, Amount(90000), FromMajor(1000).Share(9, 10))
	// 0.99 * 90% = 0.891, truncated
	assert.Equal(t, Amount(89), Amount(99).Share(9, 10))
	assert.Equal(t, Amount(0), Amount(0).Share(9, 10))
	assert.Equal(t, Amount(-13), Amount(-15).Share(9, 10))
	assert.Equal(t, Amount(8301034833169298226), Amount(math.MaxInt64).Share(9, 10))
}

func TestAmount_Mul(t *testing.T) {
	p, ok := Amount(1050).Mul(3)
	assert.True(t, ok)
	assert.Equal(t, Amount(3150), p)

	p, ok = Amount(-7).Mul(0)
	assert.True(t, ok)
	assert.Equal(t, Amount(0), p)

	huge, err := Parse("46116860184273879.05")
	require.NoError(t, err)
	_, ok = huge.Mul(4)
	assert.False(t, ok)

	_, ok = Amount(math.MinInt64).Mul(-1)
	assert.False(t, ok)
}

func TestAmount_Add(t *testing.T) {
	s, ok := Amount(100).Add(-250)
	assert.True(t, ok)
	assert.Equal(t, Amount(-150), s)

	_, ok = Amount(math.MaxInt64).Add(1)
	assert.False(t, ok)

	_, ok = Amount(math.MinInt64).Add(-1)
	assert.False(t, ok)
}

func TestAmount_JSON(t *testing.T) {
	payload := struct {
		Amount Amount `json:"amount"`
	}{Amount: 40000050}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 400000.5}`, string(data))

	var decoded struct {
		Amount Amount `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 400000.5}`), &decoded))
	assert.Equal(t, Amount(40000050), decoded.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "12.34"}`), &decoded))
	assert.Equal(t, Amount(1234), decoded.Amount)

	assert.Error(t, json.Unmarshal([]byte(`{"amount": 0.001}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"amount": "ten"}`), &decoded))
}

func TestSum(t *testing.T) {
	assert.Equal(t, Amount(600), Sum(100, 200, 300))
	assert.Equal(t, Amount(0), Sum())
}
