package wxpay

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		key    string
		want   string
	}{
		{
			name:   "simple",
			params: Params{"b": "2", "a": "1"},
			key:    "k",
			want:   "F8F06AFA2E241A36469B9DAC959B3474",
		},
		{
			name:   "empty values are skipped",
			params: Params{"a": "1", "b": "2", "c": ""},
			key:    "k",
			want:   "F8F06AFA2E241A36469B9DAC959B3474",
		},
		{
			name: "app invocation params",
			params: Params{
				"appid":     "wx2421b1c4370ec43b",
				"partnerid": "10000100",
				"prepayid":  "wx201411101639507cbf6ffd8b0779950874",
				"package":   "Sign=WXPay",
				"noncestr":  "IITRi8Iabbblz1Jc",
				"timestamp": "1470919875",
			},
			key:  "c6d725f7ff5b80c0a95f",
			want: "911C47AE9657533E426108EDDBFB2C20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sign(tt.params, tt.key))
		})
	}
}

func TestSign_Format(t *testing.T) {
	a := Params{}
	a.Set("a", "1").Set("b", "2")
	b := Params{}
	b.Set("b", "2").Set("a", "1")

	sa, sb := Sign(a, "secret"), Sign(b, "secret")
	assert.Equal(t, sa, sb)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{32}$`), sa)
	assert.NotEqual(t, sa, Sign(a, "Secret"))
}

func TestVerifySign(t *testing.T) {
	key := "c6d725f7ff5b80c0a95f"
	params := Params{"return_code": "SUCCESS", "out_trade_no": "201506072227000001"}
	sign := Sign(params, key)
	signed := params.Clone()
	signed["sign"] = sign

	tampered := signed.Clone()
	tampered["out_trade_no"] = "201506072227000002"

	tests := []struct {
		name     string
		params   Params
		provided string
		want     bool
	}{
		{name: "sign field excluded", params: signed, provided: sign, want: true},
		{name: "tampered field", params: tampered, provided: sign, want: false},
		{name: "case sensitive", params: signed, provided: "abc" + sign[3:], want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifySign(tt.params, tt.provided, key))
		})
	}
}

func TestEnsureNotForged(t *testing.T) {
	key := "k"
	params := Params{"a": "1"}
	signed := params.Clone()
	signed["sign"] = Sign(params, key)

	assert.NoError(t, ensureNotForged(signed, key))
	assert.ErrorIs(t, ensureNotForged(params, key), ErrForgedNotification)

	signed["a"] = "2"
	assert.ErrorIs(t, ensureNotForged(signed, key), ErrSignatureMismatch)
}
