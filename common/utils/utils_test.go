package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "报名费", "报名费"},
		{"bytes", []byte("SUCCESS"), "SUCCESS"},
		{"int", 1, "1"},
		{"int64", int64(1470919875), "1470919875"},
		{"bool", true, "true"},
		{"json number", json.Number("1013467007045764"), "1013467007045764"},
		{"large float", float64(1013467007045764), "1013467007045764"},
		{"fraction", 0.5, "0.5"},
		{"float32", float32(1.25), "1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.v))
		})
	}
}
