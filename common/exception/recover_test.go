package exception

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTry(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
		is      error
	}{
		{name: "ok", fn: func() error { return nil }},
		{name: "error", fn: func() error { return errBoom }, wantErr: true, is: errBoom},
		{name: "panic", fn: func() error { panic("bad handler") }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Try(tt.fn)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer Recover()
		panic("in goroutine")
	}()
	<-done
}
