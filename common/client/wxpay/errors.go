package wxpay

import (
	"errors"
	"fmt"
)

var (
	ErrForgedNotification      = errors.New("forged trade notification")
	ErrSignatureMismatch       = errors.New("signature verification failed")
	ErrMissingTradeIdentifier  = errors.New("transaction_id or out_trade_no is required")
	ErrMissingRefundIdentifier = errors.New("out_refund_no, transaction_id or out_trade_no is required")
	ErrCertificateRequired     = errors.New("merchant certificate is required for this request")
)

// BadResponseError 非200响应, 或响应缺少return_code
type BadResponseError struct {
	StatusCode int
	Body       string
}

func (e *BadResponseError) Error() string {
	return "bad response from wxpay: " + e.Body
}

// BusinessError return_code/result_code 非 SUCCESS
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s(%s)", e.Message, e.Code)
}

// DecodeError 既不是xml也不是query string
type DecodeError struct {
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable wxpay payload %q: %v", e.Text, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
