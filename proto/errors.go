package proto

type ErrorCode string

const (
	VARUINT_ERR_TRUNCATED ErrorCode = "VARUINT_ERR_TRUNCATED"
	VARUINT_ERR_PREFIX    ErrorCode = "VARUINT_ERR_PREFIX"
	VARUINT_ERR_OVERSIZE  ErrorCode = "VARUINT_ERR_OVERSIZE"
)

// CodecError is a decode failure. Err carries the underlying read error, if
// any, so callers can errors.Is against io.EOF / io.ErrUnexpectedEOF.
type CodecError struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := string(e.Code)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *CodecError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func codecErr(code ErrorCode, msg string, err error) error {
	return &CodecError{Code: code, Msg: msg, Err: err}
}
