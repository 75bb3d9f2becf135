package placement

import "errors"

// ErrInternal возвращается при внутренних ошибках
var ErrInternal = errors.New("placement: internal error")
