package pricing

import "errors"

// ErrInternal возвращается при ошибках чтения каталога
var ErrInternal = errors.New("pricing: internal error")
