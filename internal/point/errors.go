package point

import "github.com/pkg/errors"

var (
	errSetterNotRaw  = errors.New("point: setter has no raw payload accessor")
	errArrayCapacity = errors.New("point: array write out of capacity")
	errEnumUnknown   = errors.New("point: unknown enum symbol")
	errStringTooLong = errors.New("point: string exceeds fixed capacity")
	errJSONShape     = errors.New("point: unexpected JSON shape for value")
)
