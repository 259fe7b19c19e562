package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/optrec/errs"
)

// ConvertString decodes value into the variable data points to. data is left untouched when
// value is not a valid literal of the target type. Float literals beyond the range of the target
// type decode to an infinity of the same sign.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*(t) = value
	case *int:
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseInt, value)
		}
		*(t) = val
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseInt, value)
		}
		*(t) = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseFloat, value)
		}
		*(t) = float32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseFloat, value)
		}
		*(t) = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseTime, value)
		}
		*(t) = val
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedTypeConversion, data)
	}

	return nil
}
