package conv

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/ropt/pkg/ropt"
)

type IntParser struct{}

func (IntParser) TryParse(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

type Int64Parser struct{}

func (Int64Parser) TryParse(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

type UintParser struct{}

func (UintParser) TryParse(s string) (uint64, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	return v, err == nil
}

type Float64Parser struct{}

func (Float64Parser) TryParse(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

type BoolParser struct{}

func (BoolParser) TryParse(s string) (bool, bool) {
	v, err := strconv.ParseBool(s)
	return v, err == nil
}

// TimeParser accepts RFC 3339 timestamps.
type TimeParser struct{}

func (TimeParser) TryParse(s string) (time.Time, bool) {
	v, err := time.Parse(time.RFC3339, s)
	return v, err == nil
}

type DurationParser struct{}

func (DurationParser) TryParse(s string) (time.Duration, bool) {
	v, err := time.ParseDuration(s)
	return v, err == nil
}

type UUIDParser struct{}

func (UUIDParser) TryParse(s string) (uuid.UUID, bool) {
	v, err := uuid.Parse(s)
	return v, err == nil
}

func Int(s string) ropt.Option[int] {
	return Parse[int, IntParser](s)
}

func Int64(s string) ropt.Option[int64] {
	return Parse[int64, Int64Parser](s)
}

func Uint(s string) ropt.Option[uint64] {
	return Parse[uint64, UintParser](s)
}

func Float64(s string) ropt.Option[float64] {
	return Parse[float64, Float64Parser](s)
}

func Bool(s string) ropt.Option[bool] {
	return Parse[bool, BoolParser](s)
}

func Time(s string) ropt.Option[time.Time] {
	return Parse[time.Time, TimeParser](s)
}

func Duration(s string) ropt.Option[time.Duration] {
	return Parse[time.Duration, DurationParser](s)
}

func UUID(s string) ropt.Option[uuid.UUID] {
	return Parse[uuid.UUID, UUIDParser](s)
}
