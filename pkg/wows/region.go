package wows

import (
	"fmt"
	"strings"
)

// Region identifies one of the World of Warships server clusters. Each
// region is served by its own API host.
type Region int

// The closed set of supported regions.
const (
	NA Region = iota
	EU
	RU
	ASIA
)

// Regions returns every supported region in declaration order.
func Regions() []Region {
	return []Region{NA, EU, RU, ASIA}
}

// Host returns the API host for r, or "" if r is not a supported region.
func (r Region) Host() string {
	switch r {
	case NA:
		return "api.worldofwarships.com"
	case EU:
		return "api.worldofwarships.eu"
	case RU:
		return "api.worldofwarships.ru"
	case ASIA:
		return "api.worldofwarships.asia"
	}
	return ""
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	return r.Host() != ""
}

// String returns the short lowercase name of the region.
func (r Region) String() string {
	switch r {
	case NA:
		return "na"
	case EU:
		return "eu"
	case RU:
		return "ru"
	case ASIA:
		return "asia"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// ParseRegion resolves a region name. It accepts the short names (na, eu, ru,
// asia) case-insensitively, plus the aliases "as" and "com".
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "na", "com":
		return NA, nil
	case "eu":
		return EU, nil
	case "ru":
		return RU, nil
	case "asia", "as":
		return ASIA, nil
	}
	return 0, fmt.Errorf("%w %q; must be one of: na, eu, ru, asia", ErrInvalidRegion, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRegion, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
