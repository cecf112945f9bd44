package natpp

import (
	"path"
	"strings"
)

// ProjectionTypes maps the recognised projection identifiers to the
// variant they name.
var ProjectionTypes = map[string]string{
	"hhh": "High population",
	"hpp": "High fertility",
	"lll": "Low population",
	"lpp": "Low fertility",
	"php": "High life expectancy",
	"plp": "Low life expectancy",
	"pph": "High migration",
	"ppl": "Low migration",
	"ppp": "Principal projection",
	"ppz": "Zero net migration",
}

// ProjectionIdentifier returns the second "_"-separated segment of a
// member's base name, e.g. "ppp" for "npp_ppp_2020.xml".
func ProjectionIdentifier(member string) (string, bool) {
	parts := strings.Split(path.Base(member), "_")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

