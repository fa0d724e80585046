package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/leasing.txt
var leasingRaw string

// LeasingInstruction returns the fixed instruction text handed to the
// dialogue engine that fronts this tool layer. The engine owns turn planning
// and reply wording; this text is the only policy this module ships for it.
func LeasingInstruction() string {
	return strings.TrimSpace(leasingRaw)
}
