// Package flags provides flag types for scenectl commands.
package flags

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scenectl/scenectl/pkg/cli/internal/parse"
)

// FloatAssignments collects repeated FIELD=VALUE flags with numeric values,
// as used by transform --set. Malformed assignments fail at parse time.
// Later assignments to the same field win.
type FloatAssignments map[string]float64

// String returns the assignments as sorted FIELD=VALUE pairs.
func (f *FloatAssignments) String() string {
	if f == nil || len(*f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(*f))
	for k := range *f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + strconv.FormatFloat((*f)[k], 'g', -1, 64)
	}
	return strings.Join(pairs, ",")
}

// Set parses one FIELD=VALUE assignment.
func (f *FloatAssignments) Set(value string) error {
	key, raw, ok := parse.KeyValue(value, '=')
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid assignment %q: expected FIELD=VALUE", value)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not a number", key, raw)
	}
	if *f == nil {
		*f = make(FloatAssignments)
	}
	(*f)[key] = v
	return nil
}

// Type specifies the type label for Cobra flags.
func (f *FloatAssignments) Type() string {
	return "FIELD=VALUE"
}
