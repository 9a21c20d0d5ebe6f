package services

import (
	"strings"

	"hackathon-demo-api/internal/models"
)

// Param is an optional query parameter value
type Param struct {
	Value   string
	Present bool
}

// LookupParam extracts name from query. A parameter that is missing or
// blank is reported as absent.
func LookupParam(query models.Query, name string) Param {
	value, ok := query[name]
	if !ok || strings.TrimSpace(value) == "" {
		return Param{}
	}
	return Param{Value: value, Present: true}
}

// OrDefault returns the parameter value, or fallback when it is absent
func (p Param) OrDefault(fallback string) string {
	if !p.Present {
		return fallback
	}
	return p.Value
}

// ResolveParam returns the value of name in query, or fallback when the
// parameter is absent or empty. It never fails.
func ResolveParam(query models.Query, name, fallback string) string {
	return LookupParam(query, name).OrDefault(fallback)
}

// ParamDefaults holds the fallback values substituted for absent parameters
type ParamDefaults struct {
	GuestName       string
	NatureKeyword   string
	FibonacciNumber string
}

// DefaultParamDefaults returns the built-in parameter defaults
func DefaultParamDefaults() ParamDefaults {
	return ParamDefaults{
		GuestName:       models.DefaultGuestName,
		NatureKeyword:   models.DefaultNatureKeyword,
		FibonacciNumber: models.DefaultFibonacciNumber,
	}
}
