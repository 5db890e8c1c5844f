package config

// DefaultSchemaFile is the schema name commands look for when no path
// is given on the command line.
const DefaultSchemaFile = "kin.yaml"

// Color modes accepted by KIN_COLOR.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
