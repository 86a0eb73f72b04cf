// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input       string // constants file, defaults to the item constants of the disassembly
	Output      string // output file, printed on console if empty
	Settings    string // optional TOML settings file
	Disassembly string // disassembly path, overrides the settings
	Batch       string // glob pattern of constants files relative to the disassembly path
}

// Flags contains behavior options.
type Flags struct {
	Format string // output format: json, yaml or text
	Debug  bool
	Quiet  bool
}

// Program options of the extractor.
type Program struct {
	Parameters
	Flags
}
