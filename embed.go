package main

import _ "embed"

// Default mapping definition, used when no external file is
// configured.
//
//go:embed mappings.tsv
var defaultMappings []byte
