package trainer

import "embed"

//go:embed etc
var Content embed.FS
