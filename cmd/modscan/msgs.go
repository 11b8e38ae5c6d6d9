package main

import (
	_ "embed"
	"strings"
)

// User-facing text, embedded so it can be edited without touching
// command code.
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
