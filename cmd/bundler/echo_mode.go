package main

import (
	"fmt"
	"strings"
)

// Echo modes decide what happens to the bundle text once the file is written.
// The per-user default lives under the echo key of ~/.bundle.
const (
	echoModeNone    = "none"
	echoModePrint   = "print"
	echoModeCopy    = "copy"
	echoModeSSHCopy = "ssh-copy"
)

func normalizeEchoMode(mode string) (string, bool) {
	m := strings.TrimSpace(strings.ToLower(mode))
	switch m {
	case echoModeNone, "off", "":
		return echoModeNone, true
	case echoModePrint:
		return echoModePrint, true
	case echoModeCopy:
		return echoModeCopy, true
	case echoModeSSHCopy, "sshcopy", "ssh", "osc52":
		return echoModeSSHCopy, true
	default:
		return "", false
	}
}

func resolveEchoMode(defaultMode string, printFlag, copyFlag, sshFlag bool) (string, error) {
	selected := 0
	for _, set := range []bool{printFlag, copyFlag, sshFlag} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return "", fmt.Errorf("only one of --print, --copy, or --ssh-copy may be set")
	}
	switch {
	case printFlag:
		return echoModePrint, nil
	case copyFlag:
		return echoModeCopy, nil
	case sshFlag:
		return echoModeSSHCopy, nil
	}
	if defaultMode == "" {
		return echoModeNone, nil
	}
	return defaultMode, nil
}
