package main

import (
	"regexp"
	"runtime"
	"strings"
)

var version string

var sha1Regex = regexp.MustCompile("[a-f0-9]{40}")

func aboutText() string {
	var sb strings.Builder

	sb.WriteString(appName)

	if len(version) > 0 {
		sb.WriteString(" ")
		if sha1Regex.MatchString(version) {
			sb.WriteString(version[:7])
		} else {
			sb.WriteString(version)
		}
	}

	sb.WriteString("\nBuilt with Go ")
	sb.WriteString(strings.TrimPrefix(runtime.Version(), "go"))

	return sb.String()
}
