// Package main provides the entry point for the region editor.
package main

import "region-editor/cmd"

func main() {
	cmd.Execute()
}
