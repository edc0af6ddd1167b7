// ABOUTME: Entry point for the overhear CLI

package main

import "github.com/overhearhq/overhear/internal/cmd"

func main() {
	cmd.Execute()
}
