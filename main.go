/*
Copyright © 2026 Daystack Labs
*/
package main

import (
	"github.com/daystacklabs/daystack/cmd"
	"github.com/daystacklabs/daystack/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
