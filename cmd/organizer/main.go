// Package main starts the organizer service.
package main

import "github.com/Himan2899/SmartFileOrganizer/pkg/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
