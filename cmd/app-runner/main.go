// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/app-runner/main.go
// Summary: Runs a registered demo app full-screen without persistence.

package main

import (
	"flag"
	"log"

	"github.com/framegrace/texelslider/internal/devshell"
)

func main() {
	appName := flag.String("app", "slider-demo", "name of the app to run")
	flag.Parse()
	if *appName == "" {
		log.Fatal("please specify -app")
	}
	if err := devshell.RunNamed(*appName, flag.Args()); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
