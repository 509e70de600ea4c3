// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cbviz-fast simulates protan, deuteran, and tritan deficiencies
// on an image in one figure.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/cbviz/base/errors"
	"cogentcore.org/cbviz/base/logx"
	"cogentcore.org/cbviz/cmd"
	"cogentcore.org/cbviz/config"
)

func main() {
	logx.SetDefaultLogger()
	cfg, _, err := config.Load()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = cmd.NewApp(cfg, os.Stdout).FastCmd().ExecuteContext(ctx)
	if errors.Log(err) != nil {
		stop()
		os.Exit(1)
	}
}
