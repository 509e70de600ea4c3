// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd returns the cbviz command with its simulate and test subcommands.
func (a *App) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "cbviz",
		Short:             "Simulate color vision deficiencies on images and test their readability",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun:  a.setLevel,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	a.addVerbosityFlags(root)
	root.SetOut(a.out)
	root.SetFlagErrorFunc(flagError)
	root.AddCommand(a.SimulateCmd(), a.TestCmd())
	return root
}
