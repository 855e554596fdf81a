/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

const (
	formatInt    = "int"
	formatString = "string"
	formatJSON   = "json"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "snowflake",
		Short:         "Issue and decode k-ordered 64-bit identifiers",
		Long:          `Issue time-ordered 64-bit identifiers for a datacenter and machine, and decode existing ones into their fractions.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}

			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newNextCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newLayoutCmd())

	return root
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case formatInt, formatString, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %s, %s or %s", format, formatInt, formatString, formatJSON)
	}
}
