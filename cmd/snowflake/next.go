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
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fogfish/snowflake"
	"github.com/fogfish/snowflake/internal/config"
)

func newNextCmd() *cobra.Command {
	var (
		file   string
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Issue new identifiers",
		Long: `Issue new identifiers, one per line.

The location is taken from flags, SNOWFLAKE_DATACENTER / SNOWFLAKE_MACHINE
environment variables or snowflake.yaml, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			v := config.New(file)
			for _, key := range []string{"datacenter", "machine", "spin"} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
					return err
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			gen, err := cfg.Generator(snowflake.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			slog.Info("issuing identifiers",
				slog.Int("datacenter", gen.Datacenter()),
				slog.Int("machine", gen.Machine()),
				slog.Int("count", count),
			)

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				id, err := gen.NextID()
				if err != nil {
					return err
				}
				if err := writeID(w, id, format); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "config", "", "config file (default is ./snowflake.yaml)")
	cmd.Flags().IntP("datacenter", "d", 0, "datacenter id [0, 31]")
	cmd.Flags().IntP("machine", "m", 0, "machine id [0, 31]")
	cmd.Flags().Duration("spin", 0, "pause between clock reads when sequence is exhausted")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")
	cmd.Flags().StringVarP(&format, "format", "f", formatInt, "output format: int, string, json")

	return cmd
}

func writeID(w *bufio.Writer, id snowflake.ID, format string) error {
	var err error
	switch strings.ToLower(format) {
	case formatString:
		_, err = fmt.Fprintln(w, snowflake.String(id))
	case formatJSON:
		var b []byte
		if b, err = json.Marshal(id); err == nil {
			_, err = fmt.Fprintln(w, string(b))
		}
	default:
		_, err = fmt.Fprintln(w, int64(id))
	}
	return err
}
