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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fogfish/snowflake"
)

// fractions of identifier
type fractions struct {
	ID         int64  `json:"id"`
	String     string `json:"string"`
	Time       string `json:"time"`
	Elapsed    int64  `json:"elapsed"`
	Datacenter int    `json:"datacenter"`
	Machine    int    `json:"machine"`
	Sequence   int    `json:"sequence"`
}

func decompose(id snowflake.ID) fractions {
	return fractions{
		ID:         int64(id),
		String:     snowflake.String(id),
		Time:       snowflake.Time(id).Format(time.RFC3339Nano),
		Elapsed:    snowflake.Elapsed(id),
		Datacenter: snowflake.Datacenter(id),
		Machine:    snowflake.Machine(id),
		Sequence:   snowflake.Seq(id),
	}
}

func newDecodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode ID...",
		Short: "Decode identifiers into fractions",
		Long:  `Decode identifiers given either in decimal or in sortable string notation.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				id, err := snowflake.Parse(strings.TrimSpace(arg))
				if err != nil {
					return err
				}

				f := decompose(id)
				if asJSON {
					b, err := json.Marshal(f)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(b))
					continue
				}

				fmt.Fprintf(out, "%d string=%s time=%s elapsed=%d datacenter=%d machine=%d sequence=%d\n",
					f.ID, f.String, f.Time, f.Elapsed, f.Datacenter, f.Machine, f.Sequence)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON object per identifier")

	return cmd
}
