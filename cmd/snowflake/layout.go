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
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fogfish/snowflake"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print bit layout of identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintf(w, "epoch\t%d\t%s\n", snowflake.Epoch,
				time.UnixMilli(snowflake.Epoch).UTC().Format(time.RFC3339Nano))
			fmt.Fprintln(w, "fraction\tbits\tshift\tmax")
			fmt.Fprintf(w, "time\t%d+\t%d\t-\n", 64-snowflake.TimeShift-1, snowflake.TimeShift)
			fmt.Fprintf(w, "datacenter\t%d\t%d\t%d\n", snowflake.DatacenterBits, snowflake.DatacenterShift, snowflake.MaxDatacenter)
			fmt.Fprintf(w, "machine\t%d\t%d\t%d\n", snowflake.MachineBits, snowflake.MachineShift, snowflake.MaxMachine)
			fmt.Fprintf(w, "sequence\t%d\t%d\t%d\n", snowflake.SequenceBits, 0, snowflake.MaxSequence)

			return w.Flush()
		},
	}
}
