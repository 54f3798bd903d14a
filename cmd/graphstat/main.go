// SPDX-License-Identifier: MIT
// Command graphstat computes structural statistics over sparse graphs.
//
// Usage:
//
//	graphstat edges  --input com-youtube.ungraph.txt --degree-out deg.txt --clustering-out cc.txt
//	graphstat coauth --nverts coauth-DBLP-nverts.txt --simplices coauth-DBLP-simplices.txt \
//	                 --times coauth-DBLP-times.txt --year 2010
//
// Every metric runs once sequentially and once on the parallel layer; the
// two results are compared and both durations are logged.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
