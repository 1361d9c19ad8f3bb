// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command heralayout reports struct field orders that minimize padding.
//
// Usage:
//
//	heralayout analyze [--format text|json|yaml] [--watch] FILE...
//
// Each FILE is a YAML or TOML struct descriptor:
//
//	schema: "1.0"
//	name: header
//	fields:
//	  - name: valid
//	    type: bool
//	  - name: seq
//	    type: int64
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
