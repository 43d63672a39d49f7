// Command arrayvalue splits and writes array-shaped setting values and
// reports the array-valued settings of a YAML settings file.
//
//	arrayvalue split '{1, "a,b", {3,4}}'
//	arrayvalue join 1 'a,b'
//	arrayvalue inspect settings.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
