package main

import (
	"errors"
	"fmt"
	"os"

	nodejsgems "github.com/paketo-community/nodejs-gems"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: detect <build-dir>")
		os.Exit(2)
	}

	detect := nodejsgems.Detect()

	name, err := detect(nodejsgems.DetectContext{
		WorkingDir: os.Args[1],
	})
	if err != nil {
		if errors.Is(err, nodejsgems.Fail) {
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println(name)
}
