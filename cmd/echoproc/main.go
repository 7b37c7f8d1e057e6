// Command echoproc identifies and catalogues echosounder datasets.
package main

import "github.com/simonhull/echoproc/internal/cli"

func main() {
	cli.Execute()
}
