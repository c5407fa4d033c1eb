// Command fdf reads a Floyd datafile from a file, standard input or the
// command line and prints it back out, reformatted or as JSON.
package main

import "os"

func main() {
	os.Exit(run(newHost(), os.Args[1:]))
}
