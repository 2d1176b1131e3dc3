// Command newspipe extracts news articles from supported sites into a
// durable, append-only dataset.
package main

import "github.com/gaurav-prasanna/newspipe/cmd"

func main() {
	cmd.Execute()
}
