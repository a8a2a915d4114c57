/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/coup/cmd"

func main() {
	cmd.Execute()
}
