/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/sakethrapaka/remind/cmd"

func main() {
	cmd.Execute()
}
