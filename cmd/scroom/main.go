// Package main запускает сервис scrum-доски scroom и его служебные команды.
package main

import "os"

func main() {
	os.Exit(Execute())
}
