package main

import "github.com/Egor213/LogiDash/internal/app"

func main() {
	app.Run()
}
