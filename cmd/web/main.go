package main

import "creatorcrewz/internal/app"

func main() {
	app.Run()
}
