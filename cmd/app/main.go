package main

import "farmconnect-api/app"

func main() {
	app.Run()
}
