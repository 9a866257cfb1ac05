// cmd/peptidechop/main.go
package main

import (
	"peptidechop/internal/app"
	"peptidechop/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
