// cmd/genblast2gff/main.go
package main

import (
	"genblast2gff/internal/app"
	"genblast2gff/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
