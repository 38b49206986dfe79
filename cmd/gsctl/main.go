package main

import (
	"github.com/JunFolioGame/API-BackEnd/internal/cli"
)

func main() {
	cli.Execute()
}
