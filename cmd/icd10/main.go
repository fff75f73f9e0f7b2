package main

import "github.com/matteobe/icd10-scraper/cmd/icd10/cmd"

func main() {
	cmd.Execute()
}
