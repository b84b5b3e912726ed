// Public domain.

package main

import "github.com/soniakeys/fitsmod/internal/fmprog"

func main() {
	fmprog.Main()
}
