//go:build mage
// +build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

func Build() error {
	return sh.RunV("go", "build", "./...")
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the nicectl binary.
func Install() error {
	mg.Deps(Vet, Test)
	return sh.RunV("go", "install", "./cmd/nicectl")
}
