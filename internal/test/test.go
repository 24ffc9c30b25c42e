// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package test holds helpers shared by the package tests.
package test

import (
	"bufio"
	"os"
)

// LoadTestFile reads a newline-separated word list used by the bulk tests.
func LoadTestFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		panic("couldn't open " + path)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); len(line) > 0 {
			words = append(words, line)
		}
	}
	return words
}
