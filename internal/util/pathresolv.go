//
// hivemind - UHP Hive game engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2023-2025 Crystal Spider
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves a path to a file and returns an absolute path to
// it. An absolute input is checked as is; a relative input is tried
// relative to the working directory, then relative to the executable.
func ResolveFile(file string) (string, error) {
	return resolve(file, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	})
}

// ResolveFolder resolves a path to a folder the same way ResolveFile
// resolves files.
func ResolveFolder(folder string) (string, error) {
	return resolve(folder, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	})
}

func resolve(path string, exists func(string) bool) (string, error) {
	notFoundErr := fmt.Errorf("path could not be found: %s", path)
	path = filepath.Clean(path)

	if filepath.IsAbs(path) {
		if exists(path) {
			return path, nil
		}
		return path, notFoundErr
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, path); exists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), path); exists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return path, notFoundErr
}
