package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Fixture is a single line in a template fixture file:
// a template followed by a concrete path that should match it.
type Fixture struct {
	Template string
	Path     string
}

// Fixtures loads all template/path pairs from a text file.
// Blank lines and lines starting with '#' are skipped.
func Fixtures(fileName string) []Fixture {
	var fixtures []Fixture

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		fixtures = append(fixtures, Fixture{
			Template: parts[0],
			Path:     parts[1],
		})
	}

	return fixtures
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
