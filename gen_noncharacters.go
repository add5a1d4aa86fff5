//go:build generate

// This program generates the non-character table (noncharacters.go) from the
// Noncharacter_Code_Point property in the Unicode Character Database file
// PropList.txt.
//
//go:generate go run gen_noncharacters.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	propListURL = `https://www.unicode.org/Public/17.0.0/ucd/PropList.txt`
)

// The regular expression for a line containing a non-character range.
var nonCharacterPattern = regexp.MustCompile(`^([0-9A-F]{4,6})(\.\.([0-9A-F]{4,6}))?\s*;\s*Noncharacter_Code_Point\s*#\s*(.+)$`)

func main() {
	log.SetPrefix("gen_noncharacters: ")
	log.SetFlags(0)

	src, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to noncharacters.go")
	if err := os.WriteFile("noncharacters.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() (string, error) {
	log.Printf("Parsing %s", propListURL)
	res, err := http.Get(propListURL)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: %s", propListURL, res.Status)
	}

	// Temporary buffer to hold the ranges.
	var ranges [][3]string

	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments, empty lines and other properties.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		if !strings.Contains(line, "Noncharacter_Code_Point") {
			continue
		}

		from, to, comment, err := parseNonCharacter(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %v", num, err)
		}
		ranges = append(ranges, [3]string{from, to, comment})
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if len(ranges) == 0 {
		return "", errors.New("no non-characters found")
	}

	sort.Slice(ranges, func(i, j int) bool {
		left, _ := strconv.ParseUint(ranges[i][0], 16, 64)
		right, _ := strconv.ParseUint(ranges[j][0], 16, 64)
		return left < right
	})

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_noncharacters.go. DO NOT EDIT.

package infra

// nonCharacterCodePoints are taken from
// ` + propListURL + `
// on ` + time.Now().Format("January 2, 2006") + `. See https://www.unicode.org/license.html for the Unicode
// license agreement.
var nonCharacterCodePoints = [][2]rune{
`)

	for _, r := range ranges {
		fmt.Fprintf(&buf, "\t{0x%s, 0x%s}, // %s\n", r[0], r[1], r[2])
	}

	// Tail.
	buf.WriteString("}\n")

	return buf.String(), nil
}

// parseNonCharacter parses a line containing a Noncharacter_Code_Point range.
func parseNonCharacter(line string) (from, to, comment string, err error) {
	fields := nonCharacterPattern.FindStringSubmatch(line)
	if fields == nil {
		err = errors.New("no Noncharacter_Code_Point property found")
		return
	}
	from = fields[1]
	to = fields[3]
	if to == "" {
		to = from
	}
	comment = fields[4]
	return
}
