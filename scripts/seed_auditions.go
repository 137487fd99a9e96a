// seed_auditions.go — standalone script to parse an auditions markdown file
// and seed auditions via the Limelight API.
//
// The file format is one section per audition:
//
//	## Summer Musical Open Call
//	date: 2026-10-01
//	location: Los Angeles, CA
//	weights: 0.4,0.2,0.2,0.2
//
//	Seeking trained jazz dancers for our summer musical production.
//
// Usage:
//
//	go run scripts/seed_auditions.go -file auditions.md -api http://localhost:8080 -user <organizer-uuid>
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type criteriaWeights struct {
	Relevance float64 `json:"relevance"`
	Sentiment float64 `json:"sentiment"`
	Skills    float64 `json:"skills"`
	Video     float64 `json:"video"`
}

type auditionItem struct {
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Date            string           `json:"date,omitempty"`
	Location        string           `json:"location"`
	CriteriaWeights *criteriaWeights `json:"criteriaWeights,omitempty"`
}

func main() {
	filePath := flag.String("file", "auditions.md", "path to auditions file")
	apiURL := flag.String("api", "http://localhost:8080", "Limelight API base URL")
	userID := flag.String("user", "", "organizer user id for the X-User-ID header")
	dryRun := flag.Bool("dry-run", false, "print auditions without posting")
	flag.Parse()

	if !*dryRun && *userID == "" {
		log.Fatal("-user is required unless -dry-run is set")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open auditions file: %v", err)
	}
	defer f.Close()

	var items []auditionItem
	var current *auditionItem
	var description []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(description, "\n"))
		items = append(items, *current)
		current = nil
		description = nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "## ") {
			flush()
			current = &auditionItem{Title: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
			continue
		}
		if current == nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "date:"):
			current.Date = strings.TrimSpace(strings.TrimPrefix(trimmed, "date:"))
		case strings.HasPrefix(trimmed, "location:"):
			current.Location = strings.TrimSpace(strings.TrimPrefix(trimmed, "location:"))
		case strings.HasPrefix(trimmed, "weights:"):
			w, err := parseWeights(strings.TrimSpace(strings.TrimPrefix(trimmed, "weights:")))
			if err != nil {
				log.Fatalf("audition %q: %v", current.Title, err)
			}
			current.CriteriaWeights = w
		default:
			description = append(description, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		log.Fatalf("scan auditions file: %v", err)
	}

	log.Printf("parsed %d auditions from %s", len(items), *filePath)

	if *dryRun {
		for i, item := range items {
			weights := "default"
			if item.CriteriaWeights != nil {
				weights = fmt.Sprintf("%.2f/%.2f/%.2f/%.2f",
					item.CriteriaWeights.Relevance, item.CriteriaWeights.Sentiment,
					item.CriteriaWeights.Skills, item.CriteriaWeights.Video)
			}
			fmt.Printf("[%d] %s (location=%s, date=%s, weights=%s)\n", i+1, item.Title, item.Location, item.Date, weights)
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, item := range items {
		if item.Location == "" {
			log.Printf("skip %q: no location", item.Title)
			skipped++
			continue
		}

		body, _ := json.Marshal(item)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/auditions", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", item.Title, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", *userID)
		req.Header.Set("X-User-Role", "organizer")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", item.Title, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", item.Title, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func parseWeights(s string) (*criteriaWeights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("weights must be four comma-separated numbers, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q", p)
		}
		vals[i] = v
	}
	return &criteriaWeights{Relevance: vals[0], Sentiment: vals[1], Skills: vals[2], Video: vals[3]}, nil
}
