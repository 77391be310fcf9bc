// Package aggregate builds the visualization structures out of the full
// watch history. All functions are pure and expect rows in ascending
// watch-date order.
package aggregate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/humanbelnik/imdb-explorer/core/internal/model"
)

// SplitNames tokenizes the free-text comma-separated credit and genre
// fields: split on commas, trim whitespace, drop empty tokens.
func SplitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// CreatorsNetwork builds the creator co-occurrence graph. A creator's role
// is fixed the first time the name is sighted and never recomputed; movie
// titles accumulate per token occurrence, so a name credited as both
// director and writer of the same movie keeps a single node but may collect
// the title twice and pair with itself. That mirrors the unnormalized
// free-text credit lists and is intentional.
func CreatorsNetwork(movies []*model.WatchEvent) model.CreatorsNetwork {
	network := model.CreatorsNetwork{
		Nodes: []model.CreatorNode{},
		Links: []model.CollaborationLink{},
	}
	nodeIdx := make(map[string]int)
	linkIdx := make(map[string]int)

	for _, m := range movies {
		directors := SplitNames(m.Director)
		writers := SplitNames(m.Writers)
		credited := append(append([]string{}, directors...), writers...)

		for _, name := range credited {
			i, ok := nodeIdx[name]
			if !ok {
				role := model.RoleWriter
				if slices.Contains(directors, name) {
					role = model.RoleDirector
				}
				network.Nodes = append(network.Nodes, model.CreatorNode{
					Name: name,
					Role: role,
				})
				i = len(network.Nodes) - 1
				nodeIdx[name] = i
			}
			network.Nodes[i].Movies = append(network.Nodes[i].Movies, m.Title)
		}

		for i := 0; i < len(credited); i++ {
			for j := i + 1; j < len(credited); j++ {
				a, b := credited[i], credited[j]
				if a > b {
					a, b = b, a
				}
				key := a + "\x00" + b
				k, ok := linkIdx[key]
				if !ok {
					network.Links = append(network.Links, model.CollaborationLink{
						Source: a,
						Target: b,
					})
					k = len(network.Links) - 1
					linkIdx[key] = k
				}
				network.Links[k].Movies = append(network.Links[k].Movies, m.Title)
			}
		}
	}

	return network
}

// ViewingPatterns groups watch events by year-week bucket in first-seen
// order. Weeks start on Monday; days before the year's first Monday fall
// into week 00.
func ViewingPatterns(movies []*model.WatchEvent) []model.ViewingPattern {
	patterns := []model.ViewingPattern{}
	bucketIdx := make(map[string]int)

	for _, m := range movies {
		t, err := time.Parse(model.WatchDateLayout, m.WatchDate)
		if err != nil {
			continue
		}
		bucket := weekBucket(t)
		i, ok := bucketIdx[bucket]
		if !ok {
			patterns = append(patterns, model.ViewingPattern{Date: bucket})
			i = len(patterns) - 1
			bucketIdx[bucket] = i
		}
		patterns[i].Count++
	}

	return patterns
}

// weekBucket renders t as "2006-W02" with the Monday-first week-of-year
// number (week 00 covers days before the first Monday).
func weekBucket(t time.Time) string {
	mondayWeekday := (int(t.Weekday()) + 6) % 7
	week := (t.YearDay() + 6 - mondayWeekday) / 7
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

// RuntimeDistribution maps every genre token to the runtimes of the movies
// carrying it, in watch order. A movie tagged "Action, Sci-Fi" contributes
// its runtime to both buckets.
func RuntimeDistribution(movies []*model.WatchEvent) map[string][]int {
	distribution := make(map[string][]int)
	for _, m := range movies {
		for _, genre := range SplitNames(m.Genre) {
			distribution[genre] = append(distribution[genre], m.Runtime)
		}
	}
	return distribution
}
